package domain

import (
	"context"
	"time"
)

// JobStatusActive is the only status ever assigned to a posting.
const JobStatusActive = "active"

// Job is persisted exactly in this JSON shape inside the jobs collection.
// EmployerName and Company are snapshots taken at creation time; they are
// intentionally not kept in sync with the employer record.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	Type         string    `json:"type"`
	Requirements string    `json:"requirements"`
	EmployerID   string    `json:"employerId"`
	EmployerName string    `json:"employerName"`
	Company      string    `json:"company"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// JobFilters narrows a search. Zero-value fields do not restrict.
type JobFilters struct {
	Query    string // case-insensitive substring over title, description or company
	Category string // exact match
	Type     string // exact match
	Location string // case-insensitive substring
}

// JobPatch carries a partial update; nil fields keep their stored value.
type JobPatch struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	Location     *string `json:"location,omitempty"`
	Salary       *string `json:"salary,omitempty"`
	Type         *string `json:"type,omitempty"`
	Requirements *string `json:"requirements,omitempty"`
	Status       *string `json:"status,omitempty"`
}

type JobRepository interface {
	List(ctx context.Context) ([]Job, error)
	ReplaceAll(ctx context.Context, jobs []Job) error
	// Create assigns a fresh ID and creation timestamp and forces
	// Status to active, regardless of what the input carries.
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	Update(ctx context.Context, id string, patch JobPatch) (*Job, error)
	// Delete removes exactly one posting, ErrNotFound when the id is unknown.
	Delete(ctx context.Context, id string) error
	ListByEmployer(ctx context.Context, employerID string) ([]Job, error)
	// Search combines supplied filters with logical AND and preserves
	// insertion order. Empty filters return the whole collection.
	Search(ctx context.Context, filters JobFilters) ([]Job, error)
}

type CreateJobInput struct {
	Title        string `json:"title" validate:"required,min=5"`
	Description  string `json:"description" validate:"required,min=20"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
	Type         string `json:"type"`
	Requirements string `json:"requirements"`
}

type JobUsecase interface {
	Search(ctx context.Context, filters JobFilters) ([]Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	ListByEmployer(ctx context.Context, user *User) ([]Job, error)
	// CreateJob validates the input and denormalizes the employer's name
	// and company onto the posting.
	CreateJob(ctx context.Context, user *User, input CreateJobInput) (*Job, error)
	// DeleteJob enforces that only the owning employer can remove a posting.
	DeleteJob(ctx context.Context, user *User, id string) error
}
