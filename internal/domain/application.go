package domain

import (
	"context"
	"time"
)

// ApplicationStatusPending is the only status ever assigned.
const ApplicationStatusPending = "pending"

// Application is persisted exactly in this JSON shape inside the
// applications collection. ApplicantName and ApplicantEmail are snapshots
// taken at submission time.
type Application struct {
	ID             string    `json:"id"`
	JobID          string    `json:"jobId"`
	ApplicantID    string    `json:"applicantId"`
	ApplicantName  string    `json:"applicantName"`
	ApplicantEmail string    `json:"applicantEmail"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ApplicationRepository interface {
	List(ctx context.Context) ([]Application, error)
	ReplaceAll(ctx context.Context, applications []Application) error
	// Create assigns a fresh ID and creation timestamp and forces
	// Status to pending.
	Create(ctx context.Context, application *Application) error
	// HasApplied reports whether the (jobID, applicantID) pair exists.
	HasApplied(ctx context.Context, jobID, applicantID string) (bool, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]Application, error)
	ListByJob(ctx context.Context, jobID string) ([]Application, error)
	// ListByEmployer returns applications to any job owned by the employer.
	ListByEmployer(ctx context.Context, employerID string) ([]Application, error)
}

type ApplicationUsecase interface {
	// ApplyToJob enforces, in order: a session user exists, the user is not
	// an employer, no duplicate application, the job still resolves.
	ApplyToJob(ctx context.Context, user *User, jobID string) (*Application, error)
	MyApplications(ctx context.Context, user *User) ([]Application, error)
	// ListByJob is employer-only and ownership-checked.
	ListByJob(ctx context.Context, user *User, jobID string) ([]Application, error)
}
