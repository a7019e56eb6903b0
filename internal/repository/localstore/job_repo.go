package localstore

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"emplealocal-backend/internal/domain"
	"emplealocal-backend/pkg/kvstore"
)

type jobRepo struct {
	store kvstore.Store
}

func NewJobRepository(store kvstore.Store) domain.JobRepository {
	return &jobRepo{store: store}
}

func (r *jobRepo) List(ctx context.Context) ([]domain.Job, error) {
	return readCollection[domain.Job](ctx, r.store, keyJobs)
}

func (r *jobRepo) ReplaceAll(ctx context.Context, jobs []domain.Job) error {
	return writeCollection(ctx, r.store, keyJobs, jobs)
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	jobs, err := r.List(ctx)
	if err != nil {
		return err
	}

	// ID, Status and CreatedAt are never taken from the input.
	job.ID = uuid.NewString()
	job.Status = domain.JobStatusActive
	job.CreatedAt = time.Now().UTC()

	jobs = append(jobs, *job)
	return r.ReplaceAll(ctx, jobs)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *jobRepo) Update(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range jobs {
		if jobs[i].ID != id {
			continue
		}
		applyPatch(&jobs[i], patch)
		if err := r.ReplaceAll(ctx, jobs); err != nil {
			return nil, err
		}
		updated := jobs[i]
		return &updated, nil
	}
	return nil, domain.ErrNotFound
}

func applyPatch(job *domain.Job, patch domain.JobPatch) {
	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Category != nil {
		job.Category = *patch.Category
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	if patch.Salary != nil {
		job.Salary = *patch.Salary
	}
	if patch.Type != nil {
		job.Type = *patch.Type
	}
	if patch.Requirements != nil {
		job.Requirements = *patch.Requirements
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	jobs, err := r.List(ctx)
	if err != nil {
		return err
	}

	remaining := jobs[:0:0]
	for _, job := range jobs {
		if job.ID != id {
			remaining = append(remaining, job)
		}
	}
	if len(remaining) == len(jobs) {
		return domain.ErrNotFound
	}
	return r.ReplaceAll(ctx, remaining)
}

func (r *jobRepo) ListByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var owned []domain.Job
	for _, job := range jobs {
		if job.EmployerID == employerID {
			owned = append(owned, job)
		}
	}
	return owned, nil
}

func (r *jobRepo) Search(ctx context.Context, filters domain.JobFilters) ([]domain.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var matched []domain.Job
	for _, job := range jobs {
		if matchesFilters(job, filters) {
			matched = append(matched, job)
		}
	}
	return matched, nil
}

func matchesFilters(job domain.Job, filters domain.JobFilters) bool {
	if filters.Query != "" {
		query := strings.ToLower(filters.Query)
		if !strings.Contains(strings.ToLower(job.Title), query) &&
			!strings.Contains(strings.ToLower(job.Description), query) &&
			!strings.Contains(strings.ToLower(job.Company), query) {
			return false
		}
	}
	if filters.Category != "" && job.Category != filters.Category {
		return false
	}
	if filters.Type != "" && job.Type != filters.Type {
		return false
	}
	if filters.Location != "" &&
		!strings.Contains(strings.ToLower(job.Location), strings.ToLower(filters.Location)) {
		return false
	}
	return true
}
