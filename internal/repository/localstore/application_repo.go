package localstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"emplealocal-backend/internal/domain"
	"emplealocal-backend/pkg/kvstore"
)

type applicationRepo struct {
	store kvstore.Store
}

func NewApplicationRepository(store kvstore.Store) domain.ApplicationRepository {
	return &applicationRepo{store: store}
}

func (r *applicationRepo) List(ctx context.Context) ([]domain.Application, error) {
	return readCollection[domain.Application](ctx, r.store, keyApplications)
}

func (r *applicationRepo) ReplaceAll(ctx context.Context, applications []domain.Application) error {
	return writeCollection(ctx, r.store, keyApplications, applications)
}

func (r *applicationRepo) Create(ctx context.Context, application *domain.Application) error {
	applications, err := r.List(ctx)
	if err != nil {
		return err
	}

	// ID, Status and CreatedAt are never taken from the input.
	application.ID = uuid.NewString()
	application.Status = domain.ApplicationStatusPending
	application.CreatedAt = time.Now().UTC()

	applications = append(applications, *application)
	return r.ReplaceAll(ctx, applications)
}

func (r *applicationRepo) HasApplied(ctx context.Context, jobID, applicantID string) (bool, error) {
	applications, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for _, app := range applications {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *applicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	applications, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var mine []domain.Application
	for _, app := range applications {
		if app.ApplicantID == applicantID {
			mine = append(mine, app)
		}
	}
	return mine, nil
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	applications, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var forJob []domain.Application
	for _, app := range applications {
		if app.JobID == jobID {
			forJob = append(forJob, app)
		}
	}
	return forJob, nil
}

func (r *applicationRepo) ListByEmployer(ctx context.Context, employerID string) ([]domain.Application, error) {
	jobs, err := readCollection[domain.Job](ctx, r.store, keyJobs)
	if err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(jobs))
	for _, job := range jobs {
		if job.EmployerID == employerID {
			owned[job.ID] = true
		}
	}

	applications, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var received []domain.Application
	for _, app := range applications {
		if owned[app.JobID] {
			received = append(received, app)
		}
	}
	return received, nil
}
