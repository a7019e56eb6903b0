package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"emplealocal-backend/internal/domain"
	"emplealocal-backend/pkg/apperror"
	"emplealocal-backend/pkg/validation"
)

type jobUsecase struct {
	jobs     domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobs domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{jobs: jobs, validate: validate}
}

func (u *jobUsecase) Search(ctx context.Context, filters domain.JobFilters) ([]domain.Job, error) {
	jobs, err := u.jobs.Search(ctx, filters)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobs.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListByEmployer(ctx context.Context, user *domain.User) ([]domain.Job, error) {
	if user == nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if user.Type != domain.UserTypeEmployer {
		return nil, apperror.Forbidden("Only employers have job postings")
	}

	jobs, err := u.jobs.ListByEmployer(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, user *domain.User, input domain.CreateJobInput) (*domain.Job, error) {
	if user == nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if user.Type != domain.UserTypeEmployer {
		return nil, apperror.Forbidden("Only employers can publish job postings")
	}

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	job := &domain.Job{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Location:     input.Location,
		Salary:       input.Salary,
		Type:         input.Type,
		Requirements: input.Requirements,
		// Snapshot of the employer at creation time
		EmployerID:   user.ID,
		EmployerName: user.Name,
		Company:      user.Company,
	}
	if err := u.jobs.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, user *domain.User, id string) error {
	if user == nil {
		return apperror.Unauthorized("User not authenticated")
	}
	if user.Type != domain.UserTypeEmployer {
		return apperror.Forbidden("Only employers can delete job postings")
	}

	job, err := u.jobs.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	if job.EmployerID != user.ID {
		return apperror.Forbidden("You can only delete your own job postings")
	}

	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
