package usecase

import (
	"context"
	"errors"

	"emplealocal-backend/internal/domain"
	"emplealocal-backend/pkg/apperror"
)

type applicationUsecase struct {
	applications domain.ApplicationRepository
	jobs         domain.JobRepository
}

func NewApplicationUsecase(applications domain.ApplicationRepository, jobs domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{applications: applications, jobs: jobs}
}

// ApplyToJob runs the submission rule chain and creates the application.
// The checks run in a fixed order so the user always sees the most
// relevant refusal first.
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, user *domain.User, jobID string) (*domain.Application, error) {
	// 1. A session user must exist
	if user == nil {
		return nil, apperror.Unauthorized("Sign in to apply for jobs")
	}

	// 2. Employers cannot apply
	if user.Type == domain.UserTypeEmployer {
		return nil, apperror.Forbidden("Employer accounts cannot apply for jobs")
	}

	// 3. One application per user per job
	applied, err := uc.applications.HasApplied(ctx, jobID, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if applied {
		return nil, apperror.Conflict("You have already applied for this job")
	}

	// 4. The job may have been deleted since the listing was rendered
	if _, err := uc.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	// 5. Create with a snapshot of the applicant
	application := &domain.Application{
		JobID:          jobID,
		ApplicantID:    user.ID,
		ApplicantName:  user.Name,
		ApplicantEmail: user.Email,
	}
	if err := uc.applications.Create(ctx, application); err != nil {
		return nil, apperror.Internal(err)
	}
	return application, nil
}

func (uc *applicationUsecase) MyApplications(ctx context.Context, user *domain.User) ([]domain.Application, error) {
	if user == nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	applications, err := uc.applications.ListByApplicant(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applications, nil
}

func (uc *applicationUsecase) ListByJob(ctx context.Context, user *domain.User, jobID string) ([]domain.Application, error) {
	if user == nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if user.Type != domain.UserTypeEmployer {
		return nil, apperror.Forbidden("Only employers can view job applications")
	}

	job, err := uc.jobs.GetByID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if job.EmployerID != user.ID {
		return nil, apperror.Forbidden("You can only view applications to your own job postings")
	}

	applications, err := uc.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applications, nil
}
