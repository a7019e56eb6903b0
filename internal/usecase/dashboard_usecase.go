package usecase

import (
	"context"
	"time"

	"emplealocal-backend/internal/domain"
	"emplealocal-backend/pkg/apperror"
)

type dashboardUsecase struct {
	jobs         domain.JobRepository
	applications domain.ApplicationRepository
}

func NewDashboardUsecase(jobs domain.JobRepository, applications domain.ApplicationRepository) domain.DashboardUsecase {
	return &dashboardUsecase{jobs: jobs, applications: applications}
}

func (u *dashboardUsecase) EmployerOverview(ctx context.Context, user *domain.User) (*domain.EmployerDashboard, error) {
	if user == nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if user.Type != domain.UserTypeEmployer {
		return nil, apperror.Forbidden("Employer dashboard requires an employer account")
	}

	myJobs, err := u.jobs.ListByEmployer(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	received, err := u.applications.ListByEmployer(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	perJob := make(map[string]int, len(myJobs))
	for _, app := range received {
		perJob[app.JobID]++
	}

	dashboard := &domain.EmployerDashboard{
		TotalJobs:         len(myJobs),
		TotalApplications: len(received),
		Jobs:              make([]domain.EmployerJobSummary, 0, len(myJobs)),
	}
	for _, job := range myJobs {
		if job.Status == domain.JobStatusActive {
			dashboard.ActiveJobs++
		}
		dashboard.Jobs = append(dashboard.Jobs, domain.EmployerJobSummary{
			Job:          job,
			Applications: perJob[job.ID],
		})
	}
	return dashboard, nil
}

func (u *dashboardUsecase) ApplicantOverview(ctx context.Context, user *domain.User) (*domain.ApplicantDashboard, error) {
	if user == nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if user.Type != domain.UserTypeApplicant {
		return nil, apperror.Forbidden("Applicant dashboard requires an applicant account")
	}

	mine, err := u.applications.ListByApplicant(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	allJobs, err := u.jobs.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	byID := make(map[string]domain.Job, len(allJobs))
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	newThisWeek := 0
	for _, job := range allJobs {
		byID[job.ID] = job
		if job.CreatedAt.After(weekAgo) {
			newThisWeek++
		}
	}

	dashboard := &domain.ApplicantDashboard{
		TotalApplications: len(mine),
		AvailableJobs:     len(allJobs),
		NewThisWeek:       newThisWeek,
		Applications:      make([]domain.ApplicationWithJob, 0, len(mine)),
	}
	for _, app := range mine {
		job, ok := byID[app.JobID]
		if !ok {
			// Job was deleted after the application went in; omit the row.
			continue
		}
		dashboard.Applications = append(dashboard.Applications, domain.ApplicationWithJob{
			Application: app,
			JobTitle:    job.Title,
			Company:     job.Company,
			Location:    job.Location,
			Salary:      job.Salary,
		})
	}
	return dashboard, nil
}
