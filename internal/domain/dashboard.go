package domain

import "context"

// EmployerJobSummary annotates a posting with how many applications it has.
type EmployerJobSummary struct {
	Job
	Applications int `json:"applications"`
}

type EmployerDashboard struct {
	TotalJobs         int                  `json:"totalJobs"`
	TotalApplications int                  `json:"totalApplications"`
	ActiveJobs        int                  `json:"activeJobs"`
	Jobs              []EmployerJobSummary `json:"jobs"`
}

// ApplicationWithJob joins an application with its job's display fields.
type ApplicationWithJob struct {
	Application
	JobTitle string `json:"jobTitle"`
	Company  string `json:"jobCompany"`
	Location string `json:"jobLocation"`
	Salary   string `json:"jobSalary"`
}

type ApplicantDashboard struct {
	TotalApplications int                  `json:"totalApplications"`
	AvailableJobs     int                  `json:"availableJobs"`
	NewThisWeek       int                  `json:"newThisWeek"`
	Applications      []ApplicationWithJob `json:"applications"`
}

type DashboardUsecase interface {
	EmployerOverview(ctx context.Context, user *User) (*EmployerDashboard, error)
	// ApplicantOverview silently omits applications whose job no longer
	// resolves; a deleted job is a display-filtering case, not an error.
	ApplicantOverview(ctx context.Context, user *User) (*ApplicantDashboard, error)
}
