package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emplealocal-backend/internal/domain"
	"emplealocal-backend/internal/repository/localstore"
	"emplealocal-backend/internal/usecase"
	"emplealocal-backend/pkg/kvstore"
)

type dashboardFixture struct {
	*applicationFixture
	dashboard domain.DashboardUsecase
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	store := kvstore.NewMemory()
	userRepo := localstore.NewUserRepository(store)
	sessionRepo := localstore.NewSessionRepository(store)
	jobRepo := localstore.NewJobRepository(store)
	appRepo := localstore.NewApplicationRepository(store)

	return &dashboardFixture{
		applicationFixture: &applicationFixture{
			auth:         usecase.NewAuthUsecase(userRepo, sessionRepo),
			jobs:         usecase.NewJobUsecase(jobRepo, validator.New()),
			applications: usecase.NewApplicationUsecase(appRepo, jobRepo),
			appRepo:      appRepo,
		},
		dashboard: usecase.NewDashboardUsecase(jobRepo, appRepo),
	}
}

func TestEmployerOverviewCountsPerJob(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture(t)

	ana := f.registerEmployer(t, ctx)
	first := f.postJob(t, ctx, ana)
	second := f.postJob(t, ctx, ana)

	luis := f.registerApplicant(t, ctx)
	_, err := f.applications.ApplyToJob(ctx, luis, first.ID)
	require.NoError(t, err)

	rosa, err := f.auth.Register(ctx, domain.RegisterInput{
		Email:    "rosa@example.com",
		Password: "secret3",
		Name:     "Rosa",
		Type:     domain.UserTypeApplicant,
	})
	require.NoError(t, err)
	_, err = f.applications.ApplyToJob(ctx, rosa, first.ID)
	require.NoError(t, err)

	overview, err := f.dashboard.EmployerOverview(ctx, ana)
	require.NoError(t, err)
	assert.Equal(t, 2, overview.TotalJobs)
	assert.Equal(t, 2, overview.TotalApplications)
	assert.Equal(t, 2, overview.ActiveJobs)

	require.Len(t, overview.Jobs, 2)
	byID := map[string]int{}
	for _, summary := range overview.Jobs {
		byID[summary.ID] = summary.Applications
	}
	assert.Equal(t, 2, byID[first.ID])
	assert.Equal(t, 0, byID[second.ID])
}

func TestEmployerOverviewRequiresEmployer(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture(t)

	_, err := f.dashboard.EmployerOverview(ctx, nil)
	requireAppError(t, err, http.StatusUnauthorized)

	luis := f.registerApplicant(t, ctx)
	_, err = f.dashboard.EmployerOverview(ctx, luis)
	requireAppError(t, err, http.StatusForbidden)
}

func TestApplicantOverviewJoinsJobDetails(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture(t)

	ana := f.registerEmployer(t, ctx)
	job := f.postJob(t, ctx, ana)
	luis := f.registerApplicant(t, ctx)
	_, err := f.applications.ApplyToJob(ctx, luis, job.ID)
	require.NoError(t, err)

	overview, err := f.dashboard.ApplicantOverview(ctx, luis)
	require.NoError(t, err)
	assert.Equal(t, 1, overview.TotalApplications)
	assert.Equal(t, 1, overview.AvailableJobs)
	// Jobs were posted just now, so all of them count as new
	assert.Equal(t, 1, overview.NewThisWeek)

	require.Len(t, overview.Applications, 1)
	row := overview.Applications[0]
	assert.Equal(t, "Vendedor de tienda", row.JobTitle)
	assert.Equal(t, "TiendaX", row.Company)
}

func TestApplicantOverviewOmitsDeletedJobs(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture(t)

	ana := f.registerEmployer(t, ctx)
	kept := f.postJob(t, ctx, ana)
	doomed := f.postJob(t, ctx, ana)

	luis := f.registerApplicant(t, ctx)
	_, err := f.applications.ApplyToJob(ctx, luis, kept.ID)
	require.NoError(t, err)
	_, err = f.applications.ApplyToJob(ctx, luis, doomed.ID)
	require.NoError(t, err)

	require.NoError(t, f.jobs.DeleteJob(ctx, ana, doomed.ID))

	overview, err := f.dashboard.ApplicantOverview(ctx, luis)
	require.NoError(t, err)
	// The count keeps both applications, the joined rows drop the orphan
	assert.Equal(t, 2, overview.TotalApplications)
	require.Len(t, overview.Applications, 1)
	assert.Equal(t, kept.ID, overview.Applications[0].JobID)
}

func TestApplicantOverviewRequiresApplicant(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture(t)

	_, err := f.dashboard.ApplicantOverview(ctx, nil)
	requireAppError(t, err, http.StatusUnauthorized)

	ana := f.registerEmployer(t, ctx)
	_, err = f.dashboard.ApplicantOverview(ctx, ana)
	requireAppError(t, err, http.StatusForbidden)
}
