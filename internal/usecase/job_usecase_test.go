package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"emplealocal-backend/internal/domain"
	"emplealocal-backend/internal/repository/localstore"
	"emplealocal-backend/internal/usecase"
	"emplealocal-backend/pkg/kvstore"
)

type mockJobRepo struct {
	mock.Mock
}

func (m *mockJobRepo) List(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *mockJobRepo) ReplaceAll(ctx context.Context, jobs []domain.Job) error {
	args := m.Called(ctx, jobs)
	return args.Error(0)
}

func (m *mockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *mockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *mockJobRepo) Update(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *mockJobRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockJobRepo) ListByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	args := m.Called(ctx, employerID)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *mockJobRepo) Search(ctx context.Context, filters domain.JobFilters) ([]domain.Job, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func employer() *domain.User {
	return &domain.User{ID: "emp-1", Name: "Ana Torres", Company: "TiendaX", Type: domain.UserTypeEmployer}
}

func applicant() *domain.User {
	return &domain.User{ID: "app-1", Name: "Luis", Type: domain.UserTypeApplicant}
}

func validJobInput() domain.CreateJobInput {
	return domain.CreateJobInput{
		Title:       "Vendedor de tienda",
		Description: "Atencion al cliente y reposicion de mercaderia en tienda.",
		Category:    "ventas",
		Location:    "Coracora Centro",
		Salary:      "S/ 1200",
		Type:        "tiempo-completo",
	}
}

func TestCreateJobSnapshotsEmployer(t *testing.T) {
	ctx := context.Background()
	jobs := localstore.NewJobRepository(kvstore.NewMemory())
	uc := usecase.NewJobUsecase(jobs, validator.New())

	job, err := uc.CreateJob(ctx, employer(), validJobInput())
	require.NoError(t, err)
	assert.Equal(t, "emp-1", job.EmployerID)
	assert.Equal(t, "Ana Torres", job.EmployerName)
	assert.Equal(t, "TiendaX", job.Company)
	assert.Equal(t, domain.JobStatusActive, job.Status)
	assert.NotEmpty(t, job.ID)
}

func TestCreateJobRejectsShortFields(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewJobUsecase(localstore.NewJobRepository(kvstore.NewMemory()), validator.New())

	input := validJobInput()
	input.Title = "Ayud"
	_, err := uc.CreateJob(ctx, employer(), input)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.Message, "Job title")

	input = validJobInput()
	input.Description = "muy corto"
	_, err = uc.CreateJob(ctx, employer(), input)
	appErr = requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.Message, "Job description")
}

func TestCreateJobRequiresEmployerAccount(t *testing.T) {
	ctx := context.Background()
	repo := new(mockJobRepo)
	uc := usecase.NewJobUsecase(repo, validator.New())

	_, err := uc.CreateJob(ctx, nil, validJobInput())
	requireAppError(t, err, http.StatusUnauthorized)

	_, err = uc.CreateJob(ctx, applicant(), validJobInput())
	requireAppError(t, err, http.StatusForbidden)

	// The repository must never be reached on a refusal
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteJobOwnership(t *testing.T) {
	ctx := context.Background()
	jobs := localstore.NewJobRepository(kvstore.NewMemory())
	uc := usecase.NewJobUsecase(jobs, validator.New())

	job, err := uc.CreateJob(ctx, employer(), validJobInput())
	require.NoError(t, err)

	t.Run("another employer is refused", func(t *testing.T) {
		other := &domain.User{ID: "emp-2", Name: "Pedro", Type: domain.UserTypeEmployer}
		err := uc.DeleteJob(ctx, other, job.ID)
		appErr := requireAppError(t, err, http.StatusForbidden)
		assert.Equal(t, "You can only delete your own job postings", appErr.Message)
	})

	t.Run("applicants cannot delete", func(t *testing.T) {
		err := uc.DeleteJob(ctx, applicant(), job.ID)
		requireAppError(t, err, http.StatusForbidden)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		err := uc.DeleteJob(ctx, employer(), "no-such-job")
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, uc.DeleteJob(ctx, employer(), job.ID))
		_, err := uc.GetJob(ctx, job.ID)
		requireAppError(t, err, http.StatusNotFound)
	})
}

func TestListByEmployerRequiresEmployer(t *testing.T) {
	ctx := context.Background()
	repo := new(mockJobRepo)
	repo.On("ListByEmployer", mock.Anything, "emp-1").Return([]domain.Job{{ID: "j1"}}, nil)
	uc := usecase.NewJobUsecase(repo, validator.New())

	_, err := uc.ListByEmployer(ctx, nil)
	requireAppError(t, err, http.StatusUnauthorized)

	_, err = uc.ListByEmployer(ctx, applicant())
	requireAppError(t, err, http.StatusForbidden)

	jobs, err := uc.ListByEmployer(ctx, employer())
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	repo.AssertExpectations(t)
}
