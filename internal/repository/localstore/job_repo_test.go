package localstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emplealocal-backend/internal/domain"
	"emplealocal-backend/internal/repository/localstore"
	"emplealocal-backend/pkg/kvstore"
)

func seedJobFixtures(t *testing.T) domain.JobRepository {
	t.Helper()
	ctx := context.Background()
	jobs := localstore.NewJobRepository(kvstore.NewMemory())

	fixtures := []domain.Job{
		{
			Title:       "Auxiliar de Ventas",
			Description: "Atencion al cliente y manejo de caja en tienda comercial.",
			Company:     "Comercial Coracora",
			Category:    "ventas",
			Location:    "Coracora Centro",
			Type:        "tiempo-completo",
			EmployerID:  "emp-1",
		},
		{
			Title:       "Cocinero",
			Description: "Preparacion de menu diario para restaurante familiar.",
			Company:     "Restaurante El Sol",
			Category:    "gastronomia",
			Location:    "Avenida Principal",
			Type:        "medio-tiempo",
			EmployerID:  "emp-2",
		},
		{
			Title:       "Promotor VENTAS mayoristas",
			Description: "Visitas a bodegas de la zona.",
			Company:     "Distribuidora Andina",
			Category:    "ventas",
			Location:    "coracora centro",
			Type:        "tiempo-completo",
			EmployerID:  "emp-1",
		},
	}
	for i := range fixtures {
		require.NoError(t, jobs.Create(ctx, &fixtures[i]))
	}
	return jobs
}

func TestJobCreateForcesStatusAndTimestamps(t *testing.T) {
	ctx := context.Background()
	jobs := localstore.NewJobRepository(kvstore.NewMemory())

	job := &domain.Job{
		ID:     "client-supplied-id",
		Title:  "Vendedor de tienda",
		Status: "closed",
	}
	require.NoError(t, jobs.Create(ctx, job))

	assert.NotEqual(t, "client-supplied-id", job.ID)
	assert.Equal(t, domain.JobStatusActive, job.Status)
	assert.False(t, job.CreatedAt.IsZero())

	stored, err := jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusActive, stored.Status)
}

func TestJobSearchQueryIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	jobs := seedJobFixtures(t)

	for _, query := range []string{"ventas", "VENTAS", "Ventas"} {
		results, err := jobs.Search(ctx, domain.JobFilters{Query: query})
		require.NoError(t, err)
		require.Len(t, results, 2, "query %q", query)
		assert.Equal(t, "Auxiliar de Ventas", results[0].Title)
		assert.Equal(t, "Promotor VENTAS mayoristas", results[1].Title)
	}
}

func TestJobSearchMatchesDescriptionAndCompany(t *testing.T) {
	ctx := context.Background()
	jobs := seedJobFixtures(t)

	results, err := jobs.Search(ctx, domain.JobFilters{Query: "restaurante"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Cocinero", results[0].Title)

	results, err = jobs.Search(ctx, domain.JobFilters{Query: "bodegas"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Promotor VENTAS mayoristas", results[0].Title)
}

func TestJobSearchFiltersCombineWithAnd(t *testing.T) {
	ctx := context.Background()
	jobs := seedJobFixtures(t)

	results, err := jobs.Search(ctx, domain.JobFilters{
		Category: "ventas",
		Type:     "tiempo-completo",
		Location: "CORACORA",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Category is an exact match, so a substring does not qualify
	results, err = jobs.Search(ctx, domain.JobFilters{Category: "venta"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestJobSearchWithoutFiltersEqualsList(t *testing.T) {
	ctx := context.Background()
	jobs := seedJobFixtures(t)

	all, err := jobs.List(ctx)
	require.NoError(t, err)
	results, err := jobs.Search(ctx, domain.JobFilters{})
	require.NoError(t, err)
	assert.Equal(t, all, results)
}

func TestJobDeleteRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	jobs := seedJobFixtures(t)

	all, err := jobs.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	require.NoError(t, jobs.Delete(ctx, all[1].ID))

	remaining, err := jobs.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, all[0].ID, remaining[0].ID)
	assert.Equal(t, all[2].ID, remaining[1].ID)

	err = jobs.Delete(ctx, "no-such-job")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	remaining, err = jobs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestJobUpdateMergesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	jobs := seedJobFixtures(t)

	all, err := jobs.List(ctx)
	require.NoError(t, err)
	original := all[0]

	newTitle := "Auxiliar de Ventas Senior"
	newSalary := "S/ 1500"
	updated, err := jobs.Update(ctx, original.ID, domain.JobPatch{
		Title:  &newTitle,
		Salary: &newSalary,
	})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, newSalary, updated.Salary)
	assert.Equal(t, original.Description, updated.Description)
	assert.Equal(t, original.Category, updated.Category)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)

	_, err = jobs.Update(ctx, "no-such-job", domain.JobPatch{Title: &newTitle})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJobListByEmployer(t *testing.T) {
	ctx := context.Background()
	jobs := seedJobFixtures(t)

	owned, err := jobs.ListByEmployer(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	for _, job := range owned {
		assert.Equal(t, "emp-1", job.EmployerID)
	}

	none, err := jobs.ListByEmployer(ctx, "emp-99")
	require.NoError(t, err)
	assert.Empty(t, none)
}
