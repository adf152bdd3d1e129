package local_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	apperrors "github.com/trip-planner-service/internal/pkg/errors"
	"github.com/trip-planner-service/internal/repository/local"
)

func TestBundledPlanners_Valid(t *testing.T) {
	planners, err := local.BundledPlanners()
	require.NoError(t, err)
	require.NotEmpty(t, planners)

	for _, p := range planners {
		assert.NotEmpty(t, p.Name, p.ID)
		assert.NotEmpty(t, p.Areas, p.ID)
		assert.NotEmpty(t, p.Categories, p.ID)
		assert.LessOrEqual(t, p.PriceRange.Min, p.PriceRange.Max, p.ID)

		// every bundled area resolves through the alias table
		for _, area := range p.Areas {
			for _, id := range domain.AreaIndex.Canonicalize(area) {
				assert.Contains(t, domain.CanonicalAreas(), id, "%s: %s", p.ID, area)
			}
		}
		for _, category := range p.Categories {
			for _, id := range domain.CategoryIndex.Canonicalize(category) {
				assert.Contains(t, domain.CanonicalCategories(), id, "%s: %s", p.ID, category)
			}
		}
	}
}

func TestPlannerRepository_ListReturnsCopies(t *testing.T) {
	repo, err := local.NewPlannerRepository("", zap.NewNop())
	require.NoError(t, err)

	first, err := repo.List(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"
	first[0].Areas[0] = "mutated"

	second, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
	assert.NotEqual(t, "mutated", second[0].Areas[0])
}

func TestPlannerRepository_Updates(t *testing.T) {
	ctx := context.Background()
	repo := local.NewPlannerRepositoryFrom([]domain.Planner{
		{ID: "p1", Name: "One", Rating: 4.0, Availability: true},
	}, zap.NewNop())

	require.NoError(t, repo.SetAvailability(ctx, "p1", false))
	require.NoError(t, repo.SetRating(ctx, "p1", 4.5))

	planners, err := repo.List(ctx)
	require.NoError(t, err)
	assert.False(t, planners[0].Availability)
	assert.Equal(t, 4.5, planners[0].Rating)

	assert.ErrorIs(t, repo.SetAvailability(ctx, "missing", true), apperrors.ErrPlannerNotFound)
	assert.ErrorIs(t, repo.SetRating(ctx, "missing", 1), apperrors.ErrPlannerNotFound)
}

func TestNewPlannerRepository_OverrideFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "valid.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":"x","name":"X","rating":3.5,"availability":true}]`), 0o600))

		repo, err := local.NewPlannerRepository(path, zap.NewNop())
		require.NoError(t, err)

		planners, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, planners, 1)
		assert.Equal(t, "x", planners[0].ID)
	})

	t.Run("empty dataset is allowed", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

		repo, err := local.NewPlannerRepository(path, zap.NewNop())
		require.NoError(t, err)
		planners, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, planners)
	})

	t.Run("invalid", func(t *testing.T) {
		cases := map[string]string{
			"syntax":     `[{`,
			"missing id": `[{"name":"no id"}]`,
			"duplicate":  `[{"id":"a"},{"id":"a"}]`,
			"rating":     `[{"id":"a","rating":7}]`,
		}
		for name, body := range cases {
			path := filepath.Join(dir, name+".json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			_, err := local.NewPlannerRepository(path, zap.NewNop())
			assert.Error(t, err, name)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := local.NewPlannerRepository(filepath.Join(dir, "nope.json"), zap.NewNop())
		assert.Error(t, err)
	})
}
