package recommendation

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/rmoura/advisor/internal/domain"
	"github.com/rmoura/advisor/pkg/logger"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// In-memory databases vanish when a second connection opens
	db.SetMaxOpenConns(1)

	repo := NewRepository(db, logger.New(logger.Config{Level: "error"}))
	require.NoError(t, repo.InitSchema())
	return repo
}

func generateTestRecommendation(t *testing.T) *domain.Recommendation {
	t.Helper()

	service := newTestService(t, nil)
	rec, err := service.Generate(context.Background(),
		domain.ClientProfile{Age: 30, IncomeMonthly: 9000},
		domain.InvestmentGoal{HorizonYears: 7, Objective: domain.ObjectiveRetirement, InitialAmount: 40000},
		"")
	require.NoError(t, err)
	return rec
}

func TestRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	rec := generateTestRecommendation(t)

	id, err := repo.Save(rec)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored, err := repo.GetByUUID(id)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, id, stored.UUID)
	assert.Equal(t, rec.Risk.Profile, stored.RiskProfile)
	assert.Equal(t, rec.Strategy.Name, stored.Strategy)
	assert.Equal(t, rec.Goal.Objective, stored.Objective)
	assert.Equal(t, rec.Goal.HorizonYears, stored.HorizonYears)
	assert.Equal(t, rec.Compliance.IsCompliant, stored.IsCompliant)
	assert.False(t, stored.CreatedAt.IsZero())

	// Full payload round-trips intact
	require.NotNil(t, stored.Recommendation)
	assert.Equal(t, rec.Allocation, stored.Recommendation.Allocation)
	assert.Equal(t, rec.Scenarios, stored.Recommendation.Scenarios)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	stored, err := repo.GetByUUID("00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestRepository_SaveDistinctKeys(t *testing.T) {
	repo := newTestRepository(t)
	rec := generateTestRecommendation(t)

	a, err := repo.Save(rec)
	require.NoError(t, err)
	b, err := repo.Save(rec)
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "each save gets its own key")
}

func TestRepository_List(t *testing.T) {
	repo := newTestRepository(t)
	rec := generateTestRecommendation(t)

	for i := 0; i < 3; i++ {
		_, err := repo.Save(rec)
		require.NoError(t, err)
	}

	stored, err := repo.List(0)
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	limited, err := repo.List(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
