package projection

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoura/advisor/internal/catalog"
	"github.com/rmoura/advisor/internal/domain"
)

func newTestProjector(t *testing.T) *Projector {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)

	return NewProjector(cat)
}

func TestProject_WeightedReturns(t *testing.T) {
	projector := newTestProjector(t)

	// 40% fixed income (0.06/0.09/0.12) + 60% equities (-0.05/0.12/0.25)
	alloc := domain.Allocation{
		{Asset: "Renda Fixa", Percent: 40},
		{Asset: "Renda Variavel", Percent: 60},
	}

	set, err := projector.Project(alloc, 5, 100000, nil)
	require.NoError(t, err)

	assert.InDelta(t, -0.006, set.Pessimistic.ExpectedReturn, 1e-9)
	assert.InDelta(t, 0.108, set.Baseline.ExpectedReturn, 1e-9)
	assert.InDelta(t, 0.198, set.Optimistic.ExpectedReturn, 1e-9)

	// FV = 100000 * (1 + 0.108)^5 at the target horizon
	wantTarget := math.Round(100000*math.Pow(1.108, 5)*100) / 100
	assert.InDelta(t, wantTarget, set.Baseline.ProjectedValue.AtTarget, 0.01)
	assert.InDelta(t, 110800, set.Baseline.ProjectedValue.OneYear, 0.01)

	// Volatility: sqrt((0.015*0.4)^2 + (0.075*0.6)^2) * 100 = 4.54
	assert.InDelta(t, 4.54, set.Baseline.RiskLevel, 0.01)
	assert.Equal(t, set.Baseline.RiskLevel, set.Pessimistic.RiskLevel,
		"volatility is scenario independent")
	assert.Equal(t, set.Baseline.RiskLevel, set.Optimistic.RiskLevel)
}

func TestProject_ScenarioOrdering(t *testing.T) {
	projector := newTestProjector(t)

	// Any allocation over catalog assets must keep the scenario ordering
	allocs := []domain.Allocation{
		{{Asset: "Renda Fixa", Percent: 100}},
		{{Asset: "Cripto", Percent: 50}, {Asset: "Caixa", Percent: 50}},
		{{Asset: "Renda Variavel", Percent: 30}, {Asset: "Fundos Imobiliarios", Percent: 30}, {Asset: "Internacional", Percent: 40}},
	}

	for _, alloc := range allocs {
		set, err := projector.Project(alloc, 10, 50000, nil)
		require.NoError(t, err)

		assert.LessOrEqual(t, set.Pessimistic.ExpectedReturn, set.Baseline.ExpectedReturn)
		assert.LessOrEqual(t, set.Baseline.ExpectedReturn, set.Optimistic.ExpectedReturn)
	}
}

func TestProject_MacroReanchorsRateTrackingAssets(t *testing.T) {
	projector := newTestProjector(t)

	alloc := domain.Allocation{{Asset: "Renda Fixa", Percent: 100}}
	snapshot := &domain.MacroSnapshot{
		SelicAnnual: 0.15,
		IPCAAnnual:  0.045,
		FetchedAt:   time.Now(),
	}

	set, err := projector.Project(alloc, 3, 10000, snapshot)
	require.NoError(t, err)

	assert.InDelta(t, 0.13, set.Pessimistic.ExpectedReturn, 1e-9)
	assert.InDelta(t, 0.15, set.Baseline.ExpectedReturn, 1e-9)
	assert.InDelta(t, 0.17, set.Optimistic.ExpectedReturn, 1e-9)
}

func TestProject_MacroLeavesOtherAssetsUntouched(t *testing.T) {
	projector := newTestProjector(t)

	alloc := domain.Allocation{{Asset: "Renda Variavel", Percent: 100}}
	snapshot := &domain.MacroSnapshot{SelicAnnual: 0.15, FetchedAt: time.Now()}

	withMacro, err := projector.Project(alloc, 3, 10000, snapshot)
	require.NoError(t, err)
	withoutMacro, err := projector.Project(alloc, 3, 10000, nil)
	require.NoError(t, err)

	assert.Equal(t, withoutMacro.Baseline.ExpectedReturn, withMacro.Baseline.ExpectedReturn)
}

func TestProject_UnknownAssetIsCatalogIntegrityError(t *testing.T) {
	projector := newTestProjector(t)

	alloc := domain.Allocation{{Asset: "Beanie Babies", Percent: 100}}

	_, err := projector.Project(alloc, 5, 1000, nil)
	require.Error(t, err)

	var integrity *domain.CatalogIntegrityError
	assert.ErrorAs(t, err, &integrity)
}

func TestProject_ZeroHorizonValueEqualsPrincipal(t *testing.T) {
	projector := newTestProjector(t)

	// Horizon validation is the orchestrator's job; the projector itself
	// degrades gracefully
	alloc := domain.Allocation{{Asset: "Caixa", Percent: 100}}

	set, err := projector.Project(alloc, 0, 5000, nil)
	require.NoError(t, err)
	assert.InDelta(t, 5000, set.Baseline.ProjectedValue.AtTarget, 0.01)
}
