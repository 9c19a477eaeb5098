package compliance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoura/advisor/internal/catalog"
	"github.com/rmoura/advisor/internal/domain"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)

	return NewValidator(cat)
}

func TestValidate_SuitabilityGate(t *testing.T) {
	validator := newTestValidator(t)

	// Crypto is aggressive-only; 10% for a conservative profile must
	// flip compliance
	alloc := domain.Allocation{
		{Asset: "Renda Fixa", Percent: 90},
		{Asset: "Cripto", Percent: 10},
	}

	result, err := validator.Validate(domain.ProfileConservative, alloc)
	require.NoError(t, err)

	assert.False(t, result.IsCompliant)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "Cripto")
}

func TestValidate_ExploratoryAllocationBelowCutoff(t *testing.T) {
	validator := newTestValidator(t)

	// 5% exactly is exploratory: no suitability violation
	alloc := domain.Allocation{
		{Asset: "Renda Fixa", Percent: 95},
		{Asset: "Cripto", Percent: 5},
	}

	result, err := validator.Validate(domain.ProfileConservative, alloc)
	require.NoError(t, err)

	assert.True(t, result.IsCompliant)
}

func TestValidate_ConcentrationIsAdvisoryOnly(t *testing.T) {
	validator := newTestValidator(t)

	alloc := domain.Allocation{
		{Asset: "Renda Fixa", Percent: 70},
		{Asset: "Caixa", Percent: 30},
	}

	result, err := validator.Validate(domain.ProfileConservative, alloc)
	require.NoError(t, err)

	// Warned but still compliant
	assert.True(t, result.IsCompliant)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "concentracao") {
			found = true
		}
	}
	assert.True(t, found, "expected a concentration warning, got %v", result.Warnings)
}

func TestValidate_Disclosures(t *testing.T) {
	validator := newTestValidator(t)

	alloc := domain.Allocation{
		{Asset: "Renda Fixa", Percent: 60},
		{Asset: "Renda Variavel", Percent: 40},
		{Asset: "Cripto", Percent: 0},
	}

	result, err := validator.Validate(domain.ProfileModerate, alloc)
	require.NoError(t, err)

	// Boilerplate always present
	assert.GreaterOrEqual(t, len(result.RequiredDisclosures), len(standardDisclosures))
	for i, boilerplate := range standardDisclosures {
		assert.Equal(t, boilerplate, result.RequiredDisclosures[i])
	}

	joined := strings.Join(result.RequiredDisclosures, " ")
	assert.Contains(t, joined, "Renda variavel", "funded equity line contributes its disclosure")
	assert.NotContains(t, joined, "Criptoativos", "zero-percent lines contribute no disclosures")
}

func TestValidate_BenchmarkTableIsStatic(t *testing.T) {
	validator := newTestValidator(t)

	a, err := validator.Validate(domain.ProfileModerate, domain.Allocation{{Asset: "Caixa", Percent: 100}})
	require.NoError(t, err)
	b, err := validator.Validate(domain.ProfileAggressive, domain.Allocation{{Asset: "Cripto", Percent: 100}})
	require.NoError(t, err)

	assert.Equal(t, a.BenchmarkComparison, b.BenchmarkComparison)

	names := make([]string, 0, len(a.BenchmarkComparison))
	for _, bm := range a.BenchmarkComparison {
		names = append(names, bm.Name)
	}
	assert.Equal(t, []string{"CDI", "IBOVESPA", "IMA-B"}, names)
}

func TestValidate_UnknownAssetIsCatalogIntegrityError(t *testing.T) {
	validator := newTestValidator(t)

	_, err := validator.Validate(domain.ProfileModerate, domain.Allocation{{Asset: "Tulips", Percent: 100}})
	require.Error(t, err)

	var integrity *domain.CatalogIntegrityError
	assert.ErrorAs(t, err, &integrity)
}
