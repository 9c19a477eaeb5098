package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoura/advisor/internal/domain"
)

func TestLoad(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	assert.Len(t, cat.Strategies(), 10)
	assert.Len(t, cat.Assets(), 6)
	assert.Len(t, cat.Benchmarks(), 3)
}

func TestLoad_StrategyLookup(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	s, ok := cat.Strategy("allweather")
	require.True(t, ok)
	assert.Equal(t, "allweather", s.Name)
	assert.NotEmpty(t, s.Description)
	assert.NotEmpty(t, s.FocusTags)

	_, ok = cat.Strategy("ponzi")
	assert.False(t, ok)
	assert.False(t, cat.HasStrategy("ponzi"))
}

func TestLoad_AssetIntegrity(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	for _, a := range cat.Assets() {
		assert.LessOrEqual(t, a.ExpectedReturn.Pessimistic, a.ExpectedReturn.Baseline, a.Name)
		assert.LessOrEqual(t, a.ExpectedReturn.Baseline, a.ExpectedReturn.Optimistic, a.Name)
		assert.NotEmpty(t, a.Regulatory.SuitabilityProfiles, a.Name)
		assert.NotEmpty(t, a.Regulatory.RegulatoryCategory, a.Name)
		for _, p := range a.Regulatory.SuitabilityProfiles {
			assert.True(t, p.Valid(), "%s carries unknown profile %q", a.Name, p)
		}
	}
}

func TestLoad_SuitabilityRules(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	crypto, ok := cat.Asset("Cripto")
	require.True(t, ok)
	assert.False(t, crypto.Regulatory.Suitable(domain.ProfileConservative))
	assert.False(t, crypto.Regulatory.Suitable(domain.ProfileModerate))
	assert.True(t, crypto.Regulatory.Suitable(domain.ProfileAggressive))

	fixedIncome, ok := cat.Asset("Renda Fixa")
	require.True(t, ok)
	for _, p := range domain.AllRiskProfiles() {
		assert.True(t, fixedIncome.Regulatory.Suitable(p))
	}
}

func TestLoad_AccessorsReturnCopies(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	benchmarks := cat.Benchmarks()
	original := benchmarks[0].Name
	benchmarks[0].Name = "mutated"

	assert.Equal(t, original, cat.Benchmarks()[0].Name, "catalog must stay frozen")
}
