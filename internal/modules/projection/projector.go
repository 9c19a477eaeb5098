// Package projection computes deterministic scenario projections for an
// allocation.
package projection

import (
	"github.com/rmoura/advisor/internal/catalog"
	"github.com/rmoura/advisor/internal/domain"
	"github.com/rmoura/advisor/pkg/formulas"
)

// Regulatory categories whose returns track the policy rate when a macro
// snapshot is available
const (
	categoryFixedIncome = "fixed_income"
	categoryCash        = "cash"
)

// Spread applied around the policy rate for rate-tracking assets
const policyRateSpread = 0.02

// Projector computes pessimistic/baseline/optimistic projections.
// Stateless; safe for concurrent use.
type Projector struct {
	catalog *catalog.Catalog
}

// NewProjector creates a scenario projector
func NewProjector(cat *catalog.Catalog) *Projector {
	return &Projector{catalog: cat}
}

// Project computes the three scenario projections for an allocation.
// The macro snapshot is optional: when present, fixed-income and cash
// returns are re-anchored to the policy rate; when nil the static
// catalog ranges are used as-is (baseline-only mode).
func (p *Projector) Project(alloc domain.Allocation, horizonYears int, initialAmount float64, macro *domain.MacroSnapshot) (domain.ScenarioSet, error) {
	ranges := make([]domain.ReturnRange, len(alloc))
	weights := make([]float64, len(alloc))

	for i, entry := range alloc {
		asset, ok := p.catalog.Asset(entry.Asset)
		if !ok {
			return domain.ScenarioSet{}, &domain.CatalogIntegrityError{Kind: "asset", Name: entry.Asset}
		}
		ranges[i] = scenarioReturns(asset, macro)
		weights[i] = entry.Percent / 100
	}

	volatility := portfolioVolatility(ranges, weights)

	pessimistic := weightedReturn(ranges, weights, func(r domain.ReturnRange) float64 { return r.Pessimistic })
	baseline := weightedReturn(ranges, weights, func(r domain.ReturnRange) float64 { return r.Baseline })
	optimistic := weightedReturn(ranges, weights, func(r domain.ReturnRange) float64 { return r.Optimistic })

	return domain.ScenarioSet{
		Pessimistic: buildScenario(pessimistic, volatility, initialAmount, horizonYears),
		Baseline:    buildScenario(baseline, volatility, initialAmount, horizonYears),
		Optimistic:  buildScenario(optimistic, volatility, initialAmount, horizonYears),
	}, nil
}

// scenarioReturns resolves the per-scenario returns for an asset,
// applying the macro re-anchoring for rate-tracking categories
func scenarioReturns(asset domain.AssetClass, macro *domain.MacroSnapshot) domain.ReturnRange {
	if macro == nil {
		return asset.ExpectedReturn
	}

	switch asset.Regulatory.RegulatoryCategory {
	case categoryFixedIncome, categoryCash:
		return domain.ReturnRange{
			Pessimistic: macro.SelicAnnual - policyRateSpread,
			Baseline:    macro.SelicAnnual,
			Optimistic:  macro.SelicAnnual + policyRateSpread,
		}
	}
	return asset.ExpectedReturn
}

// weightedReturn computes the portfolio return for one scenario:
// sum of per-asset scenario return times allocation weight
func weightedReturn(ranges []domain.ReturnRange, weights []float64, pick func(domain.ReturnRange) float64) float64 {
	total := 0.0
	for i, r := range ranges {
		total += pick(r) * weights[i]
	}
	return formulas.Round4(total)
}

// portfolioVolatility combines per-asset spread-derived volatility
// proxies quadratically: sqrt(sum(((opt-pess)/4 * weight)^2)) * 100.
// No asset correlations are modeled; the spread/4 proxy is a deliberate
// simplification of the source data model, which carries no covariance
// information.
func portfolioVolatility(ranges []domain.ReturnRange, weights []float64) float64 {
	contributions := make([]float64, len(ranges))
	for i, r := range ranges {
		contributions[i] = (r.Optimistic - r.Pessimistic) / 4 * weights[i]
	}
	return formulas.Round2(formulas.QuadraticSum(contributions) * 100)
}

// buildScenario assembles one scenario projection. Projected values use
// lump-sum compound growth at 1 year, 3 years and the target horizon;
// monthly contributions are not compounded.
func buildScenario(annualReturn, volatility, initialAmount float64, horizonYears int) domain.ScenarioProjection {
	return domain.ScenarioProjection{
		ExpectedReturn: annualReturn,
		RiskLevel:      volatility,
		ProjectedValue: domain.ProjectedValue{
			OneYear:    formulas.Round2(formulas.FutureValue(initialAmount, annualReturn, 1)),
			ThreeYears: formulas.Round2(formulas.FutureValue(initialAmount, annualReturn, 3)),
			AtTarget:   formulas.Round2(formulas.FutureValue(initialAmount, annualReturn, horizonYears)),
		},
	}
}
