// Package compliance cross-checks allocations against suitability and
// concentration rules.
package compliance

import (
	"fmt"

	"github.com/rmoura/advisor/internal/catalog"
	"github.com/rmoura/advisor/internal/domain"
)

const (
	// Allocations at or below this percentage are exploratory and do not
	// trigger suitability non-compliance
	suitabilityCutoff = 5.0

	// Above this percentage a concentration warning is attached.
	// Advisory only: concentration never flips compliance.
	concentrationCutoff = 40.0
)

// Boilerplate disclosures attached to every result
var standardDisclosures = []string{
	"Rentabilidade projetada nao constitui garantia de resultado futuro.",
	"Rentabilidade passada nao e garantia de rentabilidade futura.",
	"Valores projetados sao brutos, sem deducao de taxas e impostos.",
}

// Validator checks allocations against the client's risk profile
type Validator struct {
	catalog *catalog.Catalog
}

// NewValidator creates a compliance validator
func NewValidator(cat *catalog.Catalog) *Validator {
	return &Validator{catalog: cat}
}

// Validate applies the suitability and concentration rules and collects
// required disclosures. Violations are data in the result, never errors:
// the engine always returns a result and leaves the accept/reject
// decision to the caller.
func (v *Validator) Validate(profile domain.RiskProfile, alloc domain.Allocation) (domain.ComplianceResult, error) {
	result := domain.ComplianceResult{
		IsCompliant:         true,
		Warnings:            []string{},
		RequiredDisclosures: append([]string{}, standardDisclosures...),
		BenchmarkComparison: v.catalog.Benchmarks(),
	}

	for _, entry := range alloc {
		asset, ok := v.catalog.Asset(entry.Asset)
		if !ok {
			return domain.ComplianceResult{}, &domain.CatalogIntegrityError{Kind: "asset", Name: entry.Asset}
		}

		// Rule A: suitability, above the exploratory cutoff
		if entry.Percent > suitabilityCutoff && !asset.Regulatory.Suitable(profile) {
			result.IsCompliant = false
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"%.0f%% em %s nao e adequado ao perfil %s",
				entry.Percent, asset.Name, profile,
			))
		}

		// Rule B: concentration, advisory only
		if entry.Percent > concentrationCutoff {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"concentracao de %.0f%% em %s excede o limite recomendado de %.0f%%",
				entry.Percent, asset.Name, concentrationCutoff,
			))
		}

		// Asset-specific disclosures for funded lines
		if entry.Percent > 0 {
			result.RequiredDisclosures = append(result.RequiredDisclosures, asset.Regulatory.RequiredDisclosures...)
		}
	}

	return result, nil
}
