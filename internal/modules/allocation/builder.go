// Package allocation builds percentage asset allocations from a client's
// risk profile, age and objective.
package allocation

import (
	"math"

	"github.com/rmoura/advisor/internal/catalog"
	"github.com/rmoura/advisor/internal/domain"
)

// Canonical asset class names, matching the asset catalog
const (
	AssetFixedIncome   = "Renda Fixa"
	AssetEquities      = "Renda Variavel"
	AssetRealEstate    = "Fundos Imobiliarios"
	AssetInternational = "Internacional"
	AssetCrypto        = "Cripto"
	AssetCash          = "Caixa"
)

// Output order of allocation entries
var assetOrder = []string{
	AssetFixedIncome,
	AssetEquities,
	AssetRealEstate,
	AssetInternational,
	AssetCrypto,
	AssetCash,
}

// Per-profile base allocations. Each map sums to exactly 100.
// Conservative deliberately has no crypto line.
var baseAllocations = map[domain.RiskProfile]map[string]float64{
	domain.ProfileConservative: {
		AssetFixedIncome:   65,
		AssetEquities:      10,
		AssetRealEstate:    5,
		AssetInternational: 5,
		AssetCash:          15,
	},
	domain.ProfileModerate: {
		AssetFixedIncome:   40,
		AssetEquities:      25,
		AssetRealEstate:    15,
		AssetInternational: 10,
		AssetCrypto:        5,
		AssetCash:          5,
	},
	domain.ProfileAggressive: {
		AssetFixedIncome:   15,
		AssetEquities:      45,
		AssetRealEstate:    10,
		AssetInternational: 15,
		AssetCrypto:        10,
		AssetCash:          5,
	},
}

// Builder produces allocations validated against the asset catalog
type Builder struct {
	catalog *catalog.Catalog
}

// NewBuilder creates a builder after verifying every asset name in the
// base tables exists in the catalog. A missing name is a
// CatalogIntegrityError and must abort startup.
func NewBuilder(cat *catalog.Catalog) (*Builder, error) {
	for _, base := range baseAllocations {
		for name := range base {
			if !cat.HasAsset(name) {
				return nil, &domain.CatalogIntegrityError{Kind: "asset", Name: name}
			}
		}
	}
	return &Builder{catalog: cat}, nil
}

// Build produces the percentage allocation for a client. Adjustments are
// applied in fixed order: profile base, then age, then objective; each
// delta is individually clamped to its floor/cap. Clamping is part of
// the algorithm, never an error.
func (b *Builder) Build(profile domain.RiskProfile, age int, objective domain.ObjectiveCode) domain.Allocation {
	weights := make(map[string]float64, len(baseAllocations[profile]))
	for name, pct := range baseAllocations[profile] {
		weights[name] = pct
	}

	applyAgeAdjustment(weights, age)
	applyObjectiveAdjustment(weights, objective, age)
	normalize(weights)

	alloc := make(domain.Allocation, 0, len(weights))
	for _, name := range assetOrder {
		if pct, ok := weights[name]; ok {
			alloc = append(alloc, domain.AllocationEntry{Asset: name, Percent: pct})
		}
	}
	return alloc
}

// applyAgeAdjustment tilts young clients toward equities/crypto and
// older clients toward fixed income and cash
func applyAgeAdjustment(weights map[string]float64, age int) {
	switch {
	case age < 30:
		increase(weights, AssetEquities, 5, 60)
		increase(weights, AssetCrypto, 5, 20)
		decrease(weights, AssetFixedIncome, 10, 10)
	case age > 55:
		decrease(weights, AssetEquities, 10, 10)
		decrease(weights, AssetCrypto, 5, 0)
		increase(weights, AssetFixedIncome, 10, 70)
		increase(weights, AssetCash, 5, 20)
	}
}

// applyObjectiveAdjustment applies the objective-specific tilt on top of
// the age-adjusted weights
func applyObjectiveAdjustment(weights map[string]float64, objective domain.ObjectiveCode, age int) {
	switch objective {
	case domain.ObjectiveRetirement:
		if age > 50 {
			increase(weights, AssetFixedIncome, 10, 70)
			decrease(weights, AssetEquities, 10, 5)
		}
	case domain.ObjectiveReserve:
		increase(weights, AssetCash, 20, 50)
		decrease(weights, AssetEquities, 15, 0)
		decrease(weights, AssetCrypto, 10, 0)
	case domain.ObjectiveWealth:
		increase(weights, AssetEquities, 10, 70)
		increase(weights, AssetCrypto, 5, 20)
		decrease(weights, AssetCash, 5, 0)
	case domain.ObjectiveIncome:
		increase(weights, AssetRealEstate, 15, 40)
		decrease(weights, AssetEquities, 10, 5)
		decrease(weights, AssetCrypto, 5, 0)
	}
}

// increase adds delta to an existing line, clamped to cap. Lines the
// profile does not carry (e.g. crypto for conservative) are skipped.
func increase(weights map[string]float64, asset string, delta, cap float64) {
	v, ok := weights[asset]
	if !ok || v >= cap {
		return
	}
	v += delta
	if v > cap {
		v = cap
	}
	weights[asset] = v
}

// decrease subtracts delta from an existing line, clamped to floor
func decrease(weights map[string]float64, asset string, delta, floor float64) {
	v, ok := weights[asset]
	if !ok || v <= floor {
		return
	}
	v -= delta
	if v < floor {
		v = floor
	}
	weights[asset] = v
}

// normalize rescales the weights to sum to 100 and rounds each entry to
// the nearest integer. Independent per-entry rounding can leave the
// total slightly off 100 (at most one percentage point per entry); that
// drift is a documented property of the algorithm and is NOT
// redistributed afterwards.
func normalize(weights map[string]float64) {
	total := 0.0
	for _, v := range weights {
		total += v
	}
	if total <= 0 || math.Abs(total-100) <= domain.AllocationTolerance {
		return
	}

	factor := 100 / total
	for name, v := range weights {
		weights[name] = math.Round(v * factor)
	}
}
