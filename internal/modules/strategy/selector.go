// Package strategy picks a best-fit strategy from the catalog and
// classifies every catalog entry's compatibility for presentation.
package strategy

import (
	"sort"

	"github.com/rmoura/advisor/internal/catalog"
	"github.com/rmoura/advisor/internal/domain"
)

// Strategy names referenced by the decision tables. Startup validation
// cross-checks every one of these against the loaded catalog.
const (
	StrategyTraditional     = "traditional"
	StrategyPermanent       = "permanent"
	StrategyAllWeather      = "allweather"
	StrategyMinimumVariance = "minimumvariance"
	StrategyMomentum        = "momentum"
	StrategyBarbell         = "barbell"
	StrategyFactor          = "factor"
	StrategyEndowment       = "endowment"
	StrategyTailHedge       = "tailhedge"
	StrategyEqualWeight     = "equalweight"
)

// Objective-first default table. Missing (objective, profile) pairs fall
// through to the profile-only defaults, never to an error.
var objectiveDefaults = map[domain.ObjectiveCode]map[domain.RiskProfile]string{
	domain.ObjectiveIncome: {
		domain.ProfileConservative: StrategyTraditional,
		domain.ProfileModerate:     StrategyTraditional,
		domain.ProfileAggressive:   StrategyTraditional,
	},
	domain.ObjectiveReserve: {
		domain.ProfileConservative: StrategyMinimumVariance,
		domain.ProfileModerate:     StrategyMinimumVariance,
		domain.ProfileAggressive:   StrategyMinimumVariance,
	},
	domain.ObjectiveRetirement: {
		domain.ProfileConservative: StrategyTraditional,
		domain.ProfileModerate:     StrategyPermanent,
		domain.ProfileAggressive:   StrategyAllWeather,
	},
	domain.ObjectiveWealth: {
		domain.ProfileConservative: StrategyAllWeather,
		domain.ProfileModerate:     StrategyFactor,
		domain.ProfileAggressive:   StrategyMomentum,
	},
}

// Profile-only fallback, used when the objective has no dedicated branch
var profileDefaults = map[domain.RiskProfile]string{
	domain.ProfileConservative: StrategyPermanent,
	domain.ProfileModerate:     StrategyAllWeather,
	domain.ProfileAggressive:   StrategyEndowment,
}

// Selector resolves default strategies and compatibility tiers against a
// frozen catalog
type Selector struct {
	catalog *catalog.Catalog
}

// NewSelector creates a selector after verifying every strategy name
// referenced by the decision tables exists in the catalog. A missing name
// is a CatalogIntegrityError and must abort startup.
func NewSelector(cat *catalog.Catalog) (*Selector, error) {
	for _, name := range referencedStrategies() {
		if !cat.HasStrategy(name) {
			return nil, &domain.CatalogIntegrityError{Kind: "strategy", Name: name}
		}
	}
	return &Selector{catalog: cat}, nil
}

// referencedStrategies collects every name the tables can resolve to
func referencedStrategies() []string {
	seen := map[string]bool{}
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, byProfile := range objectiveDefaults {
		for _, name := range byProfile {
			add(name)
		}
	}
	for _, name := range profileDefaults {
		add(name)
	}
	for _, names := range idealByProfile {
		for _, name := range names {
			add(name)
		}
	}
	for _, names := range cautionByProfile {
		for _, name := range names {
			add(name)
		}
	}
	for _, name := range longHorizonStrategies {
		add(name)
	}
	for _, name := range tailIlliquidStrategies {
		add(name)
	}
	for _, name := range highTurnoverStrategies {
		add(name)
	}
	for _, name := range earlyAccumulationStrategies {
		add(name)
	}

	return names
}

// SelectDefault resolves the default strategy for an objective/profile
// pair. Total over the full domain: unmatched combinations fall through
// to the profile-only default.
func (s *Selector) SelectDefault(profile domain.RiskProfile, objective domain.ObjectiveCode) string {
	if byProfile, ok := objectiveDefaults[objective]; ok {
		if name, ok := byProfile[profile]; ok {
			return name
		}
	}
	return profileDefaults[profile]
}

// RankedStrategy pairs a catalog entry with its compatibility tier
type RankedStrategy struct {
	Strategy domain.StrategyDefinition `json:"strategy"`
	Tier     domain.CompatibilityTier  `json:"tier"`
}

// Rank classifies the full catalog for a client and sorts it by
// compatibility tier ascending, then alphabetically by name.
func (s *Selector) Rank(profile domain.RiskProfile, horizonYears, age int) []RankedStrategy {
	strategies := s.catalog.Strategies()
	ranked := make([]RankedStrategy, 0, len(strategies))

	for _, def := range strategies {
		ranked = append(ranked, RankedStrategy{
			Strategy: def,
			Tier:     s.Classify(def.Name, profile, horizonYears, age),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Tier.Rank() != ranked[j].Tier.Rank() {
			return ranked[i].Tier.Rank() < ranked[j].Tier.Rank()
		}
		return ranked[i].Strategy.Name < ranked[j].Strategy.Name
	})

	return ranked
}
