package strategy

import "github.com/rmoura/advisor/internal/domain"

// Static per-profile compatibility lists, checked first
var idealByProfile = map[domain.RiskProfile][]string{
	domain.ProfileConservative: {StrategyPermanent, StrategyMinimumVariance, StrategyTraditional},
	domain.ProfileModerate:     {StrategyAllWeather, StrategyFactor, StrategyPermanent},
	domain.ProfileAggressive:   {StrategyMomentum, StrategyBarbell, StrategyFactor, StrategyEndowment},
}

var cautionByProfile = map[domain.RiskProfile][]string{
	domain.ProfileConservative: {StrategyMomentum, StrategyBarbell, StrategyTailHedge, StrategyEndowment},
	domain.ProfileModerate:     {StrategyBarbell, StrategyTailHedge},
	domain.ProfileAggressive:   {StrategyMinimumVariance},
}

// Strategies that need time to work; penalized below a 3 year horizon
var longHorizonStrategies = []string{StrategyEndowment, StrategyAllWeather, StrategyFactor}

// Tail/illiquid strategies that benefit from horizons beyond 8 years
var tailIlliquidStrategies = []string{StrategyTailHedge, StrategyEndowment}

// High-turnover strategies penalized past age 60
var highTurnoverStrategies = []string{StrategyMomentum, StrategyBarbell}

// Strategies favored for clients still accumulating (under 40)
var earlyAccumulationStrategies = []string{StrategyFactor, StrategyEndowment}

// Classify evaluates compatibility rules in fixed order: per-profile
// lists, then horizon overrides, then age overrides. The first matching
// rule wins; with no match the strategy is plain suitable.
func (s *Selector) Classify(name string, profile domain.RiskProfile, horizonYears, age int) domain.CompatibilityTier {
	if contains(idealByProfile[profile], name) {
		return domain.TierIdeal
	}
	if contains(cautionByProfile[profile], name) {
		return domain.TierCaution
	}

	if horizonYears < 3 && contains(longHorizonStrategies, name) {
		return domain.TierCaution
	}
	if horizonYears > 8 && contains(tailIlliquidStrategies, name) {
		return domain.TierIdeal
	}

	if age > 60 && contains(highTurnoverStrategies, name) {
		return domain.TierCaution
	}
	if age < 40 && contains(earlyAccumulationStrategies, name) {
		return domain.TierIdeal
	}

	return domain.TierSuitable
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
