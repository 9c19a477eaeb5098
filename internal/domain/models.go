// Package domain contains the pure advisory domain model.
// No infrastructure dependencies are allowed here.
package domain

import "time"

// RiskProfile classifies a client's risk tolerance
type RiskProfile string

const (
	ProfileConservative RiskProfile = "conservative"
	ProfileModerate     RiskProfile = "moderate"
	ProfileAggressive   RiskProfile = "aggressive"
)

// AllRiskProfiles returns every risk profile, in ascending risk order
func AllRiskProfiles() []RiskProfile {
	return []RiskProfile{ProfileConservative, ProfileModerate, ProfileAggressive}
}

// Valid reports whether the profile is a known value
func (p RiskProfile) Valid() bool {
	switch p {
	case ProfileConservative, ProfileModerate, ProfileAggressive:
		return true
	}
	return false
}

// ObjectiveCode identifies what the client is investing for
type ObjectiveCode string

const (
	ObjectiveRetirement ObjectiveCode = "retirement"
	ObjectiveReserve    ObjectiveCode = "reserve"
	ObjectiveWealth     ObjectiveCode = "wealth"
	ObjectiveIncome     ObjectiveCode = "income"
	ObjectiveEducation  ObjectiveCode = "education"
)

// AllObjectives returns every supported objective code
func AllObjectives() []ObjectiveCode {
	return []ObjectiveCode{
		ObjectiveRetirement,
		ObjectiveReserve,
		ObjectiveWealth,
		ObjectiveIncome,
		ObjectiveEducation,
	}
}

// Valid reports whether the objective is a known value
func (o ObjectiveCode) Valid() bool {
	for _, known := range AllObjectives() {
		if o == known {
			return true
		}
	}
	return false
}

// InvestmentStyle describes how the client has traded historically
type InvestmentStyle string

const (
	StyleBuyAndHold  InvestmentStyle = "buy_and_hold"
	StyleActive      InvestmentStyle = "active"
	StyleSpeculative InvestmentStyle = "speculative"
)

// HistoricalBehavior captures self-reported past investment behavior.
// Optional input, kept on the profile for audit purposes.
type HistoricalBehavior struct {
	RiskTolerance       int             `json:"risk_tolerance"` // 1-10 self assessment
	InvestmentStyle     InvestmentStyle `json:"investment_style"`
	PreviousRedemptions int             `json:"previous_redemptions"`
}

// ClientProfile is the immutable demographic/financial input for a
// recommendation request
type ClientProfile struct {
	Age           int                 `json:"age"`
	IncomeMonthly float64             `json:"income_monthly"`
	Objectives    []ObjectiveCode     `json:"objectives"`
	History       *HistoricalBehavior `json:"historical_behavior,omitempty"`
}

// InvestmentGoal describes what the recommendation should plan for
type InvestmentGoal struct {
	HorizonYears        int           `json:"horizon_years"`
	Objective           ObjectiveCode `json:"objective"`
	InitialAmount       float64       `json:"initial_amount"`
	MonthlyContribution float64       `json:"monthly_contribution"`
}

// TrailEntry records one scoring rule that contributed to a risk score
type TrailEntry struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	Weight     int    `json:"weight"`
}

// RiskAssessment is the output of risk scoring. The trail is kept for
// audit and never mutated after creation.
type RiskAssessment struct {
	Profile RiskProfile  `json:"profile"`
	Score   int          `json:"score"`
	Trail   []TrailEntry `json:"question_trail,omitempty"`
}

// StrategyCategory groups strategies for presentation
type StrategyCategory string

const (
	CategoryDefensive   StrategyCategory = "defensive"
	CategoryBalanced    StrategyCategory = "balanced"
	CategoryGrowth      StrategyCategory = "growth"
	CategoryAlternative StrategyCategory = "alternative"
)

// StrategyDefinition is a static catalog entry describing an investment
// philosophy. Loaded once at process start, read-only afterwards.
type StrategyDefinition struct {
	Name           string           `json:"name"`
	FocusTags      []string         `json:"focus_tags"`
	ExpectedReturn float64          `json:"expected_return"`
	Volatility     float64          `json:"volatility"`
	Description    string           `json:"description"`
	Category       StrategyCategory `json:"category"`
}

// ReturnRange holds per-scenario annual expected returns for an asset class
type ReturnRange struct {
	Pessimistic float64 `json:"pessimistic"`
	Baseline    float64 `json:"baseline"`
	Optimistic  float64 `json:"optimistic"`
}

// RegulatoryInfo carries the suitability metadata for an asset class
type RegulatoryInfo struct {
	SuitabilityProfiles []RiskProfile `json:"suitability_profiles"`
	RequiredDisclosures []string      `json:"required_disclosures"`
	RegulatoryCategory  string        `json:"regulatory_category"`
	TaxEfficiency       float64       `json:"tax_efficiency"` // 0..1
}

// Suitable reports whether the asset class is appropriate for the profile
func (r RegulatoryInfo) Suitable(p RiskProfile) bool {
	for _, sp := range r.SuitabilityProfiles {
		if sp == p {
			return true
		}
	}
	return false
}

// AssetClass is a static catalog entry for an investable asset class.
// Color is display-only and ignored by the engine.
type AssetClass struct {
	Name           string         `json:"name"`
	Color          string         `json:"color"`
	ExpectedReturn ReturnRange    `json:"expected_return"`
	Regulatory     RegulatoryInfo `json:"regulatory_info"`
}

// AllocationTolerance is the accepted deviation from 100% after
// normalization rounding
const AllocationTolerance = 0.01

// AllocationEntry is one asset-class line of an allocation
type AllocationEntry struct {
	Asset   string  `json:"asset"`
	Percent float64 `json:"percent"`
}

// Allocation is an ordered percentage breakdown across asset classes
type Allocation []AllocationEntry

// Total returns the sum of all entry percentages
func (a Allocation) Total() float64 {
	total := 0.0
	for _, e := range a {
		total += e.Percent
	}
	return total
}

// Percent returns the percentage allocated to the named asset, 0 if absent
func (a Allocation) Percent(asset string) float64 {
	for _, e := range a {
		if e.Asset == asset {
			return e.Percent
		}
	}
	return 0
}

// ProjectedValue holds compounded monetary values at the standard checkpoints
type ProjectedValue struct {
	OneYear    float64 `json:"one_year"`
	ThreeYears float64 `json:"three_years"`
	AtTarget   float64 `json:"at_target"`
}

// ScenarioProjection is the forward projection under one economic scenario
type ScenarioProjection struct {
	ExpectedReturn float64        `json:"expected_return"`
	RiskLevel      float64        `json:"risk_level"`
	ProjectedValue ProjectedValue `json:"projected_value"`
}

// ScenarioSet bundles the three deterministic scenarios
type ScenarioSet struct {
	Pessimistic ScenarioProjection `json:"pessimistic"`
	Baseline    ScenarioProjection `json:"baseline"`
	Optimistic  ScenarioProjection `json:"optimistic"`
}

// BenchmarkComparison is a static reference benchmark row
type BenchmarkComparison struct {
	Name                   string  `json:"name"`
	ExpectedOutperformance float64 `json:"expected_outperformance"`
	HistoricalCorrelation  float64 `json:"historical_correlation"`
}

// ComplianceResult is the outcome of suitability validation. Rule
// violations are data here, never errors.
type ComplianceResult struct {
	IsCompliant         bool                  `json:"is_compliant"`
	Warnings            []string              `json:"warnings"`
	RequiredDisclosures []string              `json:"required_disclosures"`
	BenchmarkComparison []BenchmarkComparison `json:"benchmark_comparison"`
}

// CompatibilityTier classifies how well a strategy fits a client
type CompatibilityTier string

const (
	TierIdeal    CompatibilityTier = "ideal"
	TierSuitable CompatibilityTier = "suitable"
	TierCaution  CompatibilityTier = "caution"
)

// Rank returns the sort order of the tier (ideal < suitable < caution)
func (t CompatibilityTier) Rank() int {
	switch t {
	case TierIdeal:
		return 0
	case TierSuitable:
		return 1
	case TierCaution:
		return 2
	}
	return 3
}

// MacroSnapshot is the already-resolved output of the external macro-data
// provider. Absence of a snapshot must never prevent a recommendation.
type MacroSnapshot struct {
	SelicAnnual float64   `json:"selic_annual"`
	IPCAAnnual  float64   `json:"ipca_annual"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Recommendation is the root aggregate returned by the orchestrator.
// Created once per request and never mutated; recomputation produces a
// new instance.
type Recommendation struct {
	Client     ClientProfile      `json:"client"`
	Goal       InvestmentGoal     `json:"goal"`
	Risk       RiskAssessment     `json:"risk"`
	Strategy   StrategyDefinition `json:"strategy"`
	Allocation Allocation         `json:"allocation"`
	Scenarios  ScenarioSet        `json:"scenarios"`
	Compliance ComplianceResult   `json:"compliance"`
	Warnings   []string           `json:"warnings,omitempty"`
}
