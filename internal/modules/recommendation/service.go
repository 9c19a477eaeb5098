// Package recommendation composes the advisory pipeline into a single
// entry point.
package recommendation

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rmoura/advisor/internal/catalog"
	"github.com/rmoura/advisor/internal/domain"
	"github.com/rmoura/advisor/internal/events"
	"github.com/rmoura/advisor/internal/modules/allocation"
	"github.com/rmoura/advisor/internal/modules/compliance"
	"github.com/rmoura/advisor/internal/modules/projection"
	"github.com/rmoura/advisor/internal/modules/risk"
	"github.com/rmoura/advisor/internal/modules/strategy"
)

// Warning attached when the macro provider cannot deliver a snapshot
const macroFallbackWarning = "Dados macroeconomicos indisponiveis; projecoes usam as premissas estaticas do catalogo."

// MacroProvider supplies current macro conditions. Implementations must
// honor context deadlines; failure is recoverable.
type MacroProvider interface {
	CurrentConditions(ctx context.Context) (*domain.MacroSnapshot, error)
}

// Service orchestrates the full pipeline:
// risk scoring -> strategy selection -> allocation -> projection ->
// compliance -> assembled Recommendation.
// Stateless per call; safe for concurrent use.
type Service struct {
	scorer       *risk.Scorer
	selector     *strategy.Selector
	builder      *allocation.Builder
	projector    *projection.Projector
	validator    *compliance.Validator
	catalog      *catalog.Catalog
	macro        MacroProvider
	events       *events.Manager
	macroTimeout time.Duration
	log          zerolog.Logger
}

// Config holds the service dependencies
type Config struct {
	Scorer       *risk.Scorer
	Selector     *strategy.Selector
	Builder      *allocation.Builder
	Projector    *projection.Projector
	Validator    *compliance.Validator
	Catalog      *catalog.Catalog
	Macro        MacroProvider
	Events       *events.Manager
	MacroTimeout time.Duration
	Log          zerolog.Logger
}

// NewService creates the recommendation orchestrator
func NewService(cfg Config) *Service {
	timeout := cfg.MacroTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &Service{
		scorer:       cfg.Scorer,
		selector:     cfg.Selector,
		builder:      cfg.Builder,
		projector:    cfg.Projector,
		validator:    cfg.Validator,
		catalog:      cfg.Catalog,
		macro:        cfg.Macro,
		events:       cfg.Events,
		macroTimeout: timeout,
		log:          cfg.Log.With().Str("service", "recommendation").Logger(),
	}
}

// Generate runs the full pipeline for one client. strategyOverride, when
// non-empty, replaces the default strategy selection and must name a
// catalog strategy. The returned Recommendation is immutable; calling
// again with identical inputs and an unchanged catalog produces an
// identical value (excluding injected macro data).
func (s *Service) Generate(ctx context.Context, client domain.ClientProfile, goal domain.InvestmentGoal, strategyOverride string) (*domain.Recommendation, error) {
	if err := validateRequest(client, goal); err != nil {
		return nil, err
	}
	if strategyOverride != "" && !s.catalog.HasStrategy(strategyOverride) {
		return nil, domain.NewInvalidInput("strategy_override", "names a strategy not in the catalog")
	}

	assessment := s.scorer.Score(client.Age, goal.Objective, goal.HorizonYears)

	strategyName := strategyOverride
	if strategyName == "" {
		strategyName = s.selector.SelectDefault(assessment.Profile, goal.Objective)
	}
	strategyDef, ok := s.catalog.Strategy(strategyName)
	if !ok {
		// Selector names are validated at startup; reaching this means
		// the catalog changed underneath us
		return nil, &domain.CatalogIntegrityError{Kind: "strategy", Name: strategyName}
	}

	alloc := s.builder.Build(assessment.Profile, client.Age, goal.Objective)

	var warnings []string
	snapshot := s.fetchMacro(ctx)
	if snapshot == nil {
		warnings = append(warnings, macroFallbackWarning)
	}

	scenarios, err := s.projector.Project(alloc, goal.HorizonYears, goal.InitialAmount, snapshot)
	if err != nil {
		return nil, err
	}

	complianceResult, err := s.validator.Validate(assessment.Profile, alloc)
	if err != nil {
		return nil, err
	}
	if !complianceResult.IsCompliant {
		s.events.Emit(events.ComplianceViolationFound, "recommendation", map[string]interface{}{
			"profile":  string(assessment.Profile),
			"warnings": complianceResult.Warnings,
		})
	}

	rec := &domain.Recommendation{
		Client:     client,
		Goal:       goal,
		Risk:       assessment,
		Strategy:   strategyDef,
		Allocation: alloc,
		Scenarios:  scenarios,
		Compliance: complianceResult,
		Warnings:   warnings,
	}

	s.events.Emit(events.RecommendationGenerated, "recommendation", map[string]interface{}{
		"profile":  string(assessment.Profile),
		"strategy": strategyDef.Name,
	})

	return rec, nil
}

// ClassifyStrategy exposes compatibility classification without running
// the pipeline, for UI filtering and labeling
func (s *Service) ClassifyStrategy(name string, profile domain.RiskProfile, horizonYears, age int) (domain.CompatibilityTier, error) {
	if !s.catalog.HasStrategy(name) {
		return "", domain.NewInvalidInput("strategy", "not in the catalog")
	}
	if !profile.Valid() {
		return "", domain.NewInvalidInput("risk_profile", "unknown profile code")
	}
	return s.selector.Classify(name, profile, horizonYears, age), nil
}

// RankStrategies classifies and orders the full catalog for a client
func (s *Service) RankStrategies(profile domain.RiskProfile, horizonYears, age int) ([]strategy.RankedStrategy, error) {
	if !profile.Valid() {
		return nil, domain.NewInvalidInput("risk_profile", "unknown profile code")
	}
	return s.selector.Rank(profile, horizonYears, age), nil
}

// fetchMacro resolves the macro snapshot within the configured timeout.
// Any failure degrades to baseline-only mode, never to an error.
func (s *Service) fetchMacro(ctx context.Context) *domain.MacroSnapshot {
	if s.macro == nil {
		return nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.macroTimeout)
	defer cancel()

	snapshot, err := s.macro.CurrentConditions(fetchCtx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Macro provider unavailable, using baseline-only mode")
		s.events.Emit(events.MacroFallbackActivated, "recommendation", nil)
		return nil
	}
	return snapshot
}

// validateRequest rejects inputs the engine refuses to work with.
// Invalid input is always surfaced, never silently corrected.
func validateRequest(client domain.ClientProfile, goal domain.InvestmentGoal) error {
	if client.Age <= 0 {
		return domain.NewInvalidInput("age", "must be positive")
	}
	if goal.HorizonYears <= 0 {
		return domain.NewInvalidInput("horizon_years", "must be positive")
	}
	if goal.InitialAmount < 0 {
		return domain.NewInvalidInput("initial_amount", "must not be negative")
	}
	if goal.MonthlyContribution < 0 {
		return domain.NewInvalidInput("monthly_contribution", "must not be negative")
	}
	if !goal.Objective.Valid() {
		return domain.NewInvalidInput("objective", "unknown objective code")
	}
	return nil
}
