// Package main is the entry point for the investment advisory engine.
// It wires the static catalogs, the recommendation pipeline and the HTTP
// API, following clean architecture principles:
// - Domain layer is pure (no infrastructure dependencies)
// - Catalogs are loaded once at startup and frozen
// - Services receive dependencies via constructor injection
// - HTTP handlers live next to the modules they expose
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rmoura/advisor/internal/catalog"
	"github.com/rmoura/advisor/internal/clients/macro"
	"github.com/rmoura/advisor/internal/config"
	"github.com/rmoura/advisor/internal/database"
	"github.com/rmoura/advisor/internal/events"
	"github.com/rmoura/advisor/internal/modules/allocation"
	"github.com/rmoura/advisor/internal/modules/compliance"
	"github.com/rmoura/advisor/internal/modules/projection"
	"github.com/rmoura/advisor/internal/modules/recommendation"
	"github.com/rmoura/advisor/internal/modules/risk"
	"github.com/rmoura/advisor/internal/modules/strategy"
	"github.com/rmoura/advisor/internal/scheduler"
	"github.com/rmoura/advisor/internal/server"
	"github.com/rmoura/advisor/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting advisor")

	eventManager := events.NewManager(log)

	// Load and freeze the reference catalogs. A broken catalog is a
	// configuration error: fail fast rather than degrade silently.
	cat, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalogs")
	}
	eventManager.Emit(events.CatalogLoaded, "catalog", map[string]interface{}{
		"strategies": len(cat.Strategies()),
		"assets":     len(cat.Assets()),
	})

	// Engine components. Selector and builder cross-check every name
	// their rule tables reference against the catalog.
	selector, err := strategy.NewSelector(cat)
	if err != nil {
		log.Fatal().Err(err).Msg("Strategy tables reference missing catalog entries")
	}
	builder, err := allocation.NewBuilder(cat)
	if err != nil {
		log.Fatal().Err(err).Msg("Allocation tables reference missing catalog entries")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	repo := recommendation.NewRepository(db.Conn(), log)
	if err := repo.InitSchema(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database schema")
	}

	macroClient := macro.NewClient(cfg.MacroServiceURL, cfg.MacroTimeout, cfg.MacroCacheTTL, log)

	service := recommendation.NewService(recommendation.Config{
		Scorer:       risk.NewScorer(),
		Selector:     selector,
		Builder:      builder,
		Projector:    projection.NewProjector(cat),
		Validator:    compliance.NewValidator(cat),
		Catalog:      cat,
		Macro:        macroClient,
		Events:       eventManager,
		MacroTimeout: cfg.MacroTimeout,
		Log:          log,
	})

	srv := server.New(server.Config{
		Port:                   cfg.Port,
		Log:                    log,
		DevMode:                cfg.DevMode,
		Catalog:                cat,
		RecommendationHandlers: recommendation.NewHandlers(service, repo, eventManager, log),
		StrategyHandlers:       strategy.NewHandlers(selector, log),
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Port).Msg("Server started")

	// Background macro snapshot refresh, only when a provider is wired.
	// The engine works without it in baseline-only mode.
	sched := scheduler.New(log)
	if cfg.MacroServiceURL != "" {
		refreshJob := macro.NewRefreshJob(macroClient, eventManager, cfg.MacroTimeout, log)
		if err := sched.AddJob(cfg.MacroRefreshJob, refreshJob); err != nil {
			log.Fatal().Err(err).Msg("Failed to register macro refresh job")
		}
		if err := sched.RunNow(refreshJob); err != nil {
			log.Warn().Err(err).Msg("Initial macro refresh failed, continuing in baseline-only mode")
		}
		sched.Start()
	} else {
		log.Info().Msg("No macro service configured, running in baseline-only mode")
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down...")
	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
