// Package server provides the HTTP server and routing for the advisory
// engine.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/rmoura/advisor/internal/catalog"
	"github.com/rmoura/advisor/internal/modules/recommendation"
	"github.com/rmoura/advisor/internal/modules/strategy"
)

// Config holds server configuration
type Config struct {
	Port                   int
	Log                    zerolog.Logger
	DevMode                bool
	Catalog                *catalog.Catalog
	RecommendationHandlers *recommendation.Handlers
	StrategyHandlers       *strategy.Handlers
}

// Server represents the HTTP server
type Server struct {
	router  *chi.Mux
	server  *http.Server
	log     zerolog.Logger
	catalog *catalog.Catalog

	recommendations *recommendation.Handlers
	strategies      *strategy.Handlers

	startupTime time.Time
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:          chi.NewRouter(),
		log:             cfg.Log.With().Str("component", "server").Logger(),
		catalog:         cfg.Catalog,
		recommendations: cfg.RecommendationHandlers,
		strategies:      cfg.StrategyHandlers,
		startupTime:     time.Now(),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/recommendations", func(r chi.Router) {
			r.Post("/generate", s.recommendations.HandleGenerate)
			r.Get("/", s.recommendations.HandleList)
			r.Get("/{uuid}", s.recommendations.HandleGet)
		})

		r.Route("/strategies", func(r chi.Router) {
			r.Get("/", s.strategies.HandleRank)
			r.Get("/{name}/classification", s.strategies.HandleClassify)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/strategies", s.handleCatalogStrategies)
			r.Get("/assets", s.handleCatalogAssets)
			r.Get("/benchmarks", s.handleCatalogBenchmarks)
		})

		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.handleSystemStatus)
		})
	})
}

// loggingMiddleware logs requests with zerolog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
