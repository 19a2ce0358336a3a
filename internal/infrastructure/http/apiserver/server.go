// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/alchemorsel/recipegen/internal/infrastructure/config"
	"github.com/alchemorsel/recipegen/internal/infrastructure/http/handlers"
	"github.com/alchemorsel/recipegen/internal/infrastructure/http/middleware"
	"github.com/alchemorsel/recipegen/internal/infrastructure/monitoring"
	"github.com/alchemorsel/recipegen/internal/ports/inbound"
	"github.com/alchemorsel/recipegen/pkg/healthcheck"
)

// APIServer serves the recipe generation endpoints plus health and metrics
type APIServer struct {
	config  *config.Config
	logger  *zap.Logger
	server  *http.Server
	router  *chi.Mux
	service inbound.GenerationService
	health  *healthcheck.HealthCheck
	metrics *monitoring.MetricsCollector
	tracing *monitoring.TracingProvider
	openAPI *OpenAPIHandler
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	service inbound.GenerationService,
	health *healthcheck.HealthCheck,
	metrics *monitoring.MetricsCollector,
	tracing *monitoring.TracingProvider,
) *APIServer {
	log = log.Named("apiserver")
	s := &APIServer{
		config:  cfg,
		logger:  log,
		service: service,
		health:  health,
		metrics: metrics,
		tracing: tracing,
		openAPI: NewOpenAPIHandler(log),
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:         cfg.Address(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log),
	}

	return s
}

// setupRoutes configures the middleware chain and routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()
	mon := s.config.Monitoring

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Tracing(s.tracing))
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.Recovery(s.logger))
	if mon.EnableMetrics {
		r.Use(middleware.Metrics(s.metrics))
	}
	r.Use(middleware.Security())
	// CORS sits ahead of routing so preflight works on every path
	r.Use(middleware.CORS())
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(middleware.Compression(middleware.DefaultCompressionConfig()))

	r.Get(mon.HealthCheckPath, s.health.Handler())
	r.Get(mon.LivenessPath, s.health.LivenessHandler())
	r.Get(mon.ReadinessPath, s.health.ReadinessHandler())
	if mon.EnableMetrics {
		r.Method(http.MethodGet, mon.MetricsPath, s.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/openapi.yaml", s.openAPI.ServeOpenAPISpec)
		r.Get("/docs", s.openAPI.ServeSwaggerUI)

		h := handlers.NewGenerationAPIHandlers(s.service, s.logger)
		r.Route("/ai/recipes", func(r chi.Router) {
			r.Post("/by-ingredients", h.ByIngredients)
			r.Post("/by-cuisine", h.ByCuisine)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"Not found"}`)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprint(w, `{"error":"Method not allowed"}`)
	})

	return r
}

// Handler returns the root handler
func (s *APIServer) Handler() http.Handler {
	return s.router
}

// Start binds the listener and serves in the background. Bind errors are
// returned; serve errors are logged.
func (s *APIServer) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	s.logger.Info("Starting API server", zap.String("address", ln.Addr().String()))

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server stopped unexpectedly", zap.Error(err))
		}
	}()
	return nil
}

// Shutdown gracefully shuts down the server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	return s.server.Shutdown(ctx)
}
