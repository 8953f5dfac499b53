package rest

import (
	"net/http"

	"anniversary-backend/application/frames"
	"anniversary-backend/application/resolver"
	"anniversary-backend/infrastructure/config"
	"anniversary-backend/interfaces/http/rest/handlers"
	"anniversary-backend/interfaces/http/rest/middleware"
	"anniversary-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg      *config.Config
	builder  *frames.Builder
	resolver *resolver.Resolver
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	builder *frames.Builder,
	res *resolver.Resolver,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:      cfg,
		builder:  builder,
		resolver: res,
		metrics:  metrics,
		logger:   logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	// CORS configuration
	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.cfg.EnableMetrics {
		router.Handle("/metrics", promhttp.Handler())
	}

	// Frame endpoints
	frameHandler := handlers.NewFrameHandler(rt.builder, rt.metrics, rt.logger)
	router.Route("/frames", func(r chi.Router) {
		r.Get("/", frameHandler.Initial)
		r.Post("/", frameHandler.Action)
	})

	// Card and profile endpoints
	router.Route("/api", func(r chi.Router) {
		r.Get("/og", handlers.NewOGHandler(rt.logger).Render)
		r.Get("/farcaster-user", handlers.NewUserHandler(rt.resolver, rt.logger).Get)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	// The service holds no connections of its own; ready once the process is
	// serving.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
