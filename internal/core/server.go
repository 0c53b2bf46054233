// Package core provides the API chassis for the raincast service. It creates
// a chi router and enforces cross-cutting concerns -- panic recovery, request
// correlation, logging, security headers, CORS, and metrics -- before
// requests reach domain-specific handlers.
package core

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raincast/internal/config"
)

// MetricsCollector defines the interface for recording API telemetry.
type MetricsCollector interface {
	// RecordRequest records API request metrics including latency and count.
	RecordRequest(method, endpoint, status string, duration time.Duration)
}

// Server encapsulates all dependencies for the raincast API, allowing for
// easy injection during testing and distinct configuration for different
// environments.
type Server struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics MetricsCollector

	// RouteRegistrars are populated by the application entry point before
	// MountRoutes is called. This indirection avoids import cycles between
	// core and handler packages.
	RouteRegistrars []func(chi.Router)

	// Internal router
	router *chi.Mux
}

// NewServer initializes dependencies and prepares the server for route
// mounting. The caller is responsible for appending RouteRegistrars and
// calling MountRoutes after construction; this separation allows tests to
// customize route registration.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	return &Server{
		Config: cfg,
		Logger: logger,
		router: chi.NewRouter(),
	}, nil
}

// Handler returns the http.Handler interface for the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Router returns the underlying chi.Mux for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}
