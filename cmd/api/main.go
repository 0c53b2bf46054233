// Package main is the entry point for the raincast API server.
//
// It loads the configuration, initializes the structured logger and metrics,
// deserializes the two pre-trained model artifacts, builds the HTTP server
// with the core chassis (middleware, routing), and starts listening for
// requests. A missing model artifact degrades the prediction endpoints but
// never prevents startup: the descriptor, health, and metrics endpoints keep
// serving and the health body reports the load failure.
//
// Graceful shutdown is handled via OS signal interception (SIGINT, SIGTERM).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"raincast/internal/api/handlers"
	"raincast/internal/config"
	"raincast/internal/core"
	"raincast/internal/model"
	"raincast/internal/observability"
	"raincast/internal/predict"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the startup lifecycle so that main() can cleanly exit on error.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Info("raincast API starting",
		"environment", cfg.Environment,
		"version", cfg.Build.Version,
		"commit", cfg.Build.Commit,
		"port", cfg.Server.Port,
	)

	metrics := observability.NewMetrics(cfg.Observability.MetricNamespace)

	// Load both model artifacts. A failure here is recorded, not fatal.
	models := model.LoadModels(
		cfg.Models.ResolvedRainPath(),
		cfg.Models.ResolvedPrecipPath(),
		logger,
	)
	metrics.SetModelLoaded("rain", models.Rain != nil)
	metrics.SetModelLoaded("precipitation", models.Precip != nil)
	if !models.Ready() {
		logger.Warn("starting degraded, prediction endpoints will answer 500", "load_error", models.LoadErr)
	}

	srv, err := core.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	srv.Metrics = metrics

	predictionService := predict.NewService(models, metrics, logger)

	descriptorHandler := handlers.NewDescriptorHandler(cfg)
	healthHandler := handlers.NewHealthHandler(models)
	predictHandler := handlers.NewPredictHandler(predictionService, logger)

	srv.RouteRegistrars = append(srv.RouteRegistrars,
		descriptorHandler.RegisterRoutes,
		healthHandler.RegisterRoutes,
		predictHandler.RegisterRoutes,
		func(r chi.Router) {
			r.Method(http.MethodGet, "/metrics", metrics.Handler())
		},
	)

	srv.MountRoutes()

	return runHTTPServer(srv, cfg, logger)
}

// runHTTPServer starts the server in standard HTTP mode with graceful shutdown.
func runHTTPServer(srv *core.Server, cfg *config.Config, logger *slog.Logger) error {
	addr := ":" + cfg.Server.Port

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Channel to capture server errors from ListenAndServe.
	serverErr := make(chan error, 1)

	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for shutdown signal or server error.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	// Graceful shutdown with a 10-second deadline.
	logger.Info("initiating graceful shutdown")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped cleanly")
	return nil
}

// newLogger creates a structured slog.Logger configured for the given log level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: false,
	})
	return slog.New(handler)
}
