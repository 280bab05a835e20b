// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"

	_ "github.com/tomtom215/wanderlust/docs" // Import generated swagger docs
	"github.com/tomtom215/wanderlust/internal/api"
	"github.com/tomtom215/wanderlust/internal/config"
	"github.com/tomtom215/wanderlust/internal/logging"
	"github.com/tomtom215/wanderlust/internal/supervisor"
	"github.com/tomtom215/wanderlust/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// statsReportInterval is how often engine counters are exported to Prometheus.
const statsReportInterval = 30 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
}

//nolint:gocyclo // Sequential startup wiring
func run() error {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Wanderlust with supervisor tree")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Bridges zerolog to slog for sutureslog and watermill
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: cfg.Supervisor.FailureThreshold,
		FailureDecay:     cfg.Supervisor.FailureDecay,
		FailureBackoff:   cfg.Supervisor.FailureBackoff,
		ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	engine, resultCache, err := initRecommend(cfg, logging.WithComponent("recommend"))
	if err != nil {
		return err
	}
	if resultCache != nil {
		tree.AddMessagingService(resultCache)
	}

	eventComponents, err := initEvents(cfg, engine, tree, watermill.NewSlogLogger(slogLogger), logging.WithComponent("events"))
	if err != nil {
		return fmt.Errorf("initialize events: %w", err)
	}
	defer func() {
		if err := eventComponents.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()

	tree.AddMessagingService(services.NewStatsReporterService(engine, statsReportInterval, logging.WithComponent("stats")))

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	chiCfg := api.NewChiMiddlewareConfig(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	chiCfg.RequestTimeout = cfg.Server.RequestTimeout

	handler := api.NewHandler(engine, api.HandlerOptions{
		Version:        version,
		EventsActive:   eventComponents.Active,
		Hub:            eventComponents.Hub(),
		AllowedOrigins: cfg.Security.CORSOrigins,
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(chiCfg))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The channel delivers exactly one value when the tree stops.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
		stop()
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
	return nil
}
