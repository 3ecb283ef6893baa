// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/matchbox/internal/api"
	"github.com/tomtom215/matchbox/internal/config"
	"github.com/tomtom215/matchbox/internal/logging"
	"github.com/tomtom215/matchbox/internal/matchmaker"
	"github.com/tomtom215/matchbox/internal/supervisor"
	"github.com/tomtom215/matchbox/internal/supervisor/services"
)

const natsShutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("store_driver", cfg.Store.Driver).
		Bool("nats_enabled", cfg.NATS.Enabled).
		Msg("Starting MatchBox with supervisor tree")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("MatchBox stopped with an error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := initStore(ctx, &cfg.Store, logging.WithComponent("store"))
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing profile store")
		}
	}()

	comps, err := initEvents(ctx, &cfg.NATS, logging.WithComponent("events"))
	if err != nil {
		return err
	}

	engineCfg := engineConfig(&cfg.Matching)
	engine, err := matchmaker.NewEngine(&engineCfg, store, comps.publisher, logging.WithComponent("matchmaker"))
	if err != nil {
		closeEvents(comps)
		return err
	}
	defer engine.Close()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		closeEvents(comps)
		return err
	}

	// Messaging layer. The service owns the publisher from here on.
	var embedded services.EmbeddedNATS
	if comps.server != nil {
		embedded = comps.server
	}
	tree.AddMessagingService(services.NewNATSService(embedded, comps.publisher, natsShutdownTimeout, logging.Logger()))

	// API layer
	handler := api.NewHandler(engine, cfg.Server.Timeout)
	router := api.NewRouter(handler, middlewareConfig(&cfg.Security))
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, services.HTTPServiceConfig{
		Addr:            server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logging.Logger()))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if cfg.Matching.RefreshInterval > 0 {
		tree.AddAPIService(services.NewCircleRefreshService(engine, services.CircleRefreshConfig{
			Interval:     cfg.Matching.RefreshInterval,
			RunOnStartup: true,
		}, logging.Logger()))
		logging.Info().Dur("interval", cfg.Matching.RefreshInterval).Msg("Circle refresh service added")
	}

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	stop()

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}
	return nil
}

// engineConfig maps matching settings onto the engine configuration.
func engineConfig(cfg *config.MatchingConfig) matchmaker.Config {
	out := matchmaker.DefaultConfig()
	out.MatchThreshold = cfg.MatchThreshold
	out.MaxResults = cfg.MaxResults
	out.DefaultDistance = cfg.DefaultDistance
	out.DefaultCircleSize = cfg.DefaultCircleSize
	out.MinCircleSize = cfg.MinCircleSize
	out.MaxCircleSize = cfg.MaxCircleSize
	out.BestMatchLimit = cfg.BestMatchLimit
	out.Workers = cfg.Workers
	out.CacheTTL = cfg.CacheTTL
	return out
}

// middlewareConfig maps security settings onto the chi middleware.
func middlewareConfig(cfg *config.SecurityConfig) *api.ChiMiddlewareConfig {
	out := api.DefaultChiMiddlewareConfig()
	out.CORSAllowedOrigins = cfg.CORSOrigins
	out.RateLimitRequests = cfg.RateLimitReqs
	out.RateLimitWindow = cfg.RateLimitWindow
	out.RateLimitDisabled = cfg.RateLimitDisabled
	return out
}

// closeEvents releases the messaging layer when startup fails before the
// supervisor takes ownership of it.
func closeEvents(comps *eventComponents) {
	if err := comps.publisher.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing event publisher")
	}
	comps.shutdownServer(logging.Logger())
}
