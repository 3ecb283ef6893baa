// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package main

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/matchbox/internal/config"
	"github.com/tomtom215/matchbox/internal/events"
)

// eventComponents holds the messaging layer built at startup.
type eventComponents struct {
	// server is nil unless the embedded NATS server is enabled.
	server    *events.EmbeddedServer
	publisher *events.Publisher
}

// initEvents builds the event publisher. With NATS disabled events go to an
// in-process channel with no subscribers.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func initEvents(ctx context.Context, cfg *config.NATSConfig, logger zerolog.Logger) (*eventComponents, error) {
	wmLogger := events.NewWatermillLogger(logger)
	pubCfg := events.PublisherConfig{
		Rate:             cfg.PublishRate,
		Burst:            cfg.PublishBurst,
		BreakerThreshold: cfg.BreakerThreshold,
		BreakerTimeout:   cfg.BreakerTimeout,
	}

	if !cfg.Enabled {
		logger.Info().Msg("NATS disabled, events use an in-process channel")
		return &eventComponents{
			publisher: events.NewPublisher(events.NewGoChannelPublisher(wmLogger), pubCfg, logger),
		}, nil
	}

	comps := &eventComponents{}
	url := cfg.URL
	if cfg.EmbeddedServer {
		srv, err := events.NewEmbeddedServer(events.ServerConfig{
			Host:               cfg.Host,
			Port:               cfg.Port,
			StoreDir:           cfg.StoreDir,
			JetStreamMaxMemory: cfg.MaxMemory,
			JetStreamMaxStore:  cfg.MaxStore,
		})
		if err != nil {
			return nil, fmt.Errorf("start embedded NATS: %w", err)
		}
		comps.server = srv
		url = srv.ClientURL()
		logger.Info().Str("url", url).Msg("Embedded NATS server started")
	}

	natsCfg := events.DefaultNATSConfig(url)
	pub, err := connectNATS(ctx, natsCfg, wmLogger)
	if err != nil {
		comps.shutdownServer(logger)
		return nil, err
	}

	comps.publisher = events.NewPublisher(pub, pubCfg, logger)
	logger.Info().Str("url", url).Str("stream", events.StreamName).Msg("NATS event publisher initialized")
	return comps, nil
}

func connectNATS(ctx context.Context, cfg events.NATSConfig, wmLogger watermill.LoggerAdapter) (message.Publisher, error) {
	if _, err := events.EnsureStream(ctx, cfg, wmLogger); err != nil {
		return nil, fmt.Errorf("ensure stream %s: %w", events.StreamName, err)
	}
	pub, err := events.NewNATSPublisher(cfg, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("create NATS publisher: %w", err)
	}
	return pub, nil
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (c *eventComponents) shutdownServer(logger zerolog.Logger) {
	if c.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), natsShutdownTimeout)
	defer cancel()
	if err := c.server.Shutdown(ctx); err != nil {
		logger.Warn().Err(err).Msg("Embedded NATS server shutdown incomplete")
	}
}
