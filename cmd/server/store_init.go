// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/matchbox/internal/config"
	"github.com/tomtom215/matchbox/internal/profiles"
)

// openBackend opens the store selected by cfg.Driver without the breaker.
func openBackend(ctx context.Context, cfg *config.StoreConfig) (profiles.Store, error) {
	switch cfg.Driver {
	case config.StoreDriverMemory, "":
		return profiles.NewMemoryStore(), nil
	case config.StoreDriverMongo:
		return profiles.OpenMongoStore(ctx, profiles.MongoConfig{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
			Timeout:    cfg.MongoTimeout,
		})
	case config.StoreDriverBadger:
		return profiles.OpenBadgerStore(cfg.BadgerPath)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// initStore opens the profile store, wraps it in a circuit breaker and
// seeds the sample profiles when configured.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func initStore(ctx context.Context, cfg *config.StoreConfig, logger zerolog.Logger) (*profiles.ResilientStore, error) {
	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
	}

	driver := cfg.Driver
	if driver == "" {
		driver = config.StoreDriverMemory
	}
	store := profiles.NewResilientStore(backend, profiles.ResilientConfig{
		Driver:           driver,
		FailureThreshold: cfg.BreakerThreshold,
		Timeout:          cfg.BreakerTimeout,
	})

	if cfg.SeedSampleData {
		n, err := profiles.Seed(ctx, store, profiles.SampleProfiles())
		if err != nil {
			if closeErr := store.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("Error closing profile store")
			}
			return nil, fmt.Errorf("seed sample profiles: %w", err)
		}
		logger.Info().Int("seeded", n).Msg("Sample profiles loaded")
	}

	logger.Info().Str("driver", driver).Msg("Profile store initialized")
	return store, nil
}
