// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matchmaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/matchbox/internal/cache"
	"github.com/tomtom215/matchbox/internal/events"
	"github.com/tomtom215/matchbox/internal/logging"
	"github.com/tomtom215/matchbox/internal/matching"
	"github.com/tomtom215/matchbox/internal/profiles"
)

var (
	// ErrInvalidProfile is returned when a seeker lacks an id or interests.
	ErrInvalidProfile = errors.New("invalid user profile data")

	// ErrInvalidCircleSize is returned for a circle size outside the configured range.
	ErrInvalidCircleSize = errors.New("circle size out of range")
)

// Sink receives matchmaking results. *events.Publisher implements it.
type Sink interface {
	PublishCirclesFormed(ctx context.Context, ev events.CirclesFormed) error
	PublishMatchesFound(ctx context.Context, ev events.MatchesFound) error
}

// Engine runs matching operations against a profile store.
type Engine struct {
	cfg    Config
	store  profiles.Store
	sink   Sink
	logger zerolog.Logger
	cache  *cache.Cache[[]matching.CompatibilityResult]
	now    func() time.Time
}

// NewEngine creates an Engine. sink may be nil to disable publishing.
func NewEngine(cfg *Config, store profiles.Store, sink Sink, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("matchmaker config is required")
	}
	if store == nil {
		return nil, errors.New("profile store is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid matchmaker config: %w", err)
	}

	return &Engine{
		cfg:    *cfg,
		store:  store,
		sink:   sink,
		logger: logger.With().Str("component", "matchmaker").Logger(),
		cache:  cache.New[[]matching.CompatibilityResult](cfg.CacheTTL, cfg.CacheCapacity),
		now:    time.Now,
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Store returns the profile store.
func (e *Engine) Store() profiles.Store {
	return e.store
}

// InvalidateCache drops every cached ranking.
func (e *Engine) InvalidateCache() {
	e.cache.Clear()
}

// Close releases engine resources. The store and sink are owned by the caller.
func (e *Engine) Close() {
	e.cache.Close()
}

// SaveProfile writes profile to the directory.
func (e *Engine) SaveProfile(ctx context.Context, profile matching.UserProfile) error {
	if profile.ID == "" {
		return ErrInvalidProfile
	}
	if err := e.store.Put(ctx, profile); err != nil {
		return fmt.Errorf("save profile %s: %w", profile.ID, err)
	}
	e.cache.Clear()
	e.log(ctx).Debug().Str("profile_id", profile.ID).Msg("Profile saved")
	return nil
}

// GetProfile looks up a profile by ID.
func (e *Engine) GetProfile(ctx context.Context, id string) (matching.UserProfile, error) {
	p, err := e.store.Get(ctx, id)
	if err != nil {
		return p, fmt.Errorf("get profile %s: %w", id, err)
	}
	return p, nil
}

// log returns the engine logger annotated with the request ID in ctx.
func (e *Engine) log(ctx context.Context) *zerolog.Logger {
	l := e.logger
	if id := logging.RequestIDFromContext(ctx); id != "" {
		l = l.With().Str("request_id", id).Logger()
	}
	return &l
}
