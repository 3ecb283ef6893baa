// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/matchbox/internal/matching"
)

// CircleFormer forms match circles over the current directory.
// Satisfied by *matchmaker.Engine.
type CircleFormer interface {
	FormCircles(ctx context.Context, circleSize int) ([]matching.MatchCircle, error)
}

// CircleRefreshConfig holds configuration for the circle refresh service.
type CircleRefreshConfig struct {
	// Interval between refreshes. A non-positive interval disables the
	// service.
	Interval time.Duration

	// CircleSize passed to FormCircles. 0 selects the engine default.
	CircleSize int

	// RunOnStartup forms circles once before the first tick.
	RunOnStartup bool

	// Timeout bounds a single refresh. Default: 1m
	Timeout time.Duration
}

// CircleRefreshService periodically re-forms match circles so downstream
// consumers of the circles-formed event see the directory as it changes.
type CircleRefreshService struct {
	former CircleFormer
	config CircleRefreshConfig
	logger zerolog.Logger
	name   string
}

// NewCircleRefreshService creates a new circle refresh service.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCircleRefreshService(former CircleFormer, cfg CircleRefreshConfig, logger zerolog.Logger) *CircleRefreshService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}
	return &CircleRefreshService{
		former: former,
		config: cfg,
		logger: logger.With().Str("service", "circle-refresh").Logger(),
		name:   "circle-refresh",
	}
}

// Serve implements suture.Service. A failed refresh is logged and retried
// on the next tick; only cancellation ends the loop.
func (s *CircleRefreshService) Serve(ctx context.Context) error {
	if s.config.Interval <= 0 {
		s.logger.Info().Msg("Circle refresh disabled")
		return fmt.Errorf("circle refresh disabled: %w", suture.ErrDoNotRestart)
	}

	s.logger.Info().
		Dur("interval", s.config.Interval).
		Int("circle_size", s.config.CircleSize).
		Msg("Circle refresh service starting")

	if s.config.RunOnStartup {
		s.refresh(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *CircleRefreshService) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	circles, err := s.former.FormCircles(refreshCtx, s.config.CircleSize)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Msg("Scheduled circle formation failed")
		}
		return
	}
	s.logger.Debug().Int("circles", len(circles)).Msg("Scheduled circle formation complete")
}

// String identifies the service in supervisor events.
func (s *CircleRefreshService) String() string {
	return s.name
}
