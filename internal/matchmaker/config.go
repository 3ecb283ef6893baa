// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matchmaker

import (
	"fmt"
	"runtime"
	"time"
)

// Config tunes the Engine.
type Config struct {
	// MatchThreshold is the composite score a candidate must strictly exceed.
	MatchThreshold float64

	// MaxResults caps the FindMatches result.
	MaxResults int

	// DefaultDistance is the distance in miles assumed when either profile
	// has no location.
	DefaultDistance float64

	DefaultCircleSize int
	MinCircleSize     int
	MaxCircleSize     int

	// BestMatchLimit is the BestSharedInterestMatches limit when the caller passes 0.
	BestMatchLimit int

	// Workers bounds parallel scoring. Zero uses GOMAXPROCS.
	Workers int

	// CacheTTL is how long FindMatches rankings are reused. Zero disables caching.
	CacheTTL      time.Duration
	CacheCapacity int

	// RankTimeout bounds one ranking pass. The pass is shared by every
	// concurrent caller for the same seeker and outlives any one of them.
	RankTimeout time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		MatchThreshold:    0.5,
		MaxResults:        10,
		DefaultDistance:   10,
		DefaultCircleSize: 6,
		MinCircleSize:     3,
		MaxCircleSize:     8,
		BestMatchLimit:    1,
		Workers:           0,
		CacheTTL:          time.Minute,
		CacheCapacity:     1024,
		RankTimeout:       30 * time.Second,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.MatchThreshold < 0 || c.MatchThreshold > 1 {
		return fmt.Errorf("match threshold must be within [0, 1], got %v", c.MatchThreshold)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max results must be positive, got %d", c.MaxResults)
	}
	if c.DefaultDistance < 0 {
		return fmt.Errorf("default distance must not be negative, got %v", c.DefaultDistance)
	}
	if c.MinCircleSize < 1 {
		return fmt.Errorf("min circle size must be positive, got %d", c.MinCircleSize)
	}
	if c.MaxCircleSize < c.MinCircleSize {
		return fmt.Errorf("max circle size %d is below min circle size %d", c.MaxCircleSize, c.MinCircleSize)
	}
	if c.DefaultCircleSize < c.MinCircleSize || c.DefaultCircleSize > c.MaxCircleSize {
		return fmt.Errorf("default circle size %d outside [%d, %d]", c.DefaultCircleSize, c.MinCircleSize, c.MaxCircleSize)
	}
	if c.BestMatchLimit < 1 {
		return fmt.Errorf("best match limit must be positive, got %d", c.BestMatchLimit)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got %v", c.CacheTTL)
	}
	if c.RankTimeout < 0 {
		return fmt.Errorf("rank timeout must not be negative, got %v", c.RankTimeout)
	}
	return nil
}

func (c *Config) rankTimeout() time.Duration {
	if c.RankTimeout > 0 {
		return c.RankTimeout
	}
	return 30 * time.Second
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
