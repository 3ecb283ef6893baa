// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	server := http.Server{Addr: cfg.Server.Addr()}
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Security SecurityConfig `koanf:"security"`
	Store    StoreConfig    `koanf:"store"`
	Matching MatchingConfig `koanf:"matching"`
	NATS     NATSConfig     `koanf:"nats"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// Environment is "development" or "production".
	Environment string `koanf:"environment"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// Store drivers.
const (
	StoreDriverMemory = "memory"
	StoreDriverMongo  = "mongo"
	StoreDriverBadger = "badger"
)

// StoreConfig selects and configures the profile store.
type StoreConfig struct {
	// Driver is memory, mongo or badger.
	Driver string `koanf:"driver"`

	// SeedSampleData loads the sample profiles into an empty store.
	SeedSampleData bool `koanf:"seed_sample_data"`

	MongoURI        string        `koanf:"mongo_uri"`
	MongoDatabase   string        `koanf:"mongo_database"`
	MongoCollection string        `koanf:"mongo_collection"`
	MongoTimeout    time.Duration `koanf:"mongo_timeout"`

	BadgerPath string `koanf:"badger_path"`

	// BreakerThreshold is the consecutive failure count that opens the store
	// circuit breaker.
	BreakerThreshold uint32        `koanf:"breaker_threshold"`
	BreakerTimeout   time.Duration `koanf:"breaker_timeout"`
}

// MatchingConfig tunes the matchmaker around the scoring engine.
type MatchingConfig struct {
	// MatchThreshold is the composite score a candidate must exceed before
	// its AI score is computed.
	MatchThreshold float64 `koanf:"match_threshold"`

	// MaxResults caps find-matches responses.
	MaxResults int `koanf:"max_results"`

	// DefaultDistance is used when either profile lacks a location (miles).
	DefaultDistance float64 `koanf:"default_distance"`

	DefaultCircleSize int `koanf:"default_circle_size"`
	MinCircleSize     int `koanf:"min_circle_size"`
	MaxCircleSize     int `koanf:"max_circle_size"`

	// BestMatchLimit caps shared-interest lookups by email.
	BestMatchLimit int `koanf:"best_match_limit"`

	// Workers bounds parallel candidate scoring. 0 uses GOMAXPROCS.
	Workers int `koanf:"workers"`

	// CacheTTL is how long find-matches results are reused. 0 disables caching.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// RefreshInterval re-forms circles in the background. 0 disables it.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// NATSConfig configures the event sink.
type NATSConfig struct {
	// Enabled publishes events to NATS; otherwise an in-process channel is used.
	Enabled bool `koanf:"enabled"`

	URL string `koanf:"url"`

	// EmbeddedServer starts an in-process NATS server.
	EmbeddedServer bool   `koanf:"embedded_server"`
	Host           string `koanf:"host"`
	Port           int    `koanf:"port"`
	StoreDir       string `koanf:"store_dir"`
	MaxMemory      int64  `koanf:"max_memory"`
	MaxStore       int64  `koanf:"max_store"`

	// PublishRate limits events per second. 0 disables limiting.
	PublishRate  float64 `koanf:"publish_rate"`
	PublishBurst int     `koanf:"publish_burst"`

	BreakerThreshold uint32        `koanf:"breaker_threshold"`
	BreakerTimeout   time.Duration `koanf:"breaker_timeout"`
}

// Load loads configuration using Koanf.
func Load() (*Config, error) {
	cfg, err := LoadWithKoanf()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
