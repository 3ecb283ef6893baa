// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package config

import (
	"fmt"
	"time"
)

// Validate checks that configuration values are present and in range.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateSecurity,
		c.validateStore,
		c.validateMatching,
		c.validateNATS,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, production")
	}
	return nil
}

var validEnvironments = map[string]bool{
	"development": true,
	"production":  true,
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// Rate limit bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity() error {
	if c.Server.IsProduction() && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production; set explicit origins")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateStore() error {
	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverMongo:
		if err := validateMongoURI(c.Store.MongoURI); err != nil {
			return err
		}
		if c.Store.MongoDatabase == "" || c.Store.MongoCollection == "" {
			return fmt.Errorf("MONGODB_DATABASE and MONGODB_COLLECTION are required when STORE_DRIVER=mongo")
		}
		if c.Store.MongoTimeout <= 0 {
			return fmt.Errorf("MONGODB_TIMEOUT must be positive")
		}
	case StoreDriverBadger:
		if c.Store.BadgerPath == "" {
			return fmt.Errorf("BADGER_PATH is required when STORE_DRIVER=badger")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be one of: memory, mongo, badger")
	}

	if c.Store.BreakerThreshold == 0 {
		return fmt.Errorf("STORE_BREAKER_THRESHOLD must be at least 1")
	}
	if c.Store.BreakerTimeout <= 0 {
		return fmt.Errorf("STORE_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateMatching() error {
	m := c.Matching
	if m.MatchThreshold < 0 || m.MatchThreshold > 1 {
		return fmt.Errorf("MATCH_THRESHOLD must be between 0 and 1")
	}
	if m.MaxResults < 1 {
		return fmt.Errorf("MATCH_MAX_RESULTS must be at least 1")
	}
	if m.DefaultDistance < 0 {
		return fmt.Errorf("MATCH_DISTANCE must not be negative")
	}
	if m.MinCircleSize < 2 {
		return fmt.Errorf("CIRCLE_MIN_SIZE must be at least 2")
	}
	if m.MaxCircleSize < m.MinCircleSize {
		return fmt.Errorf("CIRCLE_MAX_SIZE must be >= CIRCLE_MIN_SIZE")
	}
	if m.DefaultCircleSize < m.MinCircleSize || m.DefaultCircleSize > m.MaxCircleSize {
		return fmt.Errorf("CIRCLE_SIZE must be between %d and %d", m.MinCircleSize, m.MaxCircleSize)
	}
	if m.BestMatchLimit < 1 {
		return fmt.Errorf("BEST_MATCH_LIMIT must be at least 1")
	}
	if m.Workers < 0 {
		return fmt.Errorf("MATCH_WORKERS must not be negative")
	}
	if m.CacheTTL < 0 {
		return fmt.Errorf("MATCH_CACHE_TTL must not be negative")
	}
	if m.RefreshInterval < 0 {
		return fmt.Errorf("CIRCLE_REFRESH must not be negative")
	}
	return nil
}

func (c *Config) validateNATS() error {
	if !c.NATS.Enabled {
		return nil
	}
	if !c.NATS.EmbeddedServer && c.NATS.URL == "" {
		return fmt.Errorf("NATS_URL is required when NATS_ENABLED=true and NATS_EMBEDDED=false")
	}
	if !c.NATS.EmbeddedServer {
		if err := validateNATSURL(c.NATS.URL); err != nil {
			return err
		}
	}
	if c.NATS.EmbeddedServer {
		if c.NATS.Port < 1 || c.NATS.Port > 65535 {
			return fmt.Errorf("NATS_PORT must be between 1 and 65535")
		}
		if c.NATS.StoreDir == "" {
			return fmt.Errorf("NATS_STORE_DIR is required when NATS_EMBEDDED=true")
		}
	}
	if c.NATS.PublishRate < 0 {
		return fmt.Errorf("NATS_PUBLISH_RATE must not be negative")
	}
	if c.NATS.PublishRate > 0 && c.NATS.PublishBurst < 1 {
		return fmt.Errorf("NATS_PUBLISH_BURST must be at least 1 when NATS_PUBLISH_RATE is set")
	}
	if c.NATS.BreakerThreshold == 0 {
		return fmt.Errorf("NATS_BREAKER_THRESHOLD must be at least 1")
	}
	return nil
}
