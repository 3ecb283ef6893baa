// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "staging" }, "ENVIRONMENT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "production" }, "CORS_ORIGINS"},
		{"explicit cors in production", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.CORSOrigins = []string{"https://matchbox.example.com"}
		}, ""},
		{"rate limit too low", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"rate window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, "RATE_LIMIT_WINDOW"},
		{"unknown store driver", func(c *Config) { c.Store.Driver = "sqlite" }, "STORE_DRIVER"},
		{"mongo with http uri", func(c *Config) {
			c.Store.Driver = StoreDriverMongo
			c.Store.MongoURI = "http://localhost:27017"
		}, "MONGODB_URI"},
		{"mongo valid", func(c *Config) { c.Store.Driver = StoreDriverMongo }, ""},
		{"badger without path", func(c *Config) {
			c.Store.Driver = StoreDriverBadger
			c.Store.BadgerPath = ""
		}, "BADGER_PATH"},
		{"breaker threshold zero", func(c *Config) { c.Store.BreakerThreshold = 0 }, "STORE_BREAKER_THRESHOLD"},
		{"threshold above one", func(c *Config) { c.Matching.MatchThreshold = 1.5 }, "MATCH_THRESHOLD"},
		{"max results zero", func(c *Config) { c.Matching.MaxResults = 0 }, "MATCH_MAX_RESULTS"},
		{"negative distance", func(c *Config) { c.Matching.DefaultDistance = -1 }, "MATCH_DISTANCE"},
		{"min circle size one", func(c *Config) { c.Matching.MinCircleSize = 1 }, "CIRCLE_MIN_SIZE"},
		{"max below min", func(c *Config) { c.Matching.MaxCircleSize = 2 }, "CIRCLE_MAX_SIZE"},
		{"default outside range", func(c *Config) { c.Matching.DefaultCircleSize = 9 }, "CIRCLE_SIZE"},
		{"negative workers", func(c *Config) { c.Matching.Workers = -2 }, "MATCH_WORKERS"},
		{"nats without url", func(c *Config) {
			c.NATS.Enabled = true
			c.NATS.URL = ""
		}, "NATS_URL"},
		{"nats with http url", func(c *Config) {
			c.NATS.Enabled = true
			c.NATS.URL = "http://localhost:4222"
		}, "NATS_URL"},
		{"nats valid", func(c *Config) { c.NATS.Enabled = true }, ""},
		{"nats embedded without store dir", func(c *Config) {
			c.NATS.Enabled = true
			c.NATS.EmbeddedServer = true
			c.NATS.StoreDir = ""
		}, "NATS_STORE_DIR"},
		{"nats rate without burst", func(c *Config) {
			c.NATS.Enabled = true
			c.NATS.PublishBurst = 0
		}, "NATS_PUBLISH_BURST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 3000}
	if got := s.Addr(); got != "127.0.0.1:3000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:3000", got)
	}
}
