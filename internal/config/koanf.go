// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/matchbox/config.yaml",
	"/etc/matchbox/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with every default applied.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			Host:            "0.0.0.0",
			Timeout:         10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Store: StoreConfig{
			Driver:           StoreDriverMemory,
			SeedSampleData:   true,
			MongoURI:         "mongodb://localhost:27017",
			MongoDatabase:    "matchbox",
			MongoCollection:  "users",
			MongoTimeout:     5 * time.Second,
			BadgerPath:       "/data/matchbox/profiles",
			BreakerThreshold: 5,
			BreakerTimeout:   30 * time.Second,
		},
		Matching: MatchingConfig{
			MatchThreshold:    0.5,
			MaxResults:        10,
			DefaultDistance:   10,
			DefaultCircleSize: 6,
			MinCircleSize:     3,
			MaxCircleSize:     8,
			BestMatchLimit:    1,
			Workers:           0,
			CacheTTL:          time.Minute,
			RefreshInterval:   0,
		},
		NATS: NATSConfig{
			Enabled:          false,
			URL:              "nats://127.0.0.1:4222",
			EmbeddedServer:   false,
			Host:             "127.0.0.1",
			Port:             4222,
			StoreDir:         "/data/matchbox/nats",
			MaxMemory:        64 << 20,
			MaxStore:         1 << 30,
			PublishRate:      50,
			PublishBurst:     10,
			BreakerThreshold: 5,
			BreakerTimeout:   30 * time.Second,
		},
	}
}

// LoadWithKoanf loads configuration in layers:
//
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
//
// The result is validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// MATCH_THRESHOLD -> matching.match_threshold
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file found, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	// Server
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Profile store
	"store_driver":            "store.driver",
	"seed_sample_data":        "store.seed_sample_data",
	"mongodb_uri":             "store.mongo_uri",
	"mongodb_database":        "store.mongo_database",
	"mongodb_collection":      "store.mongo_collection",
	"mongodb_timeout":         "store.mongo_timeout",
	"badger_path":             "store.badger_path",
	"store_breaker_threshold": "store.breaker_threshold",
	"store_breaker_timeout":   "store.breaker_timeout",

	// Matching
	"match_threshold":   "matching.match_threshold",
	"match_max_results": "matching.max_results",
	"match_distance":    "matching.default_distance",
	"circle_size":       "matching.default_circle_size",
	"circle_min_size":   "matching.min_circle_size",
	"circle_max_size":   "matching.max_circle_size",
	"best_match_limit":  "matching.best_match_limit",
	"match_workers":     "matching.workers",
	"match_cache_ttl":   "matching.cache_ttl",
	"circle_refresh":    "matching.refresh_interval",

	// NATS
	"nats_enabled":           "nats.enabled",
	"nats_url":               "nats.url",
	"nats_embedded":          "nats.embedded_server",
	"nats_host":              "nats.host",
	"nats_port":              "nats.port",
	"nats_store_dir":         "nats.store_dir",
	"nats_max_memory":        "nats.max_memory",
	"nats_max_store":         "nats.max_store",
	"nats_publish_rate":      "nats.publish_rate",
	"nats_publish_burst":     "nats.publish_burst",
	"nats_breaker_threshold": "nats.breaker_threshold",
	"nats_breaker_timeout":   "nats.breaker_timeout",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - MONGODB_URI -> store.mongo_uri
//   - CIRCLE_SIZE -> matching.default_circle_size
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
