// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

/*
Package config provides centralized configuration management for MatchBox.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The result is validated before use.

# Configuration Sources

  - Defaults: defaultConfig()
  - Config file: CONFIG_PATH, ./config.yaml, /etc/matchbox/config.yaml
  - Environment variables: explicit mapping in envMappings

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:3000)
  - HTTP_TIMEOUT: per-request handler timeout (default: 10s)
  - ENVIRONMENT: development or production

Profile store:
  - STORE_DRIVER: memory, mongo or badger (default: memory)
  - MONGODB_URI, MONGODB_DATABASE (matchbox), MONGODB_COLLECTION (users)
  - BADGER_PATH: embedded store directory

Matching:
  - MATCH_THRESHOLD: composite score cut-off for find-matches (default: 0.5)
  - MATCH_MAX_RESULTS: find-matches result cap (default: 10)
  - MATCH_DISTANCE: distance used when a location is missing (default: 10)
  - CIRCLE_SIZE, CIRCLE_MIN_SIZE, CIRCLE_MAX_SIZE (default: 6, 3, 8)
  - CIRCLE_REFRESH: background circle formation interval (default: off)

Events:
  - NATS_ENABLED, NATS_URL, NATS_EMBEDDED
  - NATS_PUBLISH_RATE, NATS_PUBLISH_BURST

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
