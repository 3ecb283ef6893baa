// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

/*
Package main is the entry point for the MatchBox server.

MatchBox scores how compatible two user profiles are, ranks the best
candidates for a seeker, and groups a population into fixed-size match
circles. The server exposes that engine over a small JSON HTTP API and
publishes a domain event each time matches are found or circles are formed.

# Application Architecture

Long-running components run under a Suture v4 supervisor tree:

	RootSupervisor ("matchbox")
	├── MessagingSupervisor ("messaging-layer")
	│   └── NATS service (event publisher, optional embedded server)
	└── APISupervisor ("api-layer")
	    ├── HTTP Server (chi router)
	    └── Circle refresh (optional, CIRCLE_REFRESH > 0)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML file, environment
 2. Logging: zerolog with JSON or console output
 3. Profile store: memory, MongoDB or BadgerDB behind a circuit breaker
 4. Events: Watermill publisher over NATS JetStream or an in-process channel
 5. Matchmaker engine: scoring, ranking cache, circle formation
 6. Supervisor tree and HTTP server

# Configuration

	Priority: Environment variables > Config file > Defaults

Common environment variables:

	HTTP_PORT=3000               # HTTP listen port
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	STORE_DRIVER=memory          # memory, mongo or badger
	SEED_SAMPLE_DATA=true        # load sample profiles into an empty store
	MONGODB_URI=mongodb://localhost:27017
	BADGER_PATH=/data/matchbox/profiles
	CIRCLE_SIZE=6                # default circle size (3-8)
	MATCH_THRESHOLD=0.5          # composite score a match must exceed
	NATS_ENABLED=false           # publish events to NATS JetStream
	NATS_EMBEDDED=false          # run NATS in-process

CONFIG_PATH points at an explicit YAML config file.

# Graceful Shutdown

SIGINT or SIGTERM cancels the root context. The supervisor drains the HTTP
server and closes the event publisher before the embedded NATS server.
Services that fail to stop in time are logged.
*/
package main
