// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

/*
Package supervisor provides process supervision for MatchBox using suture v4.

Long-running services are organized into two layers so a failure in one
does not take down the other:

	RootSupervisor ("matchbox")
	├── MessagingSupervisor ("messaging-layer")
	│   └── NATSService (embedded server and event publisher)
	└── APISupervisor ("api-layer")
	    ├── HTTPServerService
	    └── CircleRefreshService (if matching.refresh_interval > 0)

Crashed services restart with suture's backoff. Supervisor events are
logged through sutureslog into the slog bridge of the logging package.

# Usage

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddMessagingService(services.NewNATSService(server, publisher, timeout, logger))
	tree.AddAPIService(services.NewHTTPServerService(httpServer, httpCfg, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor tree stopped")
	}

# See Also

  - internal/supervisor/services: service wrappers
  - github.com/thejerf/suture/v4
*/
package supervisor
