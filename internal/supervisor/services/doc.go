// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

/*
Package services provides suture.Service wrappers for MatchBox components.

Each wrapper translates a component lifecycle (ListenAndServe, a ticker
loop, an already-started server) into suture's context-aware Serve:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTPServerService (api layer):
  - Runs the chi router behind *http.Server
  - Graceful Shutdown bounded by a configurable timeout

CircleRefreshService (api layer):
  - Calls FormCircles every matching.refresh_interval
  - Returns suture.ErrDoNotRestart when the interval is 0

NATSService (messaging layer):
  - Watches the embedded NATS server, if any
  - Closes the event publisher, then the server, on shutdown

All services implement fmt.Stringer so supervisor events name them.
*/
package services
