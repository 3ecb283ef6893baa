// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

/*
Package api provides the HTTP interface to the matchmaker.

Routes are served by a chi router with the following middleware stack, in
order: request ID with logging context, real IP extraction, panic recovery,
CORS (go-chi/cors), Prometheus instrumentation and per-group rate limits
(go-chi/httprate).

# Endpoints

	POST /api/matching/find-matches   rank the directory for a seeker profile
	POST /api/matching/form-circles   partition the directory into circles
	GET  /api/matches?email=          best shared-interest matches for a user
	GET  /api/profiles/{id}           directory lookup
	PUT  /api/profiles/{id}           create or replace a directory profile
	GET  /health/live                 liveness probe
	GET  /health/ready                readiness probe (pings the profile store)
	GET  /metrics                     Prometheus exposition

# Response Format

Every JSON endpoint answers with the same envelope:

	{
	  "success": true,
	  "data": {"matches": [...]},
	  "meta": {"request_id": "...", "timestamp": "..."}
	}

Errors set success to false and fill error.code with one of
VALIDATION_ERROR, BAD_REQUEST, NOT_FOUND, CONFLICT, TOO_MANY_REQUESTS,
SERVICE_UNAVAILABLE or INTERNAL_ERROR.
*/
package api
