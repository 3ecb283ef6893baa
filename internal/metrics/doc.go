// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

// Package metrics defines the Prometheus collectors for MatchBox.
//
// Collectors are registered with the default registry through promauto and
// exposed by the API at /metrics. Families:
//
//   - matchbox_api_*: request counts, latency, in-flight requests
//   - matchbox_pairs_scored_total, matchbox_composite_score: scoring volume and distribution
//   - matchbox_find_matches_*, matchbox_matches_returned: find-matches runs
//   - matchbox_circles_formed_total, matchbox_circle_formation_*: circle formation runs
//   - matchbox_store_*: profile store latency and errors
//   - matchbox_circuit_breaker_*: store and publisher breakers
//   - matchbox_events_*: event sink throughput
package metrics
