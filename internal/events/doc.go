// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

// Package events publishes matchmaking results for downstream consumers
// (notifications, analytics, chat room provisioning).
//
// # Topics
//
//   - matchbox.circles.formed: one CirclesFormed per circle formation run
//   - matchbox.matches.found: one MatchesFound per find-matches request
//
// Payloads are JSON. The Watermill message UUID equals the payload EventID,
// which JetStream uses as Nats-Msg-Id for deduplication.
//
// # Transports
//
// Publisher wraps any Watermill message.Publisher:
//
//   - NATS JetStream via NewNATSPublisher, optionally backed by an
//     EmbeddedServer for single-instance deployments
//   - in-process gochannel via NewGoChannelPublisher when NATS is disabled
//
// Publishing is best effort. The publisher is guarded by a circuit breaker
// and a token-bucket rate limiter so a broker outage never stalls matching.
package events
