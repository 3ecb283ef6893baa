// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

// Package profiles is the user directory the matchmaker reads candidate
// pools from.
//
// # Backends
//
//   - MemoryStore: insertion-ordered map, default for development and tests
//   - MongoStore: MongoDB collection (matchbox.users by default)
//   - BadgerStore: embedded BadgerDB for single-node deployments
//
// Every backend returns profiles from List in insertion order, because
// circle formation is order dependent and must be reproducible.
//
// # Resilience
//
// ResilientStore wraps any Store with a circuit breaker and Prometheus
// instrumentation. ErrNotFound is a normal result and never trips the breaker;
// an open breaker surfaces as ErrStoreUnavailable.
package profiles
