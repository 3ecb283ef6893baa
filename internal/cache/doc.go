// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

// Package cache provides the bounded TTL cache used for find-matches results.
//
// Entries expire after a fixed TTL and the least recently used entry is
// evicted once the cache reaches capacity. GetOrLoad collapses concurrent
// misses for the same key into a single load via singleflight.
//
// Keys are built with GenerateKey, which hashes the JSON form of the request
// parameters:
//
//	key := cache.GenerateKey("find-matches", seeker)
//
// The cache is invalidated wholesale (Clear) whenever the profile directory
// changes. A load that was running when Clear happened still answers its
// callers but is not stored, so no ranking computed from the old pool
// survives the invalidation.
package cache
