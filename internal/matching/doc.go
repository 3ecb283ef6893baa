// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

// Package matching implements the MatchBox compatibility engine.
//
// The engine is a set of pure scoring functions over UserProfile records:
//
//   - CosineInterestSimilarity: cosine of 0/1 interest indicator vectors
//   - WeightedAttributeMatch: fixed linear blend of five attribute signals
//   - PassesDealbreakerGate: one-sided dealbreaker/must-have filter
//   - CompositeScore: gate + weighted match + linear distance penalty
//   - AIWeightedScore: composite score blended with heuristic sub-signals
//   - FormCircles: greedy partition of a population into match circles
//
// # Perspective
//
// Every pairwise score is directional. CompositeScore(a, b, d) gates and
// penalizes distance from a's point of view, so CompositeScore(a, b, d) and
// CompositeScore(b, a, d) generally differ. Callers pick the perspective.
//
// # Set Semantics
//
// Interests, dealbreakers and must-haves are sets. Duplicate entries in the
// stored slices collapse; the engine never reorders or mutates caller data.
//
// # Thread Safety
//
// All functions are pure and hold no state, so they are safe for concurrent
// use on shared read-only profiles.
//
// # Usage
//
//	score := matching.CompositeScore(seeker, candidate, 12.5)
//	ai := matching.AIWeightedScore(seeker, candidate)
//	circles := matching.FormCircles(population, 6)
package matching
