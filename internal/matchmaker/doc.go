// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

// Package matchmaker runs the matching engine against the profile directory.
//
// The pure scoring lives in internal/matching; this package supplies its
// inputs and routes its outputs:
//
//   - FindMatches scores a seeker against every other profile on a bounded
//     worker pool, keeps candidates above the match threshold and ranks
//     them by AI score. Rankings are cached per seeker.
//   - FormCircles partitions the whole directory into match circles.
//   - BestSharedInterestMatches ranks users by the share of the seeker's
//     interests they also list.
//   - SaveProfile writes to the directory and drops cached rankings.
//
// Results are published to a Sink on a best-effort basis: publish failures
// are logged and never fail the request.
package matchmaker
