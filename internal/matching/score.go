// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matching

// DistancePenalty returns the linear proximity multiplier
// max(0, 1 - distance/preference). A non-positive preference yields 0.
func DistancePenalty(distance, preference float64) float64 {
	if preference <= 0 {
		return 0
	}
	return max(0, 1-distance/preference)
}

// CompositeScore scores b from a's perspective at the given distance in miles.
// It returns exactly 0 when b fails a's dealbreaker gate; otherwise the
// weighted attribute match scaled by a's distance penalty.
func CompositeScore(a, b UserProfile, distance float64) float64 {
	if !PassesDealbreakerGate(a, b) {
		return 0
	}
	return WeightedAttributeMatch(a, b) * DistancePenalty(distance, a.LocationPreference)
}

// Evaluate computes the composite score, AI score and details for b from a's
// perspective. The AI score ignores distance.
func Evaluate(a, b UserProfile, distance float64) CompatibilityResult {
	return CompatibilityResult{
		User:    b,
		Score:   CompositeScore(a, b, distance),
		AIScore: AIWeightedScore(a, b),
		Details: &CompatibilityDetails{
			InterestOverlap:        SharedInterests(a, b),
			CommonActivities:       CommonActivities(a, b),
			LocationDistance:       distance,
			RelationshipGoalsMatch: a.RelationshipGoals == b.RelationshipGoals,
		},
	}
}

// CommonActivities returns the activity level both profiles share, if any.
func CommonActivities(a, b UserProfile) []string {
	if a.ActivityLevel != "" && a.ActivityLevel == b.ActivityLevel {
		return []string{a.ActivityLevel}
	}
	return []string{}
}
