// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matching

import (
	"math"

	"github.com/samber/lo"
)

// Attribute weights for WeightedAttributeMatch. They sum to 1.0.
const (
	WeightInterests         = 0.30
	WeightPersonality       = 0.15
	WeightActivity          = 0.15
	WeightSocialStyle       = 0.15
	WeightRelationshipGoals = 0.25
)

// partialCategoryMatch is the credit for differing soft categorical attributes.
const partialCategoryMatch = 0.5

// CosineInterestSimilarity returns the cosine similarity of the two profiles'
// interest indicator vectors over the union of their interests.
// Returns 0 when either profile has no interests.
func CosineInterestSimilarity(a, b UserProfile) float64 {
	basis := lo.Union(uniqueTags(a.Interests), uniqueTags(b.Interests))
	if len(basis) == 0 {
		return 0
	}

	va := indicatorVector(basis, newTagSet(a.Interests))
	vb := indicatorVector(basis, newTagSet(b.Interests))
	return cosineSimilarity(va, vb)
}

// indicatorVector encodes set membership over basis as 0/1 values.
func indicatorVector(basis []string, set tagSet) []float64 {
	v := make([]float64, len(basis))
	for i, tag := range basis {
		if set.has(tag) {
			v[i] = 1
		}
	}
	return v
}

// cosineSimilarity computes the cosine of two equal-length vectors.
// Zero-magnitude vectors yield 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / math.Sqrt(normA*normB)
}

// InterestOverlap returns the count of shared interests divided by the larger
// interest set size, or 0 when both are empty.
func InterestOverlap(a, b UserProfile) float64 {
	sa, sb := newTagSet(a.Interests), newTagSet(b.Interests)
	return ratio(sa.intersectCount(sb), max(len(sa), len(sb)))
}

// SharedInterests returns a's interests that b also lists, in a's order.
func SharedInterests(a, b UserProfile) []string {
	sb := newTagSet(b.Interests)
	return lo.Filter(uniqueTags(a.Interests), func(tag string, _ int) bool {
		return sb.has(tag)
	})
}

// WeightedAttributeMatch blends interest overlap with personality, activity,
// social style and relationship goal agreement. The result is in [0,1].
func WeightedAttributeMatch(a, b UserProfile) float64 {
	return InterestOverlap(a, b)*WeightInterests +
		softMatch(a.PersonalityType, b.PersonalityType)*WeightPersonality +
		softMatch(a.ActivityLevel, b.ActivityLevel)*WeightActivity +
		softMatch(a.SocialStyle, b.SocialStyle)*WeightSocialStyle +
		hardMatch(a.RelationshipGoals, b.RelationshipGoals)*WeightRelationshipGoals
}

func softMatch(x, y string) float64 {
	if x == y {
		return 1
	}
	return partialCategoryMatch
}

func hardMatch(x, y string) float64 {
	if x == y {
		return 1
	}
	return 0
}

// PassesDealbreakerGate reports whether b is acceptable from a's perspective:
// none of a's dealbreakers are among b's must-haves, and every one of a's
// must-haves is among b's must-haves.
func PassesDealbreakerGate(a, b UserProfile) bool {
	declared := newTagSet(b.MustHaves)

	for _, db := range a.DealBreakers {
		if declared.has(db) {
			return false
		}
	}
	for _, mh := range a.MustHaves {
		if !declared.has(mh) {
			return false
		}
	}
	return true
}
