// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matching

// AI score weights. They sum to 1.0.
const (
	aiWeightComposite = 0.4
	aiWeightSynergy   = 0.2
	aiWeightActivity  = 0.15
	aiWeightSocial    = 0.15
	aiWeightLongTerm  = 0.1
)

// Social style credit for adjacent and distant styles.
const (
	socialAdjacentMatch = 0.7
	socialDistantMatch  = 0.4
)

// AIWeightedScore blends the distance-free composite score with interest
// synergy, activity compatibility, social style match and long-term
// compatibility. It is deterministic and does not call any model.
func AIWeightedScore(a, b UserProfile) float64 {
	return CompositeScore(a, b, 0)*aiWeightComposite +
		InterestSynergy(a, b)*aiWeightSynergy +
		ActivityCompatibility(a.ActivityLevel, b.ActivityLevel)*aiWeightActivity +
		SocialStyleMatch(a.SocialStyle, b.SocialStyle)*aiWeightSocial +
		LongTermCompatibility(a, b)*aiWeightLongTerm
}

// InterestSynergy weighs shared interests at 0.7 and interests unique to a at
// 0.3, over the larger interest set size. Both empty yields 0.
func InterestSynergy(a, b UserProfile) float64 {
	sa, sb := newTagSet(a.Interests), newTagSet(b.Interests)
	den := max(len(sa), len(sb))
	if den == 0 {
		return 0
	}

	shared := sa.intersectCount(sb)
	uniqueToA := len(sa) - shared
	return (float64(shared)*0.7 + float64(uniqueToA)*0.3) / float64(den)
}

// ActivityCompatibility is 1 - |rankA - rankB| / 3 on the ActivityLevels
// scale. Values outside the scale only match themselves.
func ActivityCompatibility(x, y string) float64 {
	rx, ry := rank(ActivityLevels, x), rank(ActivityLevels, y)
	if rx < 0 || ry < 0 {
		return hardMatch(x, y)
	}

	diff := rx - ry
	if diff < 0 {
		diff = -diff
	}
	return 1 - float64(diff)/float64(len(ActivityLevels)-1)
}

// SocialStyleMatch is 1 for identical styles, 0.7 for styles adjacent on the
// SocialStyles scale and 0.4 otherwise.
func SocialStyleMatch(x, y string) float64 {
	if x == y {
		return 1
	}

	rx, ry := rank(SocialStyles, x), rank(SocialStyles, y)
	if rx >= 0 && ry >= 0 && (rx-ry == 1 || ry-rx == 1) {
		return socialAdjacentMatch
	}
	return socialDistantMatch
}

// LongTermCompatibility rewards shared relationship goals and shared
// must-haves. The must-have ratio is 0 when both sets are empty.
func LongTermCompatibility(a, b UserProfile) float64 {
	ma, mb := newTagSet(a.MustHaves), newTagSet(b.MustHaves)
	shared := ratio(ma.intersectCount(mb), max(len(ma), len(mb)))

	if a.RelationshipGoals == b.RelationshipGoals {
		return 0.7 + 0.3*shared
	}
	return 0.3 * shared
}
