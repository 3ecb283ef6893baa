// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matching

import "math"

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// newProfile builds a profile with shared default attributes so tests only
// set the fields they exercise.
func newProfile(id string, interests ...string) UserProfile {
	return UserProfile{
		ID:                 id,
		Interests:          interests,
		PersonalityType:    "Outgoing & Social",
		ActivityLevel:      ActivityActive,
		SocialStyle:        SocialSmallGroups,
		RelationshipGoals:  "Long-term relationship",
		AgeRange:           AgeRange{Min: 25, Max: 35},
		LocationPreference: 25,
	}
}
