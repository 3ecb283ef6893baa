// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package profiles

import "github.com/tomtom215/matchbox/internal/matching"

// SampleProfiles returns the demo directory used when no real user data is
// available. Each call returns a fresh copy.
func SampleProfiles() []matching.UserProfile {
	return []matching.UserProfile{
		{
			ID:                 "1",
			Name:               "Avery",
			Email:              "avery@matchbox.example",
			Interests:          []string{"Photography", "Travel", "Cooking"},
			PersonalityType:    "Outgoing & Social",
			ActivityLevel:      matching.ActivityActive,
			DealBreakers:       []string{"Smoking"},
			MustHaves:          []string{"Non-smoker"},
			AgeRange:           matching.AgeRange{Min: 25, Max: 35},
			LocationPreference: 25,
			SocialStyle:        matching.SocialSmallGroups,
			RelationshipGoals:  "Long-term relationship",
		},
		{
			ID:                 "2",
			Name:               "Blake",
			Email:              "blake@matchbox.example",
			Interests:          []string{"Music", "Travel", "Technology"},
			PersonalityType:    "Creative & Artistic",
			ActivityLevel:      matching.ActivityModerate,
			DealBreakers:       []string{"Heavy drinking"},
			MustHaves:          []string{"Similar interests"},
			AgeRange:           matching.AgeRange{Min: 23, Max: 33},
			LocationPreference: 15,
			SocialStyle:        matching.SocialSmallGroups,
			RelationshipGoals:  "Long-term relationship",
		},
		{
			ID:                 "3",
			Name:               "Casey",
			Email:              "casey@matchbox.example",
			Interests:          []string{"Sports", "Fitness", "Outdoor Activities"},
			PersonalityType:    "Outgoing & Social",
			ActivityLevel:      matching.ActivityVeryActive,
			DealBreakers:       []string{"Smoking", "Inactive lifestyle"},
			MustHaves:          []string{"Active lifestyle"},
			AgeRange:           matching.AgeRange{Min: 25, Max: 35},
			LocationPreference: 20,
			SocialStyle:        matching.SocialMixed,
			RelationshipGoals:  "Long-term relationship",
		},
		{
			ID:                 "4",
			Name:               "Devon",
			Email:              "devon@matchbox.example",
			Interests:          []string{"Reading", "Art", "Museums"},
			PersonalityType:    "Reserved & Thoughtful",
			ActivityLevel:      matching.ActivityRelaxed,
			DealBreakers:       []string{},
			MustHaves:          []string{"Intellectual conversations"},
			AgeRange:           matching.AgeRange{Min: 27, Max: 40},
			LocationPreference: 30,
			SocialStyle:        matching.SocialOneOnOne,
			RelationshipGoals:  "Let's see what happens",
		},
		{
			ID:                 "5",
			Name:               "Emery",
			Email:              "emery@matchbox.example",
			Interests:          []string{"Technology", "Gaming", "Movies"},
			PersonalityType:    "Reserved & Thoughtful",
			ActivityLevel:      matching.ActivityModerate,
			DealBreakers:       []string{"Smoking"},
			MustHaves:          []string{"Similar interests"},
			AgeRange:           matching.AgeRange{Min: 21, Max: 35},
			LocationPreference: 25,
			SocialStyle:        matching.SocialSmallGroups,
			RelationshipGoals:  "Making new friends",
		},
		{
			ID:                 "6",
			Name:               "Finley",
			Email:              "finley@matchbox.example",
			Interests:          []string{"Travel", "Languages", "Culture"},
			PersonalityType:    "Adventurous & Spontaneous",
			ActivityLevel:      matching.ActivityActive,
			DealBreakers:       []string{"Different life goals"},
			MustHaves:          []string{"Wants to travel"},
			AgeRange:           matching.AgeRange{Min: 25, Max: 38},
			LocationPreference: 50,
			SocialStyle:        matching.SocialMixed,
			RelationshipGoals:  "Long-term relationship",
		},
	}
}
