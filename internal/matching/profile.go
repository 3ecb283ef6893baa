// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matching

import (
	"slices"

	"github.com/samber/lo"
)

// Activity levels, ordered from most to least active.
const (
	ActivityVeryActive = "Very Active"
	ActivityActive     = "Active"
	ActivityModerate   = "Moderate"
	ActivityRelaxed    = "Relaxed"
)

// Social styles, ordered from largest to smallest setting, then mixed.
const (
	SocialLargeGatherings = "Large social gatherings"
	SocialSmallGroups     = "Small group activities"
	SocialOneOnOne        = "One-on-one interactions"
	SocialMixed           = "Mix of different settings"
)

// ActivityLevels is the ordered activity scale used for rank distance.
var ActivityLevels = []string{
	ActivityVeryActive,
	ActivityActive,
	ActivityModerate,
	ActivityRelaxed,
}

// SocialStyles is the ordered social-style scale used for adjacency.
var SocialStyles = []string{
	SocialLargeGatherings,
	SocialSmallGroups,
	SocialOneOnOne,
	SocialMixed,
}

// PersonalityTypes lists the personality values offered during onboarding.
var PersonalityTypes = []string{
	"Outgoing & Social",
	"Reserved & Thoughtful",
	"Creative & Artistic",
	"Adventurous & Spontaneous",
	"Analytical & Logical",
}

// RelationshipGoalOptions lists the relationship goals offered during onboarding.
var RelationshipGoalOptions = []string{
	"Long-term relationship",
	"Making new friends",
	"Let's see what happens",
	"Casual dating",
}

// AgeRange is a closed interval of acceptable partner ages.
type AgeRange struct {
	Min int `json:"min" bson:"min" validate:"gte=0,lte=150"`
	Max int `json:"max" bson:"max" validate:"gte=0,lte=150,gtefield=Min"`
}

// Contains reports whether age falls inside the range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" bson:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" bson:"longitude" validate:"gte=-180,lte=180"`
}

// UserProfile is a user directory record as seen by the engine.
// The engine treats profiles as read-only.
type UserProfile struct {
	ID           string `json:"id" bson:"id" validate:"required,max=128"`
	Name         string `json:"name,omitempty" bson:"name,omitempty" validate:"max=200"`
	Email        string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Bio          string `json:"bio,omitempty" bson:"bio,omitempty" validate:"max=2000"`
	ProfileImage string `json:"profileImage,omitempty" bson:"profileImage,omitempty" validate:"omitempty,url"`

	Interests         []string `json:"interests" bson:"interests" validate:"required,max=50,dive,required,max=100"`
	PersonalityType   string   `json:"personalityType" bson:"personalityType" validate:"max=100"`
	ActivityLevel     string   `json:"activityLevel" bson:"activityLevel" validate:"omitempty,activitylevel"`
	SocialStyle       string   `json:"socialStyle" bson:"socialStyle" validate:"omitempty,socialstyle"`
	RelationshipGoals string   `json:"relationshipGoals" bson:"relationshipGoals" validate:"max=100"`

	DealBreakers []string `json:"dealBreakers" bson:"dealBreakers" validate:"max=50,dive,required,max=100"`
	MustHaves    []string `json:"mustHaves" bson:"mustHaves" validate:"max=50,dive,required,max=100"`

	AgeRange           AgeRange  `json:"ageRange" bson:"ageRange"`
	LocationPreference float64   `json:"locationPreference" bson:"locationPreference" validate:"gt=0"`
	Location           *GeoPoint `json:"location,omitempty" bson:"location,omitempty"`
}

// CompatibilityDetails explains a CompatibilityResult.
type CompatibilityDetails struct {
	InterestOverlap        []string `json:"interestOverlap"`
	CommonActivities       []string `json:"commonActivities"`
	LocationDistance       float64  `json:"locationDistance"`
	RelationshipGoalsMatch bool     `json:"relationshipGoalsMatch"`
}

// CompatibilityResult pairs a candidate with its score from one seeker's
// point of view. Score is exactly 0 when the candidate was disqualified.
type CompatibilityResult struct {
	User    UserProfile           `json:"user"`
	Score   float64               `json:"score"`
	AIScore float64               `json:"aiScore"`
	Details *CompatibilityDetails `json:"compatibilityDetails,omitempty"`
}

// MatchCircle is a group of profiles formed around an anchor.
// The anchor is first, followed by candidates in descending score order.
type MatchCircle []UserProfile

// IDs returns the member ids in circle order.
func (c MatchCircle) IDs() []string {
	return lo.Map(c, func(p UserProfile, _ int) string { return p.ID })
}

// tagSet is the de-duplicated view of a tag slice.
type tagSet map[string]struct{}

func newTagSet(tags []string) tagSet {
	s := make(tagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func (s tagSet) has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// intersectCount returns |s ∩ other|.
func (s tagSet) intersectCount(other tagSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for t := range small {
		if large.has(t) {
			n++
		}
	}
	return n
}

// uniqueTags returns tags with duplicates removed, keeping first occurrence order.
func uniqueTags(tags []string) []string {
	return lo.Uniq(tags)
}

// rank returns the position of value in scale, or -1 when unknown.
func rank(scale []string, value string) int {
	return slices.Index(scale, value)
}

// ratio divides and maps a zero denominator to 0.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
