// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matching

import (
	"reflect"
	"testing"
)

func TestCosineInterestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []string
		expected float64
	}{
		{"identical sets", []string{"Travel", "Art"}, []string{"Travel", "Art"}, 1.0},
		{"identical single", []string{"Travel"}, []string{"Travel"}, 1.0},
		{"order irrelevant", []string{"Art", "Travel"}, []string{"Travel", "Art"}, 1.0},
		{"duplicates collapse", []string{"Art", "Art", "Travel"}, []string{"Travel", "Art"}, 1.0},
		{"half overlap", []string{"a", "b"}, []string{"b", "c"}, 0.5},
		{"subset", []string{"a"}, []string{"a", "b", "c", "d"}, 0.5},
		{"disjoint", []string{"a", "b"}, []string{"c", "d"}, 0},
		{"left empty", nil, []string{"a"}, 0},
		{"right empty", []string{"a"}, []string{}, 0},
		{"both empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newProfile("a", tt.a...)
			b := newProfile("b", tt.b...)
			got := CosineInterestSimilarity(a, b)
			if !almostEqual(got, tt.expected) {
				t.Errorf("CosineInterestSimilarity() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCosineInterestSimilarity_SelfIsOne(t *testing.T) {
	for _, interests := range [][]string{
		{"x"},
		{"x", "y"},
		{"x", "y", "z"},
		{"Photography", "Travel", "Cooking", "Music", "Art"},
	} {
		p := newProfile("p", interests...)
		if got := CosineInterestSimilarity(p, p); got != 1.0 {
			t.Errorf("CosineInterestSimilarity(%v, self) = %v, want exactly 1", interests, got)
		}
	}
}

func TestWeightedAttributeMatch(t *testing.T) {
	base := newProfile("a", "Travel", "Art")

	tests := []struct {
		name     string
		modify   func(p *UserProfile)
		expected float64
	}{
		{
			name:     "identical profile",
			modify:   func(p *UserProfile) {},
			expected: 1.0,
		},
		{
			name: "half interest overlap",
			modify: func(p *UserProfile) {
				p.Interests = []string{"Travel", "Art", "Music", "Cooking"}
			},
			expected: 0.5*0.30 + 0.15 + 0.15 + 0.15 + 0.25,
		},
		{
			name: "different personality",
			modify: func(p *UserProfile) {
				p.PersonalityType = "Reserved & Thoughtful"
			},
			expected: 0.30 + 0.5*0.15 + 0.15 + 0.15 + 0.25,
		},
		{
			name: "different relationship goals scores zero on that signal",
			modify: func(p *UserProfile) {
				p.RelationshipGoals = "Making new friends"
			},
			expected: 0.75,
		},
		{
			name: "everything differs",
			modify: func(p *UserProfile) {
				p.Interests = []string{"Gaming"}
				p.PersonalityType = "Reserved & Thoughtful"
				p.ActivityLevel = ActivityRelaxed
				p.SocialStyle = SocialOneOnOne
				p.RelationshipGoals = "Making new friends"
			},
			expected: 0.225,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := newProfile("b", base.Interests...)
			tt.modify(&other)
			got := WeightedAttributeMatch(base, other)
			if !almostEqual(got, tt.expected) {
				t.Errorf("WeightedAttributeMatch() = %v, want %v", got, tt.expected)
			}
			if got < 0 || got > 1 {
				t.Errorf("WeightedAttributeMatch() = %v, outside [0,1]", got)
			}
		})
	}
}

func TestWeightedAttributeMatch_EmptyInterests(t *testing.T) {
	a := newProfile("a")
	b := newProfile("b")

	// Both empty: overlap ratio is 0, categorical signals still count.
	if got := WeightedAttributeMatch(a, b); !almostEqual(got, 0.7) {
		t.Errorf("WeightedAttributeMatch() = %v, want 0.7", got)
	}
}

func TestPassesDealbreakerGate(t *testing.T) {
	tests := []struct {
		name       string
		aBreakers  []string
		aMustHaves []string
		bMustHaves []string
		expected   bool
	}{
		{"no constraints", nil, nil, nil, true},
		{"dealbreaker declared by other", []string{"Smoking"}, nil, []string{"Smoking"}, false},
		{"dealbreaker not declared", []string{"Smoking"}, nil, []string{"Non-smoker"}, true},
		{"must-have missing", nil, []string{"Non-smoker"}, nil, false},
		{"must-have present", nil, []string{"Non-smoker"}, []string{"Non-smoker", "Active lifestyle"}, true},
		{"one of two must-haves missing", nil, []string{"Non-smoker", "Wants to travel"}, []string{"Non-smoker"}, false},
		{"must-have met but dealbreaker declared", []string{"Smoking"}, []string{"Non-smoker"}, []string{"Non-smoker", "Smoking"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newProfile("a", "x")
			a.DealBreakers = tt.aBreakers
			a.MustHaves = tt.aMustHaves
			b := newProfile("b", "x")
			b.MustHaves = tt.bMustHaves

			if got := PassesDealbreakerGate(a, b); got != tt.expected {
				t.Errorf("PassesDealbreakerGate() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPassesDealbreakerGate_IsOneSided(t *testing.T) {
	a := newProfile("a", "x")
	a.MustHaves = []string{"Non-smoker"}
	b := newProfile("b", "x")

	if PassesDealbreakerGate(a, b) {
		t.Error("a requires a must-have b does not declare, gate should fail")
	}
	if !PassesDealbreakerGate(b, a) {
		t.Error("b has no constraints, gate should pass from b's perspective")
	}
}

func TestSharedInterests(t *testing.T) {
	a := newProfile("a", "Travel", "Art", "Travel", "Cooking")
	b := newProfile("b", "Cooking", "Travel", "Music")

	got := SharedInterests(a, b)
	want := []string{"Travel", "Cooking"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SharedInterests() = %v, want %v", got, want)
	}

	none := SharedInterests(a, newProfile("c", "Gaming"))
	if none == nil || len(none) != 0 {
		t.Errorf("SharedInterests() with no overlap = %#v, want empty non-nil slice", none)
	}
}

func TestSimilarity_DoesNotMutateInput(t *testing.T) {
	a := newProfile("a", "b-tag", "a-tag", "a-tag")
	a.MustHaves = []string{"z", "y"}
	b := newProfile("b", "a-tag", "c-tag")
	b.MustHaves = []string{"y"}

	wantA := append([]string(nil), a.Interests...)
	wantB := append([]string(nil), b.Interests...)

	CosineInterestSimilarity(a, b)
	WeightedAttributeMatch(a, b)
	PassesDealbreakerGate(a, b)
	AIWeightedScore(a, b)
	SharedInterests(a, b)

	if !reflect.DeepEqual(a.Interests, wantA) || !reflect.DeepEqual(b.Interests, wantB) {
		t.Errorf("interests mutated: a=%v b=%v", a.Interests, b.Interests)
	}
}
