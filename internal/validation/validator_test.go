// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/matchbox/internal/matching"
)

func validProfile() matching.UserProfile {
	return matching.UserProfile{
		ID:                 "1",
		Email:              "avery@example.com",
		Interests:          []string{"Photography", "Travel"},
		PersonalityType:    "Outgoing & Social",
		ActivityLevel:      matching.ActivityActive,
		SocialStyle:        matching.SocialSmallGroups,
		RelationshipGoals:  "Long-term relationship",
		DealBreakers:       []string{"Smoking"},
		MustHaves:          []string{"Non-smoker"},
		AgeRange:           matching.AgeRange{Min: 25, Max: 35},
		LocationPreference: 25,
	}
}

func TestValidator_Shared(t *testing.T) {
	v := Validator()
	if v == nil {
		t.Fatal("Validator() returned nil")
	}
	if Validator() != v {
		t.Error("Validator() returned a different instance")
	}
}

func TestStruct_Profile(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*matching.UserProfile)
		wantField string
		wantTag   string
	}{
		{"valid", func(*matching.UserProfile) {}, "", ""},
		{"empty interests allowed", func(p *matching.UserProfile) { p.Interests = []string{} }, "", ""},
		{"no email", func(p *matching.UserProfile) { p.Email = "" }, "", ""},
		{"unset enums allowed", func(p *matching.UserProfile) { p.ActivityLevel, p.SocialStyle = "", "" }, "", ""},
		{"missing id", func(p *matching.UserProfile) { p.ID = "" }, "id", "required"},
		{"nil interests", func(p *matching.UserProfile) { p.Interests = nil }, "interests", "required"},
		{"blank interest", func(p *matching.UserProfile) { p.Interests = []string{"Art", ""} }, "interests[1]", "required"},
		{"bad email", func(p *matching.UserProfile) { p.Email = "not-an-email" }, "email", "email"},
		{"unknown activity", func(p *matching.UserProfile) { p.ActivityLevel = "Sedentary" }, "activityLevel", "activitylevel"},
		{"unknown social style", func(p *matching.UserProfile) { p.SocialStyle = "Crowds" }, "socialStyle", "socialstyle"},
		{"zero location preference", func(p *matching.UserProfile) { p.LocationPreference = 0 }, "locationPreference", "gt"},
		{"inverted age range", func(p *matching.UserProfile) { p.AgeRange = matching.AgeRange{Min: 40, Max: 30} }, "ageRange.max", "gtefield"},
		{"latitude out of range", func(p *matching.UserProfile) {
			p.Location = &matching.GeoPoint{Latitude: 91, Longitude: 0}
		}, "location.latitude", "lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			verr := Struct(&p)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("Struct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("Struct() = nil, want error")
			}
			if len(verr) != 1 {
				t.Fatalf("got %d errors (%v), want 1", len(verr), verr)
			}
			if verr[0].Field != tt.wantField || verr[0].Tag != tt.wantTag {
				t.Errorf("error = %s/%s, want %s/%s", verr[0].Field, verr[0].Tag, tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestStruct_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*matching.UserProfile)
		want   string
	}{
		{"required", func(p *matching.UserProfile) { p.ID = "" }, "id is required"},
		{"enum", func(p *matching.UserProfile) { p.ActivityLevel = "Sedentary" },
			"activityLevel must be one of: Very Active, Active, Moderate, Relaxed"},
		{"gt", func(p *matching.UserProfile) { p.LocationPreference = -5 }, "locationPreference must be greater than 0"},
		{"max string", func(p *matching.UserProfile) { p.Name = strings.Repeat("x", 201) }, "name must be at most 200 characters"},
		{"max slice", func(p *matching.UserProfile) { p.Interests = make([]string, 51) }, "interests must be at most 50 items"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			verr := Struct(&p)
			if verr == nil {
				t.Fatal("Struct() = nil, want error")
			}
			if got := verr[0].Error(); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrors_Details(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		p := validProfile()
		p.ID = ""
		details := Struct(&p).Details()

		if details["field"] != "id" || details["tag"] != "required" {
			t.Errorf("Details() = %v", details)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		p := validProfile()
		p.ID = ""
		p.SocialStyle = "Crowds"
		details := Struct(&p).Details()

		fields, ok := details["fields"].([]FieldError)
		if !ok || len(fields) != 2 {
			t.Fatalf("Details()[fields] = %v", details["fields"])
		}
		if fields[1].Field != "socialStyle" {
			t.Errorf("fields[1].Field = %q", fields[1].Field)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if details := Errors(nil).Details(); details != nil {
			t.Errorf("Details() = %v, want nil", details)
		}
	})
}

func TestErrors_Error(t *testing.T) {
	if got := Errors(nil).Error(); got != "validation failed" {
		t.Errorf("Error() = %q", got)
	}

	p := validProfile()
	p.ID = ""
	p.Email = "bad"
	if got := Struct(&p).Error(); got != "id is required; email must be a valid email address" {
		t.Errorf("Error() = %q", got)
	}
}
