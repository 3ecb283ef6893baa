// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matchmaker

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/tomtom215/matchbox/internal/matching"
	"github.com/tomtom215/matchbox/internal/profiles"
)

func withEmail(p matching.UserProfile, email string) matching.UserProfile {
	p.Email = email
	return p
}

func sharedInterestPool() []matching.UserProfile {
	return []matching.UserProfile{
		withEmail(newProfile("s", "Travel", "Music", "Art"), "s@example.com"),
		withEmail(newProfile("u1", "Travel"), "u1@example.com"),
		withEmail(newProfile("u2", "Travel", "Music", "Travel"), "u2@example.com"),
		withEmail(newProfile("u3", "Gaming"), "u3@example.com"),
		withEmail(newProfile("u4", "Music", "Art"), "u4@example.com"),
		withEmail(newProfile("lonely"), "lonely@example.com"),
	}
}

func TestBestSharedInterestMatches(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig(), nil, sharedInterestPool()...)

	tests := []struct {
		name    string
		limit   int
		wantIDs []string
	}{
		{"default limit", 0, []string{"u2"}},
		{"limit two", 2, []string{"u2", "u4"}},
		{"all", 10, []string{"u2", "u4", "u1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.BestSharedInterestMatches(context.Background(), "s@example.com", tt.limit)
			if err != nil {
				t.Fatalf("BestSharedInterestMatches() error = %v", err)
			}
			ids := make([]string, len(got))
			for i, m := range got {
				ids[i] = m.ID
			}
			if !slices.Equal(ids, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestBestSharedInterestMatches_Scores(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig(), nil, sharedInterestPool()...)

	got, err := e.BestSharedInterestMatches(context.Background(), "s@example.com", 10)
	if err != nil {
		t.Fatalf("BestSharedInterestMatches() error = %v", err)
	}

	want := map[string]struct {
		shared int
		score  float64
	}{
		"u2": {2, 200.0 / 3},
		"u4": {2, 200.0 / 3},
		"u1": {1, 100.0 / 3},
	}
	for _, m := range got {
		w := want[m.ID]
		if m.SharedInterests != w.shared {
			t.Errorf("%s SharedInterests = %d, want %d", m.ID, m.SharedInterests, w.shared)
		}
		if math.Abs(m.CompatibilityScore-w.score) > 1e-9 {
			t.Errorf("%s CompatibilityScore = %v, want %v", m.ID, m.CompatibilityScore, w.score)
		}
		if m.Email == "" {
			t.Errorf("%s missing email", m.ID)
		}
	}
}

func TestBestSharedInterestMatches_EdgeCases(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig(), nil, sharedInterestPool()...)
	ctx := context.Background()

	if _, err := e.BestSharedInterestMatches(ctx, "nobody@example.com", 1); !errors.Is(err, profiles.ErrNotFound) {
		t.Errorf("unknown email error = %v, want ErrNotFound", err)
	}

	got, err := e.BestSharedInterestMatches(ctx, "lonely@example.com", 1)
	if err != nil {
		t.Fatalf("no-interest seeker error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("no-interest seeker = %v, want empty slice", got)
	}
}
