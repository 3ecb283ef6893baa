// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matchmaker

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/tomtom215/matchbox/internal/matching"
	"github.com/tomtom215/matchbox/internal/profiles"
)

func circleIDs(circles []matching.MatchCircle) [][]string {
	out := make([][]string, len(circles))
	for i, c := range circles {
		out[i] = c.IDs()
	}
	return out
}

func TestResolveCircleSize(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig(), nil)

	tests := []struct {
		in      int
		want    int
		wantErr bool
	}{
		{0, 6, false},
		{3, 3, false},
		{8, 8, false},
		{2, 0, true},
		{9, 0, true},
		{-1, 0, true},
	}
	for _, tt := range tests {
		got, err := e.ResolveCircleSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ResolveCircleSize(%d) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrInvalidCircleSize) {
				t.Errorf("ResolveCircleSize(%d) error does not match ErrInvalidCircleSize", tt.in)
			}
			if err.Error() != "circle size must be between 3 and 8" {
				t.Errorf("ResolveCircleSize(%d) message = %q", tt.in, err.Error())
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveCircleSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormCircles_MatchesEngineOverDirectory(t *testing.T) {
	sample := profiles.SampleProfiles()
	sink := &recordingSink{}
	e, _ := newTestEngine(t, DefaultConfig(), sink, sample...)

	for _, size := range []int{3, 4, 6} {
		got, err := e.FormCircles(context.Background(), size)
		if err != nil {
			t.Fatalf("FormCircles(%d) error = %v", size, err)
		}
		want := circleIDs(matching.FormCircles(profiles.SampleProfiles(), size))
		if !slices.EqualFunc(circleIDs(got), want, slices.Equal[[]string]) {
			t.Errorf("FormCircles(%d) = %v, want %v", size, circleIDs(got), want)
		}
		for _, c := range got {
			if len(c) != size {
				t.Errorf("circle %v has %d members, want %d", c.IDs(), len(c), size)
			}
		}
	}

	if len(sink.circles) != 3 {
		t.Fatalf("published %d circle events, want 3", len(sink.circles))
	}
	if ev := sink.circles[0]; ev.CircleSize != 3 || ev.Population != len(sample) {
		t.Errorf("first event = %+v", ev)
	}
}

func TestFormCircles_DefaultSize(t *testing.T) {
	pool := make([]matching.UserProfile, 0, 7)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		pool = append(pool, newProfile(id, "Art"))
	}
	sink := &recordingSink{}
	e, _ := newTestEngine(t, DefaultConfig(), sink, pool...)

	got, err := e.FormCircles(context.Background(), 0)
	if err != nil {
		t.Fatalf("FormCircles(0) error = %v", err)
	}
	if ids := circleIDs(got); len(ids) != 1 || !slices.Equal(ids[0], []string{"a", "b", "c", "d", "e", "f"}) {
		t.Errorf("FormCircles(0) = %v, want [[a b c d e f]]", ids)
	}
	if !slices.Equal(sink.circles[0].Unassigned, []string{"g"}) {
		t.Errorf("Unassigned = %v, want [g]", sink.circles[0].Unassigned)
	}
}

func TestFormCircles_InvalidSize(t *testing.T) {
	sink := &recordingSink{}
	e, store := newTestEngine(t, DefaultConfig(), sink, profiles.SampleProfiles()...)

	for _, size := range []int{2, 9} {
		if _, err := e.FormCircles(context.Background(), size); !errors.Is(err, ErrInvalidCircleSize) {
			t.Errorf("FormCircles(%d) error = %v, want ErrInvalidCircleSize", size, err)
		}
	}
	if store.listCalls() != 0 {
		t.Errorf("store listed %d times for invalid sizes", store.listCalls())
	}
	if len(sink.circles) != 0 {
		t.Errorf("published %d events for invalid sizes", len(sink.circles))
	}
}

func TestFormCircles_EmptyDirectory(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig(), nil)

	got, err := e.FormCircles(context.Background(), 3)
	if err != nil {
		t.Fatalf("FormCircles() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("FormCircles() = %v, want empty non-nil slice", got)
	}
}

func TestFormCircles_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	seeker, pool := matchPool()
	e, store := newTestEngine(t, DefaultConfig(), nil, pool...)

	if _, err := e.FindMatches(ctx, seeker); err != nil {
		t.Fatalf("FindMatches() error = %v", err)
	}
	if _, err := e.FormCircles(ctx, 3); err != nil {
		t.Fatalf("FormCircles() error = %v", err)
	}
	if _, err := e.FindMatches(ctx, seeker); err != nil {
		t.Fatalf("FindMatches() error = %v", err)
	}
	// find, circles, find again after invalidation
	if store.listCalls() != 3 {
		t.Errorf("List called %d times, want 3", store.listCalls())
	}
}
