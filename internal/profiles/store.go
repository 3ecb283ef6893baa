// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package profiles

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/tomtom215/matchbox/internal/matching"
)

var (
	// ErrNotFound is returned when no profile matches the lookup.
	ErrNotFound = errors.New("profile not found")

	// ErrDuplicateEmail is returned when Put would give two profiles the same email.
	ErrDuplicateEmail = errors.New("email already belongs to another profile")

	// ErrStoreUnavailable is returned while the store circuit breaker is open.
	ErrStoreUnavailable = errors.New("profile store unavailable")
)

// Store is a user directory.
//
// List returns profiles in first-insertion order. Put inserts or replaces a
// profile by ID; a replaced profile keeps its original position.
type Store interface {
	Get(ctx context.Context, id string) (matching.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (matching.UserProfile, error)
	List(ctx context.Context) ([]matching.UserProfile, error)
	Put(ctx context.Context, profile matching.UserProfile) error
	Ping(ctx context.Context) error
	Close() error
}

// Seed puts profiles into store when it is empty. It reports how many
// profiles were written.
func Seed(ctx context.Context, store Store, profiles []matching.UserProfile) (int, error) {
	existing, err := store.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, p := range profiles {
		if err := store.Put(ctx, p); err != nil {
			return i, err
		}
	}
	return len(profiles), nil
}

// InterestLister is implemented by stores that can filter by interest
// server side.
type InterestLister interface {
	ListByInterests(ctx context.Context, interests []string) ([]matching.UserProfile, error)
}

// ListByInterests returns profiles sharing at least one of interests, in
// insertion order. Stores without an interest index are filtered in memory.
func ListByInterests(ctx context.Context, store Store, interests []string) ([]matching.UserProfile, error) {
	if il, ok := store.(InterestLister); ok {
		return il.ListByInterests(ctx, interests)
	}

	all, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(p matching.UserProfile, _ int) bool {
		return lo.Some(p.Interests, interests)
	}), nil
}
