// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package profiles

import (
	"context"
	"sync"

	"github.com/tomtom215/matchbox/internal/matching"
)

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.RWMutex
	order   []string
	byID    map[string]matching.UserProfile
	byEmail map[string]string
}

// NewMemoryStore creates a MemoryStore holding profiles in the given order.
// Later duplicates of an ID replace earlier ones in place.
func NewMemoryStore(profiles ...matching.UserProfile) *MemoryStore {
	s := &MemoryStore{
		byID:    make(map[string]matching.UserProfile, len(profiles)),
		byEmail: make(map[string]string, len(profiles)),
	}
	for _, p := range profiles {
		_ = s.put(p)
	}
	return s
}

// Get returns the profile with the given ID.
func (s *MemoryStore) Get(_ context.Context, id string) (matching.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return matching.UserProfile{}, ErrNotFound
	}
	return p, nil
}

// GetByEmail returns the profile registered with email.
func (s *MemoryStore) GetByEmail(_ context.Context, email string) (matching.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok || email == "" {
		return matching.UserProfile{}, ErrNotFound
	}
	return s.byID[id], nil
}

// List returns all profiles in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]matching.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]matching.UserProfile, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// Put inserts or replaces a profile.
func (s *MemoryStore) Put(_ context.Context, profile matching.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(profile)
}

// put must be called with mu held (or before the store is shared).
func (s *MemoryStore) put(profile matching.UserProfile) error {
	if profile.Email != "" {
		if owner, ok := s.byEmail[profile.Email]; ok && owner != profile.ID {
			return ErrDuplicateEmail
		}
	}

	old, exists := s.byID[profile.ID]
	if !exists {
		s.order = append(s.order, profile.ID)
	} else if old.Email != "" && old.Email != profile.Email {
		delete(s.byEmail, old.Email)
	}

	s.byID[profile.ID] = profile
	if profile.Email != "" {
		s.byEmail[profile.Email] = profile.ID
	}
	return nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
