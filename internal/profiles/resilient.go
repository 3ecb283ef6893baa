// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package profiles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/matchbox/internal/matching"
	"github.com/tomtom215/matchbox/internal/metrics"
	"github.com/tomtom215/matchbox/internal/resilience"
)

// ResilientConfig configures a ResilientStore.
type ResilientConfig struct {
	// Driver labels metrics and names the breaker ("profile-store-<driver>").
	Driver string

	FailureThreshold uint32
	Timeout          time.Duration
}

// ResilientStore guards a Store with a circuit breaker and records
// per-operation latency and errors.
type ResilientStore struct {
	next   Store
	driver string
	cb     *resilience.Breaker
}

// NewResilientStore wraps next.
func NewResilientStore(next Store, cfg ResilientConfig) *ResilientStore {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &ResilientStore{
		next:   next,
		driver: cfg.Driver,
		cb: resilience.NewBreaker(resilience.BreakerConfig{
			Name:             "profile-store-" + cfg.Driver,
			FailureThreshold: cfg.FailureThreshold,
			Timeout:          cfg.Timeout,
			IsSuccessful:     isStoreSuccess,
		}),
	}
}

// Lookup misses and caller cancellations say nothing about store health.
func isStoreSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, context.Canceled)
}

func execute[T any](s *ResilientStore, op string, fn func() (T, error)) (T, error) {
	start := time.Now()
	res, err := s.cb.Execute(func() (any, error) {
		return fn()
	})

	var zero T
	if resilience.IsRejected(err) {
		metrics.RecordStoreOperation(s.driver, op, time.Since(start), err)
		return zero, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	var metricErr error
	if !isStoreSuccess(err) {
		metricErr = err
	}
	metrics.RecordStoreOperation(s.driver, op, time.Since(start), metricErr)

	if err != nil {
		return zero, err
	}
	return res.(T), nil
}

// Get returns the profile with the given ID.
func (s *ResilientStore) Get(ctx context.Context, id string) (matching.UserProfile, error) {
	return execute(s, "get", func() (matching.UserProfile, error) {
		return s.next.Get(ctx, id)
	})
}

// GetByEmail returns the profile registered with email.
func (s *ResilientStore) GetByEmail(ctx context.Context, email string) (matching.UserProfile, error) {
	return execute(s, "get_by_email", func() (matching.UserProfile, error) {
		return s.next.GetByEmail(ctx, email)
	})
}

// List returns all profiles in insertion order.
func (s *ResilientStore) List(ctx context.Context) ([]matching.UserProfile, error) {
	return execute(s, "list", func() ([]matching.UserProfile, error) {
		return s.next.List(ctx)
	})
}

// ListByInterests delegates to the wrapped store's interest lookup.
func (s *ResilientStore) ListByInterests(ctx context.Context, interests []string) ([]matching.UserProfile, error) {
	return execute(s, "list_by_interests", func() ([]matching.UserProfile, error) {
		return ListByInterests(ctx, s.next, interests)
	})
}

// Put inserts or replaces a profile.
func (s *ResilientStore) Put(ctx context.Context, profile matching.UserProfile) error {
	_, err := execute(s, "put", func() (struct{}, error) {
		return struct{}{}, s.next.Put(ctx, profile)
	})
	return err
}

// Ping checks the wrapped store. It bypasses the breaker so readiness probes
// observe recovery before the breaker timeout elapses.
func (s *ResilientStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

// Close closes the wrapped store.
func (s *ResilientStore) Close() error {
	return s.next.Close()
}

// BreakerState returns "closed", "half-open" or "open".
func (s *ResilientStore) BreakerState() string {
	return resilience.StateName(s.cb.State())
}

// Driver returns the backend label.
func (s *ResilientStore) Driver() string {
	return s.driver
}
