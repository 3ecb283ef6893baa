// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package profiles

import (
	"context"
	"slices"
	"testing"

	"github.com/dgraph-io/badger/v4"
)

func setupTestBadger(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("Failed to open badger: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBadgerStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) Store {
		return NewBadgerStore(setupTestBadger(t))
	})
}

func TestBadgerStore_Reopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenBadgerStore(dir)
	if err != nil {
		t.Fatalf("OpenBadgerStore() error = %v", err)
	}
	for _, id := range []string{"b", "a"} {
		if err := s.Put(ctx, testProfile(id, id+"@example.com", "Art")); err != nil {
			t.Fatalf("Put(%s) error = %v", id, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = OpenBadgerStore(dir)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()

	if err := s.Put(ctx, testProfile("c", "", "Art")); err != nil {
		t.Fatalf("Put(c) error = %v", err)
	}
	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if ids := profileIDs(got); !slices.Equal(ids, []string{"b", "a", "c"}) {
		t.Errorf("List() ids = %v, want [b a c]", ids)
	}
	if p, err := s.GetByEmail(ctx, "a@example.com"); err != nil || p.ID != "a" {
		t.Errorf("GetByEmail(a) = %q, %v", p.ID, err)
	}
}

func TestBadgerStore_PingAfterClose(t *testing.T) {
	s, err := OpenBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadgerStore() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Ping(context.Background()); err == nil {
		t.Error("Ping() after Close() error = nil, want error")
	}
}
