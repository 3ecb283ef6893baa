// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

//go:build integration

package profiles

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/tomtom215/matchbox/internal/testinfra"
)

func TestMongoStore_Integration(t *testing.T) {
	uri := testinfra.StartMongo(t)
	ctx := context.Background()

	var n atomic.Int32
	runStoreContract(t, func(t *testing.T) Store {
		// One collection per subtest keeps the contract cases independent.
		s, err := OpenMongoStore(ctx, MongoConfig{
			URI:        uri,
			Database:   "matchbox_test",
			Collection: fmt.Sprintf("users_%d", n.Add(1)),
		})
		if err != nil {
			t.Fatalf("OpenMongoStore() error = %v", err)
		}
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestMongoStore_ConcurrentPutSameID(t *testing.T) {
	uri := testinfra.StartMongo(t)
	ctx := context.Background()

	s, err := OpenMongoStore(ctx, MongoConfig{URI: uri, Database: "matchbox_test", Collection: "users_race"})
	if err != nil {
		t.Fatalf("OpenMongoStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	const writers = 8
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Put(ctx, testProfile("new", "new@matchbox.example", "Chess"))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("Put() error = %v, want nil for the same id", err)
		}
	}
	ps, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(ps) != 1 {
		t.Errorf("List() returned %d profiles, want 1", len(ps))
	}
}
