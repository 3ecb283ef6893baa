// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

// Package testinfra starts throwaway service containers for integration tests.
//
// Everything here is behind the "integration" build tag and requires Docker:
//
//	go test -tags integration ./internal/profiles/...
//
// # MongoDB
//
//	func TestMongoStore(t *testing.T) {
//	    uri := testinfra.StartMongo(t)
//	    store, err := profiles.OpenMongoStore(ctx, profiles.MongoConfig{
//	        URI: uri, Database: "matchbox_test", Collection: "users",
//	    })
//	    // ...
//	}
//
// StartMongo skips the test when Docker is unavailable and terminates the
// container through t.Cleanup.
package testinfra
