// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/matchbox/internal/matching"
	"github.com/tomtom215/matchbox/internal/matchmaker"
	"github.com/tomtom215/matchbox/internal/profiles"
)

// envelope mirrors APIResponse with the payload left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func newProfile(id string, interests ...string) matching.UserProfile {
	return matching.UserProfile{
		ID:                 id,
		Interests:          interests,
		PersonalityType:    "Outgoing & Social",
		ActivityLevel:      matching.ActivityActive,
		SocialStyle:        matching.SocialSmallGroups,
		RelationshipGoals:  "Long-term relationship",
		AgeRange:           matching.AgeRange{Min: 25, Max: 35},
		LocationPreference: 25,
	}
}

type testServer struct {
	handler http.Handler
	store   profiles.Store
	engine  *matchmaker.Engine
}

func newTestServer(t *testing.T, store profiles.Store, mw *ChiMiddlewareConfig) *testServer {
	t.Helper()

	cfg := matchmaker.DefaultConfig()
	engine, err := matchmaker.NewEngine(&cfg, store, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	t.Cleanup(engine.Close)

	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}

	h := NewHandler(engine, 5*time.Second)
	return &testServer{
		handler: NewRouter(h, mw).SetupChi(),
		store:   store,
		engine:  engine,
	}
}

func newSampleServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServer(t, profiles.NewMemoryStore(profiles.SampleProfiles()...), nil)
}

func (s *testServer) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, target, nil)
	case string:
		req = httptest.NewRequest(method, target, bytes.NewBufferString(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code, message string) envelope {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Fatal("success = true, want false")
	}
	if env.Error == nil {
		t.Fatal("error is missing")
	}
	if env.Error.Code != code {
		t.Errorf("error.code = %q, want %q", env.Error.Code, code)
	}
	if message != "" && env.Error.Message != message {
		t.Errorf("error.message = %q, want %q", env.Error.Message, message)
	}
	return env
}

// unhealthyStore fails pings and listings.
type unhealthyStore struct {
	*profiles.MemoryStore
	err error
}

func (s *unhealthyStore) Ping(context.Context) error { return s.err }

func (s *unhealthyStore) List(context.Context) ([]matching.UserProfile, error) {
	return nil, s.err
}

var errStoreDown = errors.New("connection refused")
