// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/matchbox/internal/matchmaker"
	"github.com/tomtom215/matchbox/internal/profiles"
)

func TestRouter_MethodNotAllowed(t *testing.T) {
	srv := newSampleServer(t)

	rec := srv.do(t, http.MethodGet, "/api/matching/find-matches", nil)
	assertError(t, rec, http.StatusMethodNotAllowed, ErrCodeBadRequest, "Method not allowed")
}

func TestRouter_NotFound(t *testing.T) {
	srv := newSampleServer(t)

	rec := srv.do(t, http.MethodGet, "/api/unknown", nil)
	assertError(t, rec, http.StatusNotFound, ErrCodeNotFound, "Route not found")
}

func TestRouter_RequestID(t *testing.T) {
	srv := newSampleServer(t)

	t.Run("generated", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/health/live", nil)
		id := rec.Header().Get("X-Request-ID")
		if id == "" {
			t.Fatal("X-Request-ID header missing")
		}
		if env := decodeEnvelope(t, rec); env.Meta == nil || env.Meta.RequestID != id {
			t.Errorf("meta.request_id = %+v, want %q", env.Meta, id)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := httptest.NewRecorder()
		srv.handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
			t.Errorf("X-Request-ID = %q, want req-123", got)
		}
		if env := decodeEnvelope(t, rec); env.Meta == nil || env.Meta.RequestID != "req-123" {
			t.Errorf("meta.request_id = %+v, want req-123", env.Meta)
		}
	})
}

func TestRouter_SecurityHeaders(t *testing.T) {
	srv := newSampleServer(t)

	rec := srv.do(t, http.MethodGet, "/api/profiles/1", nil)
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
	if got := rec.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("HSTS set on plain HTTP: %q", got)
	}
}

func TestRouter_Metrics(t *testing.T) {
	srv := newSampleServer(t)

	srv.do(t, http.MethodGet, "/health/live", nil)
	rec := srv.do(t, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `matchbox_api_requests_total{endpoint="/health/live"`) {
		t.Error("metrics output does not include the health request")
	}
}

func TestRouter_RateLimit(t *testing.T) {
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 2
	mw.RateLimitWindow = time.Minute
	srv := newTestServer(t, profiles.NewMemoryStore(profiles.SampleProfiles()...), mw)

	for i := 0; i < 2; i++ {
		rec := srv.do(t, http.MethodGet, "/api/profiles/1", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}

	rec := srv.do(t, http.MethodGet, "/api/profiles/1", nil)
	assertError(t, rec, http.StatusTooManyRequests, ErrCodeTooManyRequests, "Too many requests")

	// Health probes have their own budget.
	if rec := srv.do(t, http.MethodGet, "/health/live", nil); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	mw := DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = []string{"https://app.matchbox.example"}
	mw.RateLimitDisabled = true
	srv := newTestServer(t, profiles.NewMemoryStore(), mw)

	req := httptest.NewRequest(http.MethodOptions, "/api/matching/find-matches", nil)
	req.Header.Set("Origin", "https://app.matchbox.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.matchbox.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/matching/find-matches", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin for unknown origin = %q, want empty", got)
	}
}

func TestWriteEngineError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", fmt.Errorf("get: %w", profiles.ErrNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"invalid profile", matchmaker.ErrInvalidProfile, http.StatusBadRequest, ErrCodeValidation},
		{"circle size", &matchmaker.CircleSizeError{Size: 9, Min: 3, Max: 8}, http.StatusBadRequest, ErrCodeValidation},
		{"duplicate email", fmt.Errorf("save: %w", profiles.ErrDuplicateEmail), http.StatusConflict, ErrCodeConflict},
		{"store unavailable", fmt.Errorf("%w: circuit breaker is open", profiles.ErrStoreUnavailable), http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"deadline", fmt.Errorf("list: %w", context.DeadlineExceeded), http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"cancelled", fmt.Errorf("load candidate pool: %w", context.Canceled), http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"unexpected", errStoreDown, http.StatusInternalServerError, ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			writeEngineError(rec, req, tt.err, "missing")
			assertError(t, rec, tt.status, tt.code, "")
		})
	}
}

func TestCircleSizeMessage(t *testing.T) {
	err := fmt.Errorf("form: %w", &matchmaker.CircleSizeError{Size: 2, Min: 3, Max: 8})
	if got := circleSizeMessage(err); got != "Circle size must be between 3 and 8" {
		t.Errorf("circleSizeMessage() = %q", got)
	}
	if got := circleSizeMessage(matchmaker.ErrInvalidCircleSize); got != "Invalid circle size" {
		t.Errorf("circleSizeMessage(sentinel) = %q", got)
	}
}
