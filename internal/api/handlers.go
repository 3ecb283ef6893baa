// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/matchbox/internal/logging"
	"github.com/tomtom215/matchbox/internal/matchmaker"
	"github.com/tomtom215/matchbox/internal/profiles"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// errEmptyBody is returned by decodeJSON for a request without a body.
var errEmptyBody = errors.New("request body is empty")

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor and shared helpers
//   - handlers_matching.go: find-matches, form-circles and shared-interest matches
//   - handlers_profiles.go: directory lookup and upsert
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	engine    *matchmaker.Engine
	store     profiles.Store
	timeout   time.Duration
	startTime time.Time
}

// NewHandler creates a handler around engine. timeout bounds the work of
// each request; 0 leaves the request context untouched.
func NewHandler(engine *matchmaker.Engine, timeout time.Duration) *Handler {
	return &Handler{
		engine:    engine,
		store:     engine.Store(),
		timeout:   timeout,
		startTime: time.Now(),
	}
}

// requestContext derives the per-request context with the handler timeout.
func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

// decodeJSON decodes the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

// writeEngineError maps matchmaker and store errors to API errors.
func writeEngineError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, profiles.ErrNotFound):
		writeError(w, r, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, matchmaker.ErrInvalidProfile):
		writeValidationError(w, r, invalidProfileMessage, nil)
	case errors.Is(err, matchmaker.ErrInvalidCircleSize):
		writeValidationError(w, r, circleSizeMessage(err), nil)
	case errors.Is(err, profiles.ErrDuplicateEmail):
		writeError(w, r, http.StatusConflict, "Email address is already registered")
	case errors.Is(err, profiles.ErrStoreUnavailable):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Profile store unavailable")
		writeError(w, r, http.StatusServiceUnavailable, "Profile directory is temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Request timed out")
		writeError(w, r, http.StatusServiceUnavailable, "Request timed out")
	case errors.Is(err, context.Canceled):
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Request cancelled")
		writeError(w, r, http.StatusServiceUnavailable, "Request cancelled")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("Request failed")
		writeError(w, r, http.StatusInternalServerError, "Internal server error")
	}
}
