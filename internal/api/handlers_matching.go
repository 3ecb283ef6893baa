// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tomtom215/matchbox/internal/logging"
	"github.com/tomtom215/matchbox/internal/matching"
	"github.com/tomtom215/matchbox/internal/matchmaker"
)

const (
	invalidProfileMessage = "Invalid user profile data"
	userNotFoundMessage   = "User not found"
)

// FindMatchesResponse is the data of a find-matches response.
type FindMatchesResponse struct {
	Matches []matching.CompatibilityResult `json:"matches"`
}

// FormCirclesResponse is the data of a form-circles response.
type FormCirclesResponse struct {
	Circles []matching.MatchCircle `json:"circles"`
}

// circleSizeMessage renders the client-facing circle size error.
func circleSizeMessage(err error) string {
	var sizeErr *matchmaker.CircleSizeError
	if errors.As(err, &sizeErr) {
		return fmt.Sprintf("Circle size must be between %d and %d", sizeErr.Min, sizeErr.Max)
	}
	return "Invalid circle size"
}

// FindMatches handles POST /api/matching/find-matches.
//
// The body is the seeker's profile. The response lists up to MaxResults
// directory profiles whose composite score clears the match threshold,
// ordered by AI score.
func (h *Handler) FindMatches(w http.ResponseWriter, r *http.Request) {
	var seeker matching.UserProfile
	if err := decodeJSON(w, r, &seeker); err != nil {
		writeError(w, r, http.StatusBadRequest, invalidProfileMessage)
		return
	}
	if !validateRequest(w, r, &seeker, invalidProfileMessage) {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()
	ctx = logging.ContextWithSeekerID(ctx, seeker.ID)

	matches, err := h.engine.FindMatches(ctx, seeker)
	if err != nil {
		writeEngineError(w, r, err, userNotFoundMessage)
		return
	}
	if matches == nil {
		matches = []matching.CompatibilityResult{}
	}

	writeData(w, r, FindMatchesResponse{Matches: matches})
}

// FormCircles handles POST /api/matching/form-circles.
//
// The optional body {"circleSize": n} selects the circle size; without it
// the configured default is used.
func (h *Handler) FormCircles(w http.ResponseWriter, r *http.Request) {
	var req FormCirclesRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	size := 0
	if req.CircleSize != nil {
		size = *req.CircleSize
		if size == 0 {
			// 0 is the engine's "use the default" value; an explicit 0 is
			// out of range.
			cfg := h.engine.Config()
			writeEngineError(w, r, &matchmaker.CircleSizeError{Size: 0, Min: cfg.MinCircleSize, Max: cfg.MaxCircleSize}, "")
			return
		}
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	circles, err := h.engine.FormCircles(ctx, size)
	if err != nil {
		writeEngineError(w, r, err, "")
		return
	}

	writeData(w, r, FormCirclesResponse{Circles: circles})
}

// SharedInterestMatches handles GET /api/matches?email=&limit=.
//
// It ranks other users by the share of the user's interests they have in
// common. limit defaults to the configured best-match limit.
func (h *Handler) SharedInterestMatches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := MatchesRequest{Email: query.Get("email")}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeValidationError(w, r, "limit must be an integer", nil)
			return
		}
		req.Limit = limit
	}
	if !validateRequest(w, r, &req, "") {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	matches, err := h.engine.BestSharedInterestMatches(ctx, req.Email, req.Limit)
	if err != nil {
		writeEngineError(w, r, err, userNotFoundMessage)
		return
	}

	writeData(w, r, matches)
}
