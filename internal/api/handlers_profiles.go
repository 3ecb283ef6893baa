// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/matchbox/internal/matching"
)

const profileNotFoundMessage = "Profile not found"

// GetProfile handles GET /api/profiles/{id}.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := h.requestContext(r)
	defer cancel()

	profile, err := h.engine.GetProfile(ctx, id)
	if err != nil {
		writeEngineError(w, r, err, profileNotFoundMessage)
		return
	}

	writeData(w, r, profile)
}

// PutProfile handles PUT /api/profiles/{id}, creating or replacing the
// directory entry. The body id may be omitted; when present it must match
// the URL.
func (h *Handler) PutProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var profile matching.UserProfile
	if err := decodeJSON(w, r, &profile); err != nil {
		writeError(w, r, http.StatusBadRequest, invalidProfileMessage)
		return
	}
	if profile.ID == "" {
		profile.ID = id
	}
	if profile.ID != id {
		writeError(w, r, http.StatusBadRequest, "Profile id does not match the URL")
		return
	}
	if !validateRequest(w, r, &profile, invalidProfileMessage) {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.engine.SaveProfile(ctx, profile); err != nil {
		writeEngineError(w, r, err, profileNotFoundMessage)
		return
	}

	writeData(w, r, profile)
}
