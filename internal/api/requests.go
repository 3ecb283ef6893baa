// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package api

import (
	"net/http"

	"github.com/tomtom215/matchbox/internal/validation"
)

// FormCirclesRequest is the body of POST /api/matching/form-circles.
// A missing circleSize selects the configured default.
type FormCirclesRequest struct {
	CircleSize *int `json:"circleSize"`
}

// MatchesRequest holds the validated query of GET /api/matches.
type MatchesRequest struct {
	Email string `json:"email" validate:"required,email"`
	Limit int    `json:"limit" validate:"gte=0,lte=100"`
}

// validateRequest validates req and writes a VALIDATION_ERROR response with
// message when it fails. It reports whether req is valid.
func validateRequest(w http.ResponseWriter, r *http.Request, req interface{}, message string) bool {
	verr := validation.Struct(req)
	if verr == nil {
		return true
	}

	details := verr.Details()
	details["reason"] = verr.Error()
	if message == "" {
		message = verr.Error()
	}

	writeValidationError(w, r, message, details)
	return false
}
