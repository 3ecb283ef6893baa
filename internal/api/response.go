// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/matchbox/internal/logging"
)

// APIResponse is the envelope for every JSON response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError is the error half of the envelope.
type APIError struct {
	// Code is one of the ErrCode constants.
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// APIMeta carries the request ID and the response time.
type APIMeta struct {
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Error codes
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// statusCodes maps HTTP statuses to their default error code. Validation
// failures share 400 with BAD_REQUEST and pass their code explicitly.
var statusCodes = map[int]string{
	http.StatusBadRequest:          ErrCodeBadRequest,
	http.StatusNotFound:            ErrCodeNotFound,
	http.StatusMethodNotAllowed:    ErrCodeBadRequest,
	http.StatusConflict:            ErrCodeConflict,
	http.StatusTooManyRequests:     ErrCodeTooManyRequests,
	http.StatusServiceUnavailable:  ErrCodeServiceUnavailable,
	http.StatusInternalServerError: ErrCodeInternalError,
}

// respond encodes env with status after stamping the request metadata.
func respond(w http.ResponseWriter, r *http.Request, status int, env APIResponse) {
	env.Meta = &APIMeta{
		RequestID: logging.RequestIDFromContext(r.Context()),
		Timestamp: time.Now().UTC(),
	}

	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeData answers 200 with data.
func writeData(w http.ResponseWriter, r *http.Request, data interface{}) {
	respond(w, r, http.StatusOK, APIResponse{Success: true, Data: data})
}

// writeError answers status with the default code for that status.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeErrorCode(w, r, status, statusCodes[status], message, nil)
}

// writeValidationError answers 400 VALIDATION_ERROR.
func writeValidationError(w http.ResponseWriter, r *http.Request, message string, details interface{}) {
	writeErrorCode(w, r, http.StatusBadRequest, ErrCodeValidation, message, details)
}

func writeErrorCode(w http.ResponseWriter, r *http.Request, status int, code, message string, details interface{}) {
	if code == "" {
		code = ErrCodeInternalError
	}
	respond(w, r, status, APIResponse{
		Error: &APIError{Code: code, Message: message, Details: details},
	})
}
