// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	seekerIDKey
	loggerKey
)

// GenerateRequestID returns a random UUID.
func GenerateRequestID() string {
	return uuid.NewString()
}

func stringValue(ctx context.Context, key ctxKey) string {
	s, _ := ctx.Value(key).(string)
	return s
}

// ContextWithRequestID tags ctx with the HTTP request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// ContextWithSeekerID tags ctx with the profile a match request is scored for.
func ContextWithSeekerID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, seekerIDKey, id)
}

// SeekerIDFromContext returns the seeker profile ID, or "".
func SeekerIDFromContext(ctx context.Context) string {
	return stringValue(ctx, seekerIDKey)
}

// ContextWithLogger stores logger in ctx for Ctx to pick up.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext returns the logger stored in ctx, or the global logger.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// Ctx returns the context logger annotated with request_id and seeker_id
// when ctx carries them.
//
//	logging.Ctx(ctx).Info().Int("matches", n).Msg("Matches found")
func Ctx(ctx context.Context) *zerolog.Logger {
	l := LoggerFromContext(ctx)

	requestID, seekerID := RequestIDFromContext(ctx), SeekerIDFromContext(ctx)
	if requestID == "" && seekerID == "" {
		return &l
	}

	zctx := l.With()
	if requestID != "" {
		zctx = zctx.Str("request_id", requestID)
	}
	if seekerID != "" {
		zctx = zctx.Str("seeker_id", seekerID)
	}
	l = zctx.Logger()
	return &l
}
