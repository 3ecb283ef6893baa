// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_WritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	slogger := slog.New(NewSlogHandler(zerolog.New(&buf)))

	slogger.Warn("service restarted",
		"service", "circle-refresh",
		"attempt", 3,
		"backoff", 2*time.Second,
		"healthy", false,
		"err", errors.New("boom"),
	)

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"message":"service restarted"`,
		`"service":"circle-refresh"`,
		`"attempt":3`,
		`"healthy":false`,
		`"err":"boom"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestSlogHandler_GroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandler(zerolog.New(&buf)).
		WithAttrs([]slog.Attr{slog.String("supervisor", "matchbox")}).
		WithGroup("event").
		WithAttrs([]slog.Attr{slog.Int("restarts", 2)})

	slog.New(handler).Info("terminated", "name", "http", slog.Group("detail", slog.Int("code", 1)))

	out := buf.String()
	for _, want := range []string{
		`"supervisor":"matchbox"`,
		`"event.restarts":2`,
		`"event.name":"http"`,
		`"event.detail.code":1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
	if strings.Contains(out, "event.supervisor") {
		t.Errorf("attrs bound before WithGroup were regrouped: %s", out)
	}
}

func TestNewSlogLogger_UsesGlobal(t *testing.T) {
	var buf bytes.Buffer
	swapGlobal(t, NewTestLogger(&buf))

	NewSlogLogger().Error("service failed", "name", "nats")

	out := buf.String()
	for _, want := range []string{`"component":"supervisor"`, `"name":"nats"`, `"level":"error"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	handler := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn-level logger")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for a warn-level logger")
	}
}

func TestSlogHandler_WithGroupEmptyName(t *testing.T) {
	h := NewSlogHandler(zerolog.Nop())
	if got := h.WithGroup(""); got != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
