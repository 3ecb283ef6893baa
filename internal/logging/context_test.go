// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext() = %q, want req-123", got)
	}
}

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	a, b := GenerateRequestID(), GenerateRequestID()
	if len(a) != 36 {
		t.Errorf("GenerateRequestID() length = %d, want 36", len(a))
	}
	if a == b {
		t.Error("GenerateRequestID() returned duplicate IDs")
	}
}

func TestSeekerIDContext(t *testing.T) {
	t.Parallel()

	ctx := ContextWithSeekerID(context.Background(), "user-42")
	if got := SeekerIDFromContext(ctx); got != "user-42" {
		t.Errorf("SeekerIDFromContext() = %q, want user-42", got)
	}
}

func TestCtx_AddsContextFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithSeekerID(ctx, "user-7")

	Ctx(ctx).Info().Msg("scored")

	out := buf.String()
	for _, want := range []string{`"request_id":"req-1"`, `"seeker_id":"user-7"`, `"message":"scored"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestCtx_WithoutFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))

	Ctx(ctx).Info().Msg("plain")

	if strings.Contains(buf.String(), "request_id") || strings.Contains(buf.String(), "seeker_id") {
		t.Errorf("unexpected context fields: %s", buf.String())
	}
}
