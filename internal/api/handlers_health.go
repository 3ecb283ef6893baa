// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/matchbox/internal/logging"
)

// readinessTimeout bounds the store ping of a readiness probe.
const readinessTimeout = 2 * time.Second

// breakerReporter is implemented by stores guarded by a circuit breaker.
type breakerReporter interface {
	BreakerState() string
}

// HealthLive handles liveness probe requests.
// It returns 200 as long as the process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	writeData(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// It returns 503 when the profile store does not answer a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	pingErr := h.store.Ping(ctx)
	ready := pingErr == nil

	data := map[string]interface{}{
		"store_connected": ready,
		"ready_to_serve":  ready,
		"uptime":          time.Since(h.startTime).Seconds(),
	}
	if br, ok := h.store.(breakerReporter); ok {
		data["store_breaker"] = br.BreakerState()
	}

	if !ready {
		logging.Ctx(r.Context()).Warn().Err(pingErr).Msg("Readiness check failed")
		writeErrorCode(w, r, http.StatusServiceUnavailable,
			ErrCodeServiceUnavailable, "Service is not ready", data)
		return
	}

	writeData(w, r, data)
}
