// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/visitcounter/internal/logging"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of storage state.
//
// GET /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthResponse{
		Status:        "alive",
		Badges:        h.store.Len(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests. Counts are always served
// from memory, so the service stays ready when persistence fails; the
// response reports persistence_degraded instead and the status reads
// "degraded".
//
// GET /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:        "ready",
		Backend:       h.store.Backend().Name(),
		Badges:        h.store.Len(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if err := h.store.PersistHealth(); err != nil {
		resp.Status = "degraded"
		resp.PersistenceDegraded = true
		resp.PersistenceError = logging.SanitizeError(err.Error())
	}

	NewResponseWriter(w, r).Success(resp)
}
