// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/tomtom215/visitcounter/internal/counter"
)

func TestHealthLive(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.store.Increment("home")

	rec := env.do(t, http.MethodGet, "/api/v1/health/live", "")
	assertStatus(t, rec, http.StatusOK)

	var resp HealthResponse
	decodeEnvelope(t, rec, &resp)
	if resp.Status != "alive" || resp.Badges != 1 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/health/ready", "")
	assertStatus(t, rec, http.StatusOK)
	var resp HealthResponse
	decodeEnvelope(t, rec, &resp)
	if resp.Status != "ready" || resp.PersistenceDegraded || resp.Backend != counter.BackendMemory {
		t.Errorf("healthy resp = %+v", resp)
	}

	// A failed save degrades readiness but counting goes on.
	env.backend.FailWith(errors.New("disk full"))
	if got := env.store.Increment("home"); got != 1 {
		t.Fatalf("Increment() = %d, want 1", got)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/health/ready", "")
	assertStatus(t, rec, http.StatusOK)
	decodeEnvelope(t, rec, &resp)
	if resp.Status != "degraded" || !resp.PersistenceDegraded || resp.PersistenceError == "" {
		t.Errorf("degraded resp = %+v", resp)
	}

	// The next successful save clears the flag.
	env.backend.FailWith(nil)
	env.store.Increment("home")

	rec = env.do(t, http.MethodGet, "/api/v1/health/ready", "")
	resp = HealthResponse{}
	decodeEnvelope(t, rec, &resp)
	if resp.PersistenceDegraded {
		t.Errorf("recovered resp = %+v", resp)
	}
}
