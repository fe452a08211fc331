// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"time"

	"github.com/tomtom215/visitcounter/internal/counter"
)

// CounterResponse is returned by the public counter endpoints.
type CounterResponse struct {
	Name  string `json:"name"`
	Count uint64 `json:"count"`
}

// SetCountRequest is the body of PUT /api/counter/{name} and
// PUT /api/admin/badges/{name}. Count is a pointer so that a missing field
// is rejected instead of silently resetting the counter to zero.
type SetCountRequest struct {
	Count *uint64 `json:"count" validate:"required"`
}

// CreateBadgeRequest is the body of POST /api/admin/badges.
type CreateBadgeRequest struct {
	Name  string  `json:"name" validate:"required,badgename"`
	Count *uint64 `json:"count,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login. Username may be omitted,
// in which case the configured admin username is assumed.
type LoginRequest struct {
	Username string `json:"username,omitempty" validate:"omitempty,max=128"`
	Password string `json:"password" validate:"required,max=256"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// BadgeListResponse is returned by GET /api/admin/badges.
type BadgeListResponse struct {
	Total  int             `json:"total"`
	Badges []counter.Badge `json:"badges"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status              string  `json:"status"`
	Backend             string  `json:"backend,omitempty"`
	Badges              int     `json:"badges"`
	PersistenceDegraded bool    `json:"persistence_degraded"`
	PersistenceError    string  `json:"persistence_error,omitempty"`
	UptimeSeconds       float64 `json:"uptime_seconds"`
}
