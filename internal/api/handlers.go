// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"time"

	"github.com/tomtom215/visitcounter/internal/auth"
	"github.com/tomtom215/visitcounter/internal/badge"
	"github.com/tomtom215/visitcounter/internal/config"
	"github.com/tomtom215/visitcounter/internal/counter"
	"github.com/tomtom215/visitcounter/internal/logging"
)

// Handler serves the counter, badge, admin, auth and health endpoints.
type Handler struct {
	store       *counter.Store
	renderer    *badge.Renderer
	config      *config.Config
	jwtManager  *auth.JWTManager       // nil when auth mode is "none"
	credentials *auth.AdminCredentials // nil when auth mode is "none"
	secLog      *logging.SecurityLogger
	startTime   time.Time
}

// NewHandler creates the handler set. jwtManager and credentials may be nil
// when admin authentication is disabled; the login endpoint then answers 403.
func NewHandler(
	store *counter.Store,
	renderer *badge.Renderer,
	cfg *config.Config,
	jwtManager *auth.JWTManager,
	credentials *auth.AdminCredentials,
) *Handler {
	return &Handler{
		store:       store,
		renderer:    renderer,
		config:      cfg,
		jwtManager:  jwtManager,
		credentials: credentials,
		secLog:      logging.NewSecurityLogger(),
		startTime:   time.Now(),
	}
}
