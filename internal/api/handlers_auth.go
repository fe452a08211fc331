// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/visitcounter/internal/auth"
	"github.com/tomtom215/visitcounter/internal/metrics"
)

// Login exchanges the admin credentials for a bearer token. The token is
// also set as an HttpOnly cookie so the bundled admin page can use it.
//
// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.jwtManager == nil || h.credentials == nil {
		rw.Error(http.StatusForbidden, "AUTH_DISABLED", "Authentication is disabled")
		return
	}

	var req LoginRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	ip := auth.ClientIP(r)
	if !h.credentials.Verify(req.Username, req.Password) {
		metrics.RecordAuthFailure("login")
		h.secLog.LogLoginFailure(req.Username, ip, r.UserAgent(), "invalid credentials")
		rw.Error(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
		return
	}

	username := h.credentials.Username()
	token, expiresAt, err := h.jwtManager.GenerateToken(username, auth.RoleAdmin)
	if err != nil {
		rw.Error(http.StatusInternalServerError, "TOKEN_GENERATION_FAILED", "Failed to generate authentication token")
		return
	}

	h.secLog.LogLoginSuccess(username, ip, r.UserAgent())
	setAuthCookie(w, r, token, expiresAt)
	rw.Resource(http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// setAuthCookie sets the authentication cookie
func setAuthCookie(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteStrictMode,
	})
}
