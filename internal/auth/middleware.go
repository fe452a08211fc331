// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package auth

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/tomtom215/visitcounter/internal/logging"
	"github.com/tomtom215/visitcounter/internal/metrics"
)

type contextKey string

// ClaimsContextKey holds the *Claims of an authenticated request.
const ClaimsContextKey contextKey = "claims"

// TokenCookieName is checked when no Authorization header is sent.
const TokenCookieName = "token"

// Error codes passed to the ErrorResponder.
const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// ErrorResponder writes an error response. The API layer supplies one that
// renders its JSON envelope.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, status int, code, message string)

// Middleware enforces bearer-token auth on admin routes and the API key on
// counter writes.
type Middleware struct {
	jwtManager *JWTManager
	apiKey     *APIKeyGuard
	authMode   string
	respond    ErrorResponder
	secLog     *logging.SecurityLogger
}

// NewMiddleware creates a new authentication middleware. jwtManager may be nil
// when authMode is "none".
func NewMiddleware(jwtManager *JWTManager, apiKey *APIKeyGuard, authMode string, respond ErrorResponder) *Middleware {
	if respond == nil {
		respond = plainErrorResponder
	}
	return &Middleware{
		jwtManager: jwtManager,
		apiKey:     apiKey,
		authMode:   authMode,
		respond:    respond,
		secLog:     logging.NewSecurityLogger(),
	}
}

func plainErrorResponder(w http.ResponseWriter, _ *http.Request, status int, _, message string) {
	http.Error(w, message, status)
}

// RequireAdmin rejects requests without a valid admin token. With auth mode
// "none" every request is treated as the admin.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == "none" {
			claims := &Claims{Username: "anonymous", Role: RoleAdmin}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ClaimsContextKey, claims)))
			return
		}

		token, err := extractToken(r)
		if err != nil {
			metrics.RecordAuthFailure("jwt")
			m.respond(w, r, http.StatusUnauthorized, CodeUnauthorized, "Authentication required: "+err.Error())
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			metrics.RecordAuthFailure("jwt")
			m.secLog.LogTokenRejected(ClientIP(r), r.URL.Path, err.Error())
			m.respond(w, r, http.StatusUnauthorized, CodeUnauthorized, "Invalid or expired token")
			return
		}

		if claims.Role != RoleAdmin {
			metrics.RecordAuthFailure("jwt")
			m.respond(w, r, http.StatusUnauthorized, CodeUnauthorized, "Admin role required")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ClaimsContextKey, claims)))
	})
}

// RequireAPIKey checks the x-api-key header. Requests get 503 when no key is
// configured, 429 while the client is throttled and 401 otherwise on failure.
func (m *Middleware) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIP(r)
		result := m.apiKey.Check(ip, r.Header.Get(APIKeyHeader))

		switch result {
		case APIKeyValid:
			next.ServeHTTP(w, r)
		case APIKeyDisabled:
			m.respond(w, r, http.StatusServiceUnavailable, CodeServiceUnavailable, "Counter updates are disabled: no API key configured")
		case APIKeyThrottled:
			metrics.RecordAuthThrottled()
			m.secLog.LogAPIKeyRejected(ip, r.URL.Path, true)
			m.respond(w, r, http.StatusTooManyRequests, CodeTooManyRequests, "Too many invalid API key attempts")
		default:
			metrics.RecordAuthFailure("api_key")
			m.secLog.LogAPIKeyRejected(ip, r.URL.Path, false)
			m.respond(w, r, http.StatusUnauthorized, CodeUnauthorized, "Invalid or missing API key")
		}
	})
}

var (
	errMissingToken = errors.New("missing authentication token")
	errInvalidAuth  = errors.New("invalid authorization header")
)

// extractToken reads a bearer token from the Authorization header, falling
// back to the token cookie.
func extractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		cookie, err := r.Cookie(TokenCookieName)
		if err != nil || cookie.Value == "" {
			return "", errMissingToken
		}
		return cookie.Value, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errInvalidAuth
	}
	return parts[1], nil
}

// ClaimsFromContext returns the claims stored by RequireAdmin.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok
}

// ClientIP returns the host part of RemoteAddr. The router's RealIP
// middleware has already applied forwarding headers.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
