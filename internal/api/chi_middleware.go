// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/visitcounter/internal/auth"
	"github.com/tomtom215/visitcounter/internal/config"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	// Rate limiting configuration
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
}

// DefaultChiMiddlewareConfig returns the defaults used when no security
// configuration is supplied: any origin, no credentials, 100 requests per
// minute per IP.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins:   []string{"*"},
		CORSAllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Authorization", "Content-Type", auth.APIKeyHeader},
		CORSExposedHeaders:   []string{"X-Request-ID"},
		CORSAllowCredentials: false,
		CORSMaxAge:           86400,

		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
}

// ChiMiddlewareConfigFromSecurity derives the middleware configuration from
// the security settings. Credentials are only allowed when origins are
// listed explicitly; browsers refuse credentialed wildcard responses anyway
// and go-chi/cors would otherwise reflect any origin.
func ChiMiddlewareConfigFromSecurity(appCfg *config.Config) *ChiMiddlewareConfig {
	cfg := DefaultChiMiddlewareConfig()
	if appCfg == nil {
		return cfg
	}
	sec := &appCfg.Security

	if len(sec.CORSOrigins) > 0 {
		cfg.CORSAllowedOrigins = sec.CORSOrigins
		cfg.CORSAllowCredentials = !appCfg.HasWildcardCORS()
	}

	if sec.RateLimitReqs > 0 {
		cfg.RateLimitRequests = sec.RateLimitReqs
	}
	if sec.RateLimitWindow > 0 {
		cfg.RateLimitWindow = sec.RateLimitWindow
	}
	cfg.RateLimitDisabled = sec.RateLimitDisabled
	return cfg
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		ExposedHeaders:   config.CORSExposedHeaders,
		AllowCredentials: config.CORSAllowCredentials,
		MaxAge:           config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// CORS returns the go-chi/cors middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimitConfig defines rate limit parameters for specific endpoints.
type RateLimitConfig struct {
	// Requests is the number of requests allowed in the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
}

var (
	// RateLimitLogin is very strict for login attempts
	RateLimitLogin = RateLimitConfig{Requests: 5, Window: 5 * time.Minute}

	// RateLimitBadge is permissive for SVG badges. Image proxies such as
	// GitHub's camo fetch badges for many viewers from a few addresses.
	RateLimitBadge = RateLimitConfig{Requests: 1000, Window: time.Minute}

	// RateLimitHealth is permissive for monitoring probes
	RateLimitHealth = RateLimitConfig{Requests: 1000, Window: time.Minute}
)

// RateLimit returns the configured per-IP limit for API routes.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitConfig{
		Requests: m.config.RateLimitRequests,
		Window:   m.config.RateLimitWindow,
	})
}

// RateLimitCustom returns a per-IP limiter with custom parameters. It is a
// no-op when rate limiting is disabled.
func (m *ChiMiddleware) RateLimitCustom(config RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		config.Requests,
		config.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

// RateLimitLogin returns a very strict rate limiter for the login endpoint.
func (m *ChiMiddleware) RateLimitLogin() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitLogin)
}

// RateLimitBadge returns the limiter for SVG badge routes.
func (m *ChiMiddleware) RateLimitBadge() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitBadge)
}

// RateLimitHealth returns a rate limiter for health endpoints.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitHealth)
}

// rateLimitExceeded renders httprate rejections in the API envelope. httprate
// has already set Retry-After and the X-RateLimit headers.
func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).TooManyRequests("Rate limit exceeded, retry later")
}

// APISecurityHeaders adds security headers to JSON API responses.
//
// Headers added:
//   - X-Content-Type-Options: nosniff
//   - X-Frame-Options: DENY
//   - Cache-Control: no-store
//   - Referrer-Policy: strict-origin-when-cross-origin
//
// HSTS is added when the request arrived over HTTPS, directly or through a
// TLS-terminating proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
