// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

/*
Package auth guards the write paths of the visit counter service.

Key Components:

  - JWTManager: HS256 token issue and validation for the admin API
  - AdminCredentials: bcrypt-hashed admin password checked at login
  - APIKeyGuard: constant-time x-api-key comparison with a per-IP
    token bucket (golang.org/x/time/rate) that throttles repeated failures
  - Middleware: RequireAdmin for /api/admin/* and RequireAPIKey for
    PUT /api/counter/{name}

Authentication Modes (AUTH_MODE):

  - jwt (default): admin routes need "Authorization: Bearer <token>" or the
    "token" cookie issued by POST /api/auth/login
  - none: admin routes are open; refused by config validation in production

The API key check is independent of AUTH_MODE. With no API_KEY configured
the guarded route answers 503.

Usage Example:

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    return err
	}
	guard := auth.NewAPIKeyGuard(cfg.Security.APIKey,
	    cfg.Security.APIKeyMaxFailures, cfg.Security.APIKeyFailureWindow, 5*time.Minute)
	defer guard.Stop()

	mw := auth.NewMiddleware(jwtManager, guard, cfg.Security.AuthMode, respondError)
	r.With(mw.RequireAPIKey).Put("/api/counter/{name}", h.SetCounter)
*/
package auth
