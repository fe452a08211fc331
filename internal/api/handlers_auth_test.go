// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/tomtom215/visitcounter/internal/auth"
	"github.com/tomtom215/visitcounter/internal/config"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"username and password", `{"username":"admin","password":"` + testAdminPassword + `"}`},
		{"password only", `{"password":"` + testAdminPassword + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/auth/login", tt.body)
			assertStatus(t, rec, http.StatusOK)

			var resp LoginResponse
			decodeBody(t, rec, &resp)
			if resp.Token == "" {
				t.Fatal("empty token")
			}
			if !resp.ExpiresAt.After(time.Now()) {
				t.Errorf("expires_at %v is not in the future", resp.ExpiresAt)
			}

			claims, err := env.jwt.ValidateToken(resp.Token)
			if err != nil {
				t.Fatalf("issued token does not validate: %v", err)
			}
			if claims.Username != testAdminUsername || claims.Role != auth.RoleAdmin {
				t.Errorf("claims = %+v", claims)
			}

			var cookie *http.Cookie
			for _, c := range rec.Result().Cookies() {
				if c.Name == auth.TokenCookieName {
					cookie = c
				}
			}
			if cookie == nil || cookie.Value != resp.Token || !cookie.HttpOnly {
				t.Errorf("token cookie = %+v", cookie)
			}

			// the token opens the admin routes
			rec = env.do(t, http.MethodGet, "/api/admin/badges", "", "Authorization", "Bearer "+resp.Token)
			assertStatus(t, rec, http.StatusOK)
		})
	}
}

func TestLogin_Failures(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"wrong password", `{"password":"nope"}`, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"wrong username", `{"username":"root","password":"` + testAdminPassword + `"}`, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"missing password", `{"username":"admin"}`, http.StatusBadRequest, ErrCodeValidationFailed},
		{"empty body", ``, http.StatusBadRequest, ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/auth/login", tt.body)
			assertStatus(t, rec, tt.wantStatus)
			assertErrorCode(t, rec, tt.wantCode)
			for _, c := range rec.Result().Cookies() {
				if c.Name == auth.TokenCookieName {
					t.Error("failed login set a token cookie")
				}
			}
		})
	}
}

func TestLogin_AuthDisabled(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, func(c *config.Config) { c.Security.AuthMode = "none" })

	rec := env.do(t, http.MethodPost, "/api/auth/login", `{"password":"anything"}`)
	assertStatus(t, rec, http.StatusForbidden)
	assertErrorCode(t, rec, "AUTH_DISABLED")
}
