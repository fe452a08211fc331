// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package auth

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/tomtom215/visitcounter/internal/config"
)

func newFuzzJWTManager(f *testing.F) *JWTManager {
	f.Helper()
	manager, err := NewJWTManager(&config.SecurityConfig{
		JWTSecret:      "fuzz-secret-key-for-badge-admin-at-least-32-chars",
		SessionTimeout: time.Hour,
	})
	if err != nil {
		f.Fatal(err)
	}
	return manager
}

// FuzzJWTValidateToken feeds malformed and tampered tokens to the admin
// token check.
func FuzzJWTValidateToken(f *testing.F) {
	manager := newFuzzJWTManager(f)

	validToken, _, err := manager.GenerateToken("admin", RoleAdmin)
	if err != nil {
		f.Fatal(err)
	}
	f.Add(validToken)
	f.Add("")
	f.Add("invalid.token.here")
	f.Add("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VybmFtZSI6ImFkbWluIiwicm9sZSI6ImFkbWluIn0.")
	f.Add("eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VybmFtZSI6ImFkbWluIn0.sig")
	f.Add(validToken[:len(validToken)-5])
	f.Add("Bearer " + validToken)
	f.Add("\x00" + validToken)
	f.Add(validToken + "\x00")

	f.Fuzz(func(t *testing.T, tokenString string) {
		claims, err := manager.ValidateToken(tokenString)
		if err == nil && claims == nil {
			t.Fatal("ValidateToken returned nil error and nil claims")
		}
		if err == nil && strings.ContainsRune(tokenString, 0) {
			t.Errorf("ValidateToken accepted a token containing a NUL byte")
		}
	})
}

// FuzzJWTRoundTrip checks that every generated token validates back to the
// same subject.
func FuzzJWTRoundTrip(f *testing.F) {
	manager := newFuzzJWTManager(f)

	f.Add("admin", RoleAdmin)
	f.Add("", "")
	f.Add("user@example.com", RoleAdmin)
	f.Add("user\x00name", "role")
	f.Add("<script>alert('xss')</script>", "")
	f.Add("admin\nadmin", "role\nrole")
	f.Add(strings.Repeat("a", 1000), RoleAdmin)

	f.Fuzz(func(t *testing.T, username, role string) {
		token, expiresAt, err := manager.GenerateToken(username, role)
		if err != nil {
			return
		}
		if token == "" {
			t.Fatal("GenerateToken returned an empty token")
		}

		claims, err := manager.ValidateToken(token)
		if err != nil {
			t.Fatalf("generated token failed validation: %v", err)
		}

		// Invalid UTF-8 is replaced during JSON encoding.
		if utf8.ValidString(username) && claims.Username != username {
			t.Errorf("Username = %q, want %q", claims.Username, username)
		}
		if utf8.ValidString(role) && claims.Role != role {
			t.Errorf("Role = %q, want %q", claims.Role, role)
		}
		if !expiresAt.After(time.Now()) {
			t.Errorf("expiry %v is not in the future", expiresAt)
		}
	})
}
