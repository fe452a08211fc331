// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tomtom215/visitcounter/internal/config"
)

const testSecret = "test-secret-key-that-is-at-least-32-characters-long"

// testJWTConfig returns a standard test security config for JWT
func testJWTConfig() *config.SecurityConfig {
	return &config.SecurityConfig{
		JWTSecret:      testSecret,
		SessionTimeout: time.Hour,
	}
}

func newTestJWTManager(t *testing.T) *JWTManager {
	t.Helper()
	m, err := NewJWTManager(testJWTConfig())
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	return m
}

func TestNewJWTManager(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cfg         *config.SecurityConfig
		wantErr     bool
		wantTimeout time.Duration
	}{
		{"valid secret", testJWTConfig(), false, time.Hour},
		{"empty secret", &config.SecurityConfig{SessionTimeout: time.Hour}, true, 0},
		{"zero timeout falls back", &config.SecurityConfig{JWTSecret: testSecret}, false, 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			manager, err := NewJWTManager(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("NewJWTManager() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewJWTManager() unexpected error = %v", err)
			}
			if manager.Timeout() != tt.wantTimeout {
				t.Errorf("Timeout() = %v, want %v", manager.Timeout(), tt.wantTimeout)
			}
		})
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	manager := newTestJWTManager(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return fixed }

	token, expiresAt, err := manager.GenerateToken("admin", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if !expiresAt.Equal(fixed.Add(time.Hour)) {
		t.Errorf("expiresAt = %v, want %v", expiresAt, fixed.Add(time.Hour))
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("token %q is not a compact JWS", token)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Username != "admin" || claims.Role != RoleAdmin || claims.Subject != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	manager := newTestJWTManager(t)
	issued := time.Now().Add(-3 * time.Hour)
	manager.now = func() time.Time { return issued }

	token, _, err := manager.GenerateToken("admin", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	manager.now = time.Now
	if _, err := manager.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted an expired token")
	}
}

func TestValidateToken_Rejects(t *testing.T) {
	t.Parallel()

	manager := newTestJWTManager(t)

	other, err := NewJWTManager(&config.SecurityConfig{
		JWTSecret:      "a-completely-different-secret-of-32-plus-chars",
		SessionTimeout: time.Hour,
	})
	if err != nil {
		t.Fatal(err)
	}
	foreign, _, err := other.GenerateToken("admin", RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "admin", Role: RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		Username: "admin",
		Role:     RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"wrong secret", foreign},
		{"alg none", noneToken},
		{"unexpected HMAC variant", hs512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := manager.ValidateToken(tt.token); err == nil {
				t.Errorf("ValidateToken(%s) error = nil, want error", tt.name)
			}
		})
	}
}
