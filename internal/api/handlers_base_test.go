// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/visitcounter/internal/auth"
	"github.com/tomtom215/visitcounter/internal/badge"
	"github.com/tomtom215/visitcounter/internal/config"
	"github.com/tomtom215/visitcounter/internal/counter"
)

const (
	testJWTSecret     = "k3Jx9pQ2mN7vL4wR8tY1zB6cF0hD5gA2"
	testAdminUsername = "admin"
	testAdminPassword = "Str0ng!Badge#Pass"
	testAPIKey        = "0123456789abcdef0123"
)

// testCredentials hashes the admin password once for the whole package;
// bcrypt at production cost is slow.
var testCredentials = sync.OnceValues(func() (*auth.AdminCredentials, error) {
	return auth.NewAdminCredentials(testAdminUsername, testAdminPassword)
})

// testEnv is a fully wired router over an in-memory store.
type testEnv struct {
	cfg     *config.Config
	backend *counter.MemoryBackend
	store   *counter.Store
	jwt     *auth.JWTManager
	handler http.Handler
}

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			AuthMode:            "jwt",
			JWTSecret:           testJWTSecret,
			SessionTimeout:      time.Hour,
			AdminUsername:       testAdminUsername,
			AdminPassword:       testAdminPassword,
			APIKey:              testAPIKey,
			APIKeyMaxFailures:   3,
			APIKeyFailureWindow: 15 * time.Minute,
			RateLimitDisabled:   true,
			CORSOrigins:         []string{"*"},
		},
	}
}

func newTestEnv(t *testing.T, mutate ...func(*config.Config)) *testEnv {
	t.Helper()

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	backend := counter.NewMemoryBackend()
	store := counter.New(backend)
	renderer := badge.NewRenderer(badge.DefaultStylesheet(), badge.DefaultDefaults())

	var (
		jwtManager  *auth.JWTManager
		credentials *auth.AdminCredentials
	)
	if cfg.Security.AuthMode == "jwt" {
		var err error
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			t.Fatalf("NewJWTManager() error = %v", err)
		}
		credentials, err = testCredentials()
		if err != nil {
			t.Fatalf("NewAdminCredentials() error = %v", err)
		}
	}

	guard := auth.NewAPIKeyGuard(cfg.Security.APIKey, cfg.Security.APIKeyMaxFailures, cfg.Security.APIKeyFailureWindow, 0)
	t.Cleanup(guard.Stop)

	authMw := auth.NewMiddleware(jwtManager, guard, cfg.Security.AuthMode, WriteError)
	chiMw := NewChiMiddleware(ChiMiddlewareConfigFromSecurity(cfg))
	handler := NewHandler(store, renderer, cfg, jwtManager, credentials)
	router := NewRouter(handler, authMw, chiMw, cfg.Server.StaticDir)

	return &testEnv{
		cfg:     cfg,
		backend: backend,
		store:   store,
		jwt:     jwtManager,
		handler: router.SetupChi(),
	}
}

// do sends a request through the router. headers are given as key/value pairs.
func (e *testEnv) do(t *testing.T, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// adminToken returns an Authorization header pair for a valid admin token.
func (e *testEnv) adminToken(t *testing.T) []string {
	t.Helper()
	token, _, err := e.jwt.GenerateToken(testAdminUsername, auth.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return []string{"Authorization", "Bearer " + token}
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

// decodeEnvelope parses the response envelope and, when data is non-nil,
// its payload.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) testEnvelope {
	t.Helper()

	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode envelope %q: %v", rec.Body.String(), err)
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("failed to decode data %q: %v", env.Data, err)
		}
	}
	return env
}

// decodeBody parses a bare JSON response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	env := decodeEnvelope(t, rec, nil)
	if env.Success {
		t.Fatal("expected success=false")
	}
	if env.Error == nil || env.Error.Code != want {
		t.Fatalf("error = %+v, want code %s", env.Error, want)
	}
}
