// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/visitcounter/internal/config"
	"github.com/tomtom215/visitcounter/internal/counter"
)

func TestAdminBadges_RequireToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	tests := []struct {
		name    string
		headers []string
	}{
		{"no token", nil},
		{"malformed header", []string{"Authorization", "Token abc"}},
		{"invalid token", []string{"Authorization", "Bearer not.a.jwt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/api/admin/badges", "", tt.headers...)
			assertStatus(t, rec, http.StatusUnauthorized)
			assertErrorCode(t, rec, ErrCodeUnauthorized)
		})
	}
}

func TestAdminBadges_Lifecycle(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.adminToken(t)

	// create with initial count
	rec := env.do(t, http.MethodPost, "/api/admin/badges", `{"name":"home","count":5}`, token...)
	assertStatus(t, rec, http.StatusCreated)
	var created counter.Badge
	decodeBody(t, rec, &created)
	if created.Name != "home" || created.Count != 5 {
		t.Fatalf("created = %+v, want home/5", created)
	}

	// duplicate
	rec = env.do(t, http.MethodPost, "/api/admin/badges", `{"name":"home"}`, token...)
	assertStatus(t, rec, http.StatusConflict)
	assertErrorCode(t, rec, ErrCodeConflict)
	if env.store.Get("home") != 5 {
		t.Error("conflicting create changed the count")
	}

	// create without count starts at zero
	rec = env.do(t, http.MethodPost, "/api/admin/badges", `{"name":"about"}`, token...)
	assertStatus(t, rec, http.StatusCreated)

	// list
	rec = env.do(t, http.MethodGet, "/api/admin/badges", "", token...)
	assertStatus(t, rec, http.StatusOK)
	var list BadgeListResponse
	decodeBody(t, rec, &list)
	if list.Total != 2 || len(list.Badges) != 2 {
		t.Fatalf("list = %+v, want 2 badges", list)
	}

	// get
	rec = env.do(t, http.MethodGet, "/api/admin/badges/home", "", token...)
	assertStatus(t, rec, http.StatusOK)
	var got counter.Badge
	decodeBody(t, rec, &got)
	if got.Count != 5 {
		t.Errorf("get count = %d, want 5", got.Count)
	}

	// update
	rec = env.do(t, http.MethodPut, "/api/admin/badges/home", `{"count":2}`, token...)
	assertStatus(t, rec, http.StatusOK)
	decodeBody(t, rec, &got)
	if got.Count != 2 || env.store.Get("home") != 2 {
		t.Errorf("after update got %d, stored %d, want 2", got.Count, env.store.Get("home"))
	}
	if got.LastAccessed.Before(created.LastAccessed) {
		t.Error("last_accessed moved backwards")
	}

	// delete
	rec = env.do(t, http.MethodDelete, "/api/admin/badges/home", "", token...)
	assertStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("204 response has body %q", rec.Body.String())
	}
	if env.store.Get("home") != 0 {
		t.Error("deleted badge still has a count")
	}

	rec = env.do(t, http.MethodDelete, "/api/admin/badges/home", "", token...)
	assertStatus(t, rec, http.StatusNotFound)
	rec = env.do(t, http.MethodGet, "/api/admin/badges/home", "", token...)
	assertStatus(t, rec, http.StatusNotFound)
}

func TestAdminBadges_UpdateMissing(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/admin/badges/ghost", `{"count":3}`, env.adminToken(t)...)
	assertStatus(t, rec, http.StatusNotFound)
	assertErrorCode(t, rec, ErrCodeNotFound)
	if env.store.Len() != 0 {
		t.Error("update of a missing badge created it")
	}
}

func TestAdminBadges_InvalidCreate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.adminToken(t)

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"not json", `name=home`, ErrCodeBadRequest},
		{"two objects", `{"name":"a"}{"name":"b"}`, ErrCodeBadRequest},
		{"missing name", `{"count":1}`, ErrCodeValidationFailed},
		{"slash in name", `{"name":"a/b"}`, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/admin/badges", tt.body, token...)
			assertStatus(t, rec, http.StatusBadRequest)
			assertErrorCode(t, rec, tt.wantCode)
		})
	}

	if env.store.Len() != 0 {
		t.Errorf("store has %d badges, want 0", env.store.Len())
	}
}

func TestAdminBadges_AuthModeNone(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, func(c *config.Config) { c.Security.AuthMode = "none" })

	rec := env.do(t, http.MethodGet, "/api/admin/badges", "")
	assertStatus(t, rec, http.StatusOK)

	var list BadgeListResponse
	decodeBody(t, rec, &list)
	if list.Total != 0 || list.Badges == nil {
		t.Errorf("list = %+v, want empty non-null badges", list)
	}
}

// adminUIBadge and adminUIBadgeList mirror what the bundled admin UI decodes.
type adminUIBadge struct {
	Name         string    `json:"name"`
	Count        uint64    `json:"count"`
	CreatedAt    time.Time `json:"created_at"`
	LastAccessed time.Time `json:"last_accessed"`
}

type adminUIBadgeList struct {
	Total  int            `json:"total"`
	Badges []adminUIBadge `json:"badges"`
}

func TestAdminUI_ResponseShapes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	assertBare := func(t *testing.T, rec *httptest.ResponseRecorder) {
		t.Helper()
		var fields map[string]json.RawMessage
		decodeBody(t, rec, &fields)
		for _, key := range []string{"success", "data", "meta"} {
			if _, ok := fields[key]; ok {
				t.Errorf("body has envelope field %q: %s", key, rec.Body.String())
			}
		}
	}

	rec := env.do(t, http.MethodPost, "/api/auth/login", `{"password":"`+testAdminPassword+`"}`)
	assertStatus(t, rec, http.StatusOK)
	assertBare(t, rec)
	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &login)
	if login.Token == "" {
		t.Fatalf("login body %s has no token", rec.Body.String())
	}
	bearer := []string{"Authorization", "Bearer " + login.Token}

	rec = env.do(t, http.MethodPost, "/api/admin/badges", `{"name":"blog","count":3}`, bearer...)
	assertStatus(t, rec, http.StatusCreated)
	assertBare(t, rec)
	var created adminUIBadge
	decodeBody(t, rec, &created)
	if created.Name != "blog" || created.Count != 3 || created.CreatedAt.IsZero() {
		t.Errorf("created = %+v", created)
	}

	rec = env.do(t, http.MethodPut, "/api/admin/badges/blog", `{"count":8}`, bearer...)
	assertStatus(t, rec, http.StatusOK)
	assertBare(t, rec)
	var updated adminUIBadge
	decodeBody(t, rec, &updated)
	if updated.Name != "blog" || updated.Count != 8 {
		t.Errorf("updated = %+v", updated)
	}

	rec = env.do(t, http.MethodGet, "/api/admin/badges", "", bearer...)
	assertStatus(t, rec, http.StatusOK)
	assertBare(t, rec)
	var list adminUIBadgeList
	decodeBody(t, rec, &list)
	if list.Total != 1 || len(list.Badges) != 1 || list.Badges[0].Name != "blog" || list.Badges[0].Count != 8 {
		t.Errorf("list = %+v", list)
	}

	rec = env.do(t, http.MethodPost, "/api/admin/badges", `{"name":"blog"}`, bearer...)
	assertStatus(t, rec, http.StatusConflict)
	assertErrorCode(t, rec, ErrCodeConflict)
}
