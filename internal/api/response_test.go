// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/visitcounter/internal/logging"
)

func TestResponseWriter_Success(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-123"))
	rec := httptest.NewRecorder()

	NewResponseWriter(rec, req).Success(CounterResponse{Name: "home", Count: 3})

	assertStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}

	var data CounterResponse
	env := decodeEnvelope(t, rec, &data)
	if !env.Success || env.Error != nil {
		t.Errorf("envelope = %+v, want success without error", env)
	}
	if data.Name != "home" || data.Count != 3 {
		t.Errorf("data = %+v", data)
	}
	if env.Meta == nil || env.Meta.RequestID != "req-123" || env.Meta.Timestamp.IsZero() {
		t.Errorf("meta = %+v", env.Meta)
	}
}

func TestResponseWriter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("bad") }, http.StatusBadRequest, ErrCodeBadRequest},
		{"unauthorized", func(rw *ResponseWriter) { rw.Unauthorized("who") }, http.StatusUnauthorized, ErrCodeUnauthorized},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("gone") }, http.StatusNotFound, ErrCodeNotFound},
		{"conflict", func(rw *ResponseWriter) { rw.Conflict("exists") }, http.StatusConflict, ErrCodeConflict},
		{"too many", func(rw *ResponseWriter) { rw.TooManyRequests("slow") }, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("oops") }, http.StatusInternalServerError, ErrCodeInternalError},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable("off") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"validation", func(rw *ResponseWriter) { rw.ValidationError("invalid", map[string]string{"field": "count"}) }, http.StatusBadRequest, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-err"))
			rec := httptest.NewRecorder()

			tt.write(NewResponseWriter(rec, req))

			assertStatus(t, rec, tt.wantStatus)
			assertErrorCode(t, rec, tt.wantCode)
			env := decodeEnvelope(t, rec, nil)
			if env.Error.RequestID != "req-err" {
				t.Errorf("error request_id = %q, want req-err", env.Error.RequestID)
			}
			if len(env.Data) != 0 && string(env.Data) != "null" {
				t.Errorf("error response carries data %s", env.Data)
			}
		})
	}
}

func TestResponseWriter_ResourceAndNoContent(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)

	rec := httptest.NewRecorder()
	NewResponseWriter(rec, req).Resource(http.StatusCreated, CounterResponse{Name: "home", Count: 1})
	assertStatus(t, rec, http.StatusCreated)
	if got := rec.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
	if got, want := strings.TrimSpace(rec.Body.String()), `{"name":"home","count":1}`; got != want {
		t.Errorf("body = %s, want %s", got, want)
	}

	rec = httptest.NewRecorder()
	NewResponseWriter(rec, req).NoContent()
	assertStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("204 body = %q", rec.Body.String())
	}
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusUnauthorized, ErrCodeUnauthorized, "Authentication required")

	assertStatus(t, rec, http.StatusUnauthorized)
	env := decodeEnvelope(t, rec, nil)
	if env.Error == nil || env.Error.Message != "Authentication required" {
		t.Errorf("error = %+v", env.Error)
	}
}
