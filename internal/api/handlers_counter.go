// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/visitcounter/internal/badge"
	"github.com/tomtom215/visitcounter/internal/logging"
	"github.com/tomtom215/visitcounter/internal/metrics"
	"github.com/tomtom215/visitcounter/internal/validation"
)

// svgContentSecurityPolicy confines what a badge SVG may load. Style and
// logo options are copied into the SVG verbatim, so the policy is what keeps
// an opened badge from running script or pulling stylesheets.
const svgContentSecurityPolicy = "default-src 'none'; style-src 'unsafe-inline'; img-src *"

// GetCounter returns the current count without changing it.
//
// GET /api/counter/{name}
func (h *Handler) GetCounter(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	name, ok := badgeNameParam(rw, r)
	if !ok {
		return
	}

	rw.Resource(http.StatusOK, CounterResponse{Name: name, Count: h.store.Get(name)})
}

// IncrementCounter adds one visit and returns the new count.
//
// POST /api/counter/{name}/increment
func (h *Handler) IncrementCounter(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	name, ok := badgeNameParam(rw, r)
	if !ok {
		return
	}

	rw.Resource(http.StatusOK, CounterResponse{Name: name, Count: h.store.Increment(name)})
}

// SetCounter overwrites a counter. The route is guarded by the API key
// middleware.
//
// PUT /api/counter/{name}
func (h *Handler) SetCounter(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	name, ok := badgeNameParam(rw, r)
	if !ok {
		return
	}

	var req SetCountRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	h.store.Set(name, *req.Count)
	logging.Ctx(r.Context()).Info().
		Str("badge", sanitizeLogValue(name)).
		Uint64("count", *req.Count).
		Msg("Counter set via API key")

	rw.Resource(http.StatusOK, CounterResponse{Name: name, Count: *req.Count})
}

// CounterSVG counts a visit and renders the badge. Query parameters
// customize the badge; see badge.ParseQuery for the accepted names.
//
// GET /counter/{name}/svg
func (h *Handler) CounterSVG(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	name, ok := badgeNameParam(rw, r)
	if !ok {
		metrics.RecordBadgeRenderError("name")
		return
	}

	opts, err := badge.ParseQuery(r.URL.Query())
	if err != nil {
		metrics.RecordBadgeRenderError("query")
		if errors.Is(err, badge.ErrInvalidParameter) {
			rw.BadRequest(err.Error())
		} else {
			rw.InternalError("Failed to parse badge options")
		}
		return
	}

	if opts != nil {
		if verr := validation.ValidateStruct(opts); verr != nil {
			metrics.RecordBadgeRenderError("validation")
			apiErr := verr.ToAPIError()
			rw.ValidationError(apiErr.Message, apiErr.Details)
			return
		}
	}

	// Count only requests that will actually render.
	count := h.store.Increment(name)
	svg := h.renderer.Render(count, opts)
	metrics.RecordBadgeRender()

	header := w.Header()
	header.Set("Content-Type", "image/svg+xml; charset=utf-8")
	header.Set("Cache-Control", "max-age=0, no-cache, no-store, must-revalidate")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")
	header.Set("Content-Security-Policy", svgContentSecurityPolicy)
	header.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(svg)); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write badge SVG")
	}
}
