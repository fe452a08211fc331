// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"net/http"

	"github.com/tomtom215/visitcounter/internal/auth"
	"github.com/tomtom215/visitcounter/internal/logging"
)

// ListBadges returns every tracked badge.
//
// GET /api/admin/badges
func (h *Handler) ListBadges(w http.ResponseWriter, r *http.Request) {
	badges := h.store.GetAllBadges()
	NewResponseWriter(w, r).Resource(http.StatusOK, BadgeListResponse{
		Total:  len(badges),
		Badges: badges,
	})
}

// GetBadge returns one badge or 404.
//
// GET /api/admin/badges/{name}
func (h *Handler) GetBadge(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	name, ok := badgeNameParam(rw, r)
	if !ok {
		return
	}

	b, found := h.store.GetBadge(name)
	if !found {
		rw.NotFound("Badge not found: " + name)
		return
	}
	rw.Resource(http.StatusOK, b)
}

// CreateBadge creates a badge with an optional initial count. An existing
// badge is a 409.
//
// POST /api/admin/badges
func (h *Handler) CreateBadge(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req CreateBadgeRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	if _, exists := h.store.GetBadge(req.Name); exists {
		rw.Conflict("Badge already exists: " + req.Name)
		return
	}

	b := h.store.CreateBadge(req.Name, req.Count)
	h.logAdminAction(r, "Badge created", b.Name)
	rw.Resource(http.StatusCreated, b)
}

// UpdateBadge sets the count of an existing badge.
//
// PUT /api/admin/badges/{name}
func (h *Handler) UpdateBadge(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	name, ok := badgeNameParam(rw, r)
	if !ok {
		return
	}

	var req SetCountRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	b, found := h.store.UpdateBadge(name, *req.Count)
	if !found {
		rw.NotFound("Badge not found: " + name)
		return
	}
	h.logAdminAction(r, "Badge updated", name)
	rw.Resource(http.StatusOK, b)
}

// DeleteBadge removes a badge and its count.
//
// DELETE /api/admin/badges/{name}
func (h *Handler) DeleteBadge(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	name, ok := badgeNameParam(rw, r)
	if !ok {
		return
	}

	if !h.store.DeleteBadge(name) {
		rw.NotFound("Badge not found: " + name)
		return
	}
	h.logAdminAction(r, "Badge deleted", name)
	rw.NoContent()
}

func (h *Handler) logAdminAction(r *http.Request, msg, name string) {
	event := logging.Ctx(r.Context()).Info().Str("badge", sanitizeLogValue(name))
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		event = event.Str("admin", logging.SanitizeUsername(claims.Username))
	}
	event.Msg(msg)
}
