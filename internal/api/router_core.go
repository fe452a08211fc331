// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/tomtom215/visitcounter/internal/auth"
	"github.com/tomtom215/visitcounter/internal/logging"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	middleware    *auth.Middleware
	chiMiddleware *ChiMiddleware
	staticDir     string // empty or missing disables the UI
}

// NewRouter creates a router. staticDir is served at / with an index.html
// fallback for client-side routes; an empty or missing directory disables
// it.
func NewRouter(handler *Handler, middleware *auth.Middleware, chiMiddleware *ChiMiddleware, staticDir string) *Router {
	if chiMiddleware == nil {
		chiMiddleware = NewChiMiddleware(nil)
	}

	if staticDir != "" {
		if info, err := os.Stat(staticDir); err != nil || !info.IsDir() {
			logging.Warn().Str("static_dir", staticDir).Msg("Static directory not found, web UI disabled")
			staticDir = ""
		}
	}

	return &Router{
		handler:       handler,
		middleware:    middleware,
		chiMiddleware: chiMiddleware,
		staticDir:     staticDir,
	}
}

// serveStaticOrIndex serves files from the static directory, falling back to
// index.html for paths without a file extension.
func (router *Router) serveStaticOrIndex(w http.ResponseWriter, r *http.Request) {
	if router.staticDir == "" {
		NewResponseWriter(w, r).NotFound("Not found")
		return
	}

	urlPath := path.Clean("/" + r.URL.Path)

	if strings.HasSuffix(urlPath, ".js") || strings.HasSuffix(urlPath, ".css") {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	} else if strings.HasSuffix(urlPath, ".png") || strings.HasSuffix(urlPath, ".svg") || strings.HasSuffix(urlPath, ".ico") {
		w.Header().Set("Cache-Control", "public, max-age=604800")
	}

	root := http.Dir(router.staticDir)
	if urlPath != "/" && fileExists(root, urlPath) {
		http.FileServer(root).ServeHTTP(w, r)
		return
	}

	// Missing assets are real 404s; anything else is a client-side route.
	if path.Ext(urlPath) != "" || !fileExists(root, "/index.html") {
		NewResponseWriter(w, r).NotFound("Not found")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	serveIndex(w, r, root)
}

// serveIndex writes index.html regardless of the request path.
func serveIndex(w http.ResponseWriter, r *http.Request, root http.FileSystem) {
	f, err := root.Open("/index.html")
	if err != nil {
		NewResponseWriter(w, r).NotFound("Not found")
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		NewResponseWriter(w, r).InternalError("Failed to read index.html")
		return
	}
	http.ServeContent(w, r, "index.html", stat.ModTime(), f)
}

// fileExists checks if a regular file exists under root
func fileExists(root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return false
	}

	return !stat.IsDir()
}
