// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

/*
Package badge renders visit counter badges as SVG.

Rendering is pure: the same label, count, CSS and options always produce the
same document. Visual customization is done with CSS custom properties.
BuildCustomCSS turns RenderOptions into a ":root" block plus extra rule
blocks, and the result is appended to the base stylesheet so later
declarations win.

	opts, err := badge.ParseQuery(r.URL.Query())
	if err != nil {
	    // 400
	}
	r := badge.NewRenderer(badge.DefaultStylesheet(), badge.DefaultDefaults())
	svg := r.Render(store.Increment(name), opts)

# Security

The style parameter, logo URL and color values are written into the
document unescaped. Callers serving the result to browsers should send a
restrictive Content-Security-Policy. The label is escaped as XML text.
*/
package badge
