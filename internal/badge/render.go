// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package badge

// Defaults are used when a request does not set label, width or height.
type Defaults struct {
	Label  string
	Width  uint32
	Height uint32
}

// DefaultDefaults returns the built-in badge defaults.
func DefaultDefaults() Defaults {
	return Defaults{Label: "Visits", Width: defaultWidth, Height: defaultHeight}
}

// Renderer combines the base stylesheet with per-request options. It holds
// no mutable state and is safe for concurrent use.
type Renderer struct {
	stylesheet string
	defaults   Defaults
}

// NewRenderer creates a renderer. Zero-valued defaults fall back to
// DefaultDefaults.
func NewRenderer(stylesheet string, defaults Defaults) *Renderer {
	builtin := DefaultDefaults()
	if defaults.Label == "" {
		defaults.Label = builtin.Label
	}
	if defaults.Width == 0 {
		defaults.Width = builtin.Width
	}
	if defaults.Height == 0 {
		defaults.Height = builtin.Height
	}
	return &Renderer{stylesheet: stylesheet, defaults: defaults}
}

// Render produces the SVG for count using opts, which may be nil.
func (r *Renderer) Render(count uint64, opts *RenderOptions) string {
	opts = r.withDefaults(opts)

	label := r.defaults.Label
	if opts != nil && opts.Label != nil {
		label = *opts.Label
	}
	width, height := r.defaults.Width, r.defaults.Height
	if opts != nil {
		width = u32Or(opts.Width, width)
		height = u32Or(opts.Height, height)
	}

	css := r.stylesheet + "\n" + BuildCustomCSS(opts)
	return GenerateSVG(label, count, css, width, height, opts)
}

// withDefaults fills Width and Height from configured defaults that differ
// from the base stylesheet, so layout, logo margin and text centering see
// the dimensions the <svg> element gets. opts itself is never modified.
func (r *Renderer) withDefaults(opts *RenderOptions) *RenderOptions {
	setWidth := r.defaults.Width != defaultWidth && (opts == nil || opts.Width == nil)
	setHeight := r.defaults.Height != defaultHeight && (opts == nil || opts.Height == nil)
	if !setWidth && !setHeight {
		return opts
	}

	merged := RenderOptions{}
	if opts != nil {
		merged = *opts
	}
	if setWidth {
		merged.Width = Ptr(r.defaults.Width)
	}
	if setHeight {
		merged.Height = Ptr(r.defaults.Height)
	}
	return &merged
}

// Stylesheet returns the base stylesheet.
func (r *Renderer) Stylesheet() string {
	return r.stylesheet
}
