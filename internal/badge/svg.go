// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package badge

import (
	"fmt"
	"html"
	"strconv"
)

const svgTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" class="svg-counter">
<style type="text/css"><![CDATA[
%s
]]></style>
<defs>
  <linearGradient id="grad" x2="0" y2="100%%">
    <stop offset="0" stop-color="var(--grad-stop1-color)" stop-opacity="var(--grad-stop1-opacity)"/>
    <stop offset="1" stop-opacity="var(--grad-stop2-opacity)"/>
  </linearGradient>
  <mask id="mask">
    <rect class="mask-rect" fill="#fff"/>
  </mask>
</defs>
<g mask="url(#mask)">
  <rect class="left-rect"/>
  <rect class="right-rect"/>
  <rect class="overlay-rect" fill="url(#grad)"/>
  %s
</g>
%s
<g class="text-group">
  <text class="label-shadow">%s</text>
  <text class="label">%s</text>
  <text class="count-shadow">%s</text>
  <text class="count">%s</text>
</g>
</svg>`

// GenerateSVG renders the badge document. css is embedded as-is; the label
// is escaped as XML text. The logo element is included when opts has a
// non-empty logo URL and the border element when opts has a positive border
// width.
func GenerateSVG(label string, count uint64, css string, width, height uint32, opts *RenderOptions) string {
	text := html.EscapeString(label)
	n := strconv.FormatUint(count, 10)

	return fmt.Sprintf(svgTemplate,
		width, height,
		css,
		logoElement(height, opts),
		borderElement(width, height, opts),
		text, text,
		n, n,
	)
}

func logoElement(height uint32, opts *RenderOptions) string {
	if !opts.hasLogo() {
		return ""
	}
	u := *opts.LogoURL
	s := logoSize(height)
	return fmt.Sprintf(`<rect class="logo-rect"/><image href="%s" xlink:href="%s" class="logo-image" width="%d" height="%d" preserveAspectRatio="xMidYMid meet"/>`,
		u, u, s, s)
}

func borderElement(width, height uint32, opts *RenderOptions) string {
	if !opts.hasBorder() {
		return ""
	}
	bw := float32(*opts.BorderWidth)
	half := bw / 2
	return fmt.Sprintf(`<rect class="border-rect" width="%s" height="%s" x="%s" y="%s"/>`,
		formatFloat(float32(width)-bw),
		formatFloat(float32(height)-bw),
		formatFloat(half),
		formatFloat(half),
	)
}
