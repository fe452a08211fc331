// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package badge

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	defaultElementPositions = "label,logo,counter"
	defaultLogoWidth        = 30
	defaultWidth            = 150
	defaultHeight           = 20
	defaultFontSize         = 11
	defaultBorderRadius     = 3
	defaultBorderColor      = "#cccccc"

	// labelShare is the label's share of the width when no logo is shown.
	labelShare float32 = 0.667
)

// cssBuilder collects custom properties for the :root block and the rule
// blocks that follow it.
type cssBuilder struct {
	root  strings.Builder
	rules strings.Builder
}

func (b *cssBuilder) prop(name, value string) {
	fmt.Fprintf(&b.root, "  %s: %s;\n", name, value)
}

func (b *cssBuilder) rule(format string, args ...any) {
	fmt.Fprintf(&b.rules, format, args...)
}

// cssRule contributes to the custom stylesheet. Rules run in slice order.
type cssRule struct {
	name  string
	apply func(b *cssBuilder, o *RenderOptions)
}

var cssRules = []cssRule{
	{"dimensions", applyDimensions},
	{"height-radius", applyHeightAndRadius},
	{"gradient", applyGradient},
	{"text", applyText},
	{"shadow", applyShadow},
	{"colors", applyColors},
	{"deprecated-colors", applyDeprecatedColors},
	{"logo", applyLogo},
	{"border-radius", applyBorderRadius},
	{"font-weight", applyFontWeight},
	{"border-stroke", applyBorderStroke},
	{"vertical-centering", applyVerticalCentering},
	{"style", applyStyle},
}

// BuildCustomCSS turns options into CSS that overrides the base stylesheet.
// Nil options produce an empty string.
func BuildCustomCSS(opts *RenderOptions) string {
	if opts == nil {
		return ""
	}

	var b cssBuilder
	for _, r := range cssRules {
		r.apply(&b, opts)
	}

	var out strings.Builder
	out.Grow(b.root.Len() + b.rules.Len() + 16)
	out.WriteString(":root {\n")
	out.WriteString(b.root.String())
	out.WriteString("}\n")
	out.WriteString(b.rules.String())
	return out.String()
}

// normalizeColor prefixes '#' when missing. Nothing else is checked.
func normalizeColor(c string) string {
	if strings.HasPrefix(c, "#") {
		return c
	}
	return "#" + c
}

func px(v uint32) string {
	return strconv.FormatUint(uint64(v), 10) + "px"
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func roundF32(f float32) uint32 {
	r := math.Round(float64(f))
	if r <= 0 {
		return 0
	}
	return uint32(r)
}

// logoSize is the rendered logo edge length for a badge of height h.
func logoSize(h uint32) uint32 {
	if h > defaultHeight {
		return roundF32(float32(float32(h) * 0.7))
	}
	return roundF32(float32(float32(h) * 0.8))
}

func subSat(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}

func (b *cssBuilder) optPx(name string, v *uint32) {
	if v != nil {
		b.prop(name, px(*v))
	}
}

func (b *cssBuilder) optColor(name string, v *string) {
	if v != nil {
		b.prop(name, normalizeColor(*v))
	}
}

func (b *cssBuilder) optFloat(name string, v *float32) {
	if v != nil {
		b.prop(name, formatFloat(*v))
	}
}

// applyDimensions emits the width and either the explicit section widths or
// an automatic layout following element_positions.
func applyDimensions(b *cssBuilder, o *RenderOptions) {
	if o.Width == nil {
		b.optPx("--label-width", o.LabelWidth)
		b.optPx("--counter-width", o.CounterWidth)
		return
	}

	width := *o.Width
	b.prop("--width", px(width))

	if o.LabelWidth != nil || o.CounterWidth != nil {
		b.optPx("--label-width", o.LabelWidth)
		b.optPx("--counter-width", o.CounterWidth)
		return
	}

	positions := defaultElementPositions
	if o.ElementPositions != nil {
		positions = *o.ElementPositions
	}
	tokens := strings.Split(positions, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	withLogo := false
	for _, tok := range tokens {
		if tok == "logo" {
			withLogo = o.hasLogo()
			break
		}
	}

	var logoWidth uint32
	if withLogo {
		logoWidth = u32Or(o.LogoWidth, defaultLogoWidth)
	}
	section := subSat(width, logoWidth) / 2
	labelDefault := roundF32(float32(float32(width) * labelShare))

	var x uint32
	for _, tok := range tokens {
		switch tok {
		case "label":
			w := labelDefault
			if withLogo {
				w = section
			}
			b.prop("--label-width", px(w))
			b.prop("--label-offset-x", px(x+w/2))
			x += w
		case "logo":
			if !withLogo {
				continue
			}
			b.prop("--logo-width", px(logoWidth))
			b.prop("--logo-offset-x", px(x+logoWidth/2))
			x += logoWidth
		case "counter":
			w := subSat(width, labelDefault)
			if withLogo {
				w = section
			}
			b.prop("--counter-width", px(w))
			b.prop("--counter-offset-x", px(x+w/2))
			x += w
		}
	}
}

func applyHeightAndRadius(b *cssBuilder, o *RenderOptions) {
	b.optPx("--height", o.Height)
	if o.Radius != nil {
		r := *o.Radius
		b.prop("--radius", px(r))
		b.rule(".mask-rect { rx: %dpx; ry: %dpx; }\n", r, r)
	}
}

func applyGradient(b *cssBuilder, o *RenderOptions) {
	b.optColor("--grad-stop1-color", o.GradStop1Color)
	b.optFloat("--grad-stop1-opacity", o.GradStop1Opacity)
	b.optFloat("--grad-stop2-opacity", o.GradStop2Opacity)
}

func applyText(b *cssBuilder, o *RenderOptions) {
	if o.FontFamily != nil {
		b.prop("--font-family", *o.FontFamily)
	}
	b.optPx("--font-size", o.FontSize)
	b.optPx("--label-offset-x", o.LabelOffsetX)
	b.optPx("--label-offset-y", o.LabelOffsetY)
	b.optPx("--counter-offset-x", o.CounterOffsetX)
	b.optPx("--counter-offset-y", o.CounterOffsetY)
}

func applyShadow(b *cssBuilder, o *RenderOptions) {
	b.optColor("--shadow-fill", o.ShadowFill)
	b.optFloat("--shadow-opacity", o.ShadowOpacity)
}

func applyColors(b *cssBuilder, o *RenderOptions) {
	b.optColor("--background-label", o.BackgroundLabel)
	b.optColor("--background-counter", o.BackgroundCounter)
	b.optColor("--label-color", o.LabelColor)
	b.optColor("--counter-color", o.CounterColor)
}

// applyDeprecatedColors must run after applyColors: the specific colors win.
func applyDeprecatedColors(b *cssBuilder, o *RenderOptions) {
	if o.TextColor != nil {
		c := normalizeColor(*o.TextColor)
		if o.LabelColor == nil {
			b.prop("--label-color", c)
		}
		if o.CounterColor == nil {
			b.prop("--counter-color", c)
		}
	}
	if o.BackgroundColor != nil {
		c := normalizeColor(*o.BackgroundColor)
		if o.BackgroundLabel == nil {
			b.prop("--background-label", c)
		}
		if o.BackgroundCounter == nil {
			b.prop("--background-counter", c)
		}
	}
}

func applyLogo(b *cssBuilder, o *RenderOptions) {
	if !o.hasLogo() {
		return
	}
	h := u32Or(o.Height, defaultHeight)
	margin := subSat(h, logoSize(h)) / 2
	halfLogo := u32Or(o.LogoWidth, defaultLogoWidth) / 2

	b.rule(`
.logo-rect {
  width: var(--logo-width, 30px);
  height: var(--height);
  fill: var(--background-logo, transparent);
  transform: translateX(calc(var(--logo-offset-x, 50px) - var(--logo-width, 30px) / 2));
}
.logo-image {
  transform: translate(calc(var(--logo-offset-x, 50px) - %dpx), %dpx);
}
`, halfLogo, margin)
}

// applyBorderRadius rounds the border and shrinks the mask radius by half the
// border width so the badge body stays inside the stroke.
func applyBorderRadius(b *cssBuilder, o *RenderOptions) {
	var radius uint32
	switch {
	case o.BorderRadius != nil:
		radius = *o.BorderRadius
	case o.hasBorder():
		radius = defaultBorderRadius
	default:
		return
	}

	b.rule(".border-rect { rx: %dpx; ry: %dpx; }\n", radius, radius)

	halfBorder := float32(float32(u32Or(o.BorderWidth, 1)) * 0.5)
	var inner uint32
	if float32(radius) > halfBorder {
		inner = roundF32(float32(float32(radius) - halfBorder))
	}
	b.rule(".mask-rect { rx: %dpx; ry: %dpx; }\n", inner, inner)
}

func applyFontWeight(b *cssBuilder, o *RenderOptions) {
	if o.FontWeight == nil {
		return
	}
	w := *o.FontWeight
	b.rule(":root { --font-weight: %s; }\n", w)
	b.rule(".text-group { font-weight: %s !important; }\n", w)
}

func applyBorderStroke(b *cssBuilder, o *RenderOptions) {
	if !o.hasBorder() {
		return
	}
	color := defaultBorderColor
	if o.BorderColor != nil {
		color = normalizeColor(*o.BorderColor)
	}
	b.rule(".border-rect { fill: none; stroke: %s; stroke-width: %d; }\n", color, *o.BorderWidth)
}

// applyVerticalCentering approximates vertical centering for non-default
// heights.
func applyVerticalCentering(b *cssBuilder, o *RenderOptions) {
	if o.Height == nil || *o.Height == defaultHeight {
		return
	}
	fontSize := u32Or(o.FontSize, defaultFontSize)
	half := float32(float32(*o.Height) / 2)
	center := float32(half + float32(float32(fontSize)*0.35))
	y := roundF32(center)
	b.rule(":root { --label-offset-y: %dpx; --counter-offset-y: %dpx; }\n", y, y)
}

func applyStyle(b *cssBuilder, o *RenderOptions) {
	if o.Style != nil {
		b.rules.WriteString(*o.Style)
	}
}
