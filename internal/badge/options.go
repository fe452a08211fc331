// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package badge

// RenderOptions customizes a badge. Every field is optional; nil means the
// stylesheet default applies. A nil *RenderOptions means no customization at
// all and produces no custom CSS.
//
// The validate tags bound what the HTTP layer accepts. Rendering itself
// accepts any combination.
type RenderOptions struct {
	Label *string `json:"label,omitempty"`
	Style *string `json:"style,omitempty"`

	Width        *uint32 `json:"width,omitempty" validate:"omitempty,lte=10000"`
	Height       *uint32 `json:"height,omitempty" validate:"omitempty,lte=10000"`
	LabelWidth   *uint32 `json:"label_width,omitempty" validate:"omitempty,lte=10000"`
	CounterWidth *uint32 `json:"counter_width,omitempty" validate:"omitempty,lte=10000"`
	Radius       *uint32 `json:"radius,omitempty" validate:"omitempty,lte=10000"`

	GradStop1Color   *string  `json:"grad_stop1_color,omitempty"`
	GradStop1Opacity *float32 `json:"grad_stop1_opacity,omitempty"`
	GradStop2Opacity *float32 `json:"grad_stop2_opacity,omitempty"`

	FontFamily     *string `json:"font_family,omitempty"`
	FontSize       *uint32 `json:"font_size,omitempty" validate:"omitempty,lte=1000"`
	FontWeight     *string `json:"font_weight,omitempty"`
	LabelOffsetX   *uint32 `json:"label_offset_x,omitempty"`
	LabelOffsetY   *uint32 `json:"label_offset_y,omitempty"`
	CounterOffsetX *uint32 `json:"counter_offset_x,omitempty"`
	CounterOffsetY *uint32 `json:"counter_offset_y,omitempty"`

	ShadowFill    *string  `json:"shadow_fill,omitempty"`
	ShadowOpacity *float32 `json:"shadow_opacity,omitempty"`

	BackgroundLabel   *string `json:"background_label,omitempty"`
	BackgroundCounter *string `json:"background_counter,omitempty"`
	LabelColor        *string `json:"label_color,omitempty"`
	CounterColor      *string `json:"counter_color,omitempty"`

	// Deprecated: use LabelColor and CounterColor. Applied only to whichever
	// of the two is unset.
	TextColor *string `json:"text_color,omitempty"`

	// Deprecated: use BackgroundLabel and BackgroundCounter. Applied only to
	// whichever of the two is unset.
	BackgroundColor *string `json:"background_color,omitempty"`

	BorderWidth  *uint32 `json:"border_width,omitempty" validate:"omitempty,lte=1000"`
	BorderColor  *string `json:"border_color,omitempty"`
	BorderRadius *uint32 `json:"border_radius,omitempty" validate:"omitempty,lte=10000"`

	LogoURL   *string `json:"logo_url,omitempty" validate:"omitempty,max=2048"`
	LogoWidth *uint32 `json:"logo_width,omitempty" validate:"omitempty,lte=10000"`

	// ElementPositions orders the badge sections, e.g. "logo,label,counter".
	ElementPositions *string `json:"element_positions,omitempty"`
}

// Ptr returns a pointer to v.
//
//	opts := &badge.RenderOptions{Width: badge.Ptr(uint32(200))}
func Ptr[T any](v T) *T {
	return &v
}

// hasLogo reports whether a non-empty logo URL was given.
func (o *RenderOptions) hasLogo() bool {
	return o != nil && o.LogoURL != nil && *o.LogoURL != ""
}

// hasBorder reports whether a positive border width was given.
func (o *RenderOptions) hasBorder() bool {
	return o != nil && o.BorderWidth != nil && *o.BorderWidth > 0
}

func u32Or(p *uint32, def uint32) uint32 {
	if p == nil {
		return def
	}
	return *p
}
