// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package badge

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrInvalidParameter is wrapped by ParseQuery errors.
var ErrInvalidParameter = errors.New("invalid badge parameter")

type queryField struct {
	name  string
	parse func(o *RenderOptions, v string) error
}

func stringField(name string, field func(o *RenderOptions) **string) queryField {
	return queryField{name: name, parse: func(o *RenderOptions, v string) error {
		*field(o) = &v
		return nil
	}}
}

func uintField(name string, field func(o *RenderOptions) **uint32) queryField {
	return queryField{name: name, parse: func(o *RenderOptions, v string) error {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidParameter, name)
		}
		u := uint32(n)
		*field(o) = &u
		return nil
	}}
}

func floatField(name string, field func(o *RenderOptions) **float32) queryField {
	return queryField{name: name, parse: func(o *RenderOptions, v string) error {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", ErrInvalidParameter, name)
		}
		f32 := float32(f)
		*field(o) = &f32
		return nil
	}}
}

// queryFields lists every query parameter the badge endpoint understands.
var queryFields = []queryField{
	stringField("label", func(o *RenderOptions) **string { return &o.Label }),
	stringField("style", func(o *RenderOptions) **string { return &o.Style }),
	uintField("width", func(o *RenderOptions) **uint32 { return &o.Width }),
	uintField("height", func(o *RenderOptions) **uint32 { return &o.Height }),
	uintField("label_width", func(o *RenderOptions) **uint32 { return &o.LabelWidth }),
	uintField("counter_width", func(o *RenderOptions) **uint32 { return &o.CounterWidth }),
	uintField("radius", func(o *RenderOptions) **uint32 { return &o.Radius }),
	stringField("grad_stop1_color", func(o *RenderOptions) **string { return &o.GradStop1Color }),
	floatField("grad_stop1_opacity", func(o *RenderOptions) **float32 { return &o.GradStop1Opacity }),
	floatField("grad_stop2_opacity", func(o *RenderOptions) **float32 { return &o.GradStop2Opacity }),
	stringField("font_family", func(o *RenderOptions) **string { return &o.FontFamily }),
	uintField("font_size", func(o *RenderOptions) **uint32 { return &o.FontSize }),
	stringField("font_weight", func(o *RenderOptions) **string { return &o.FontWeight }),
	uintField("label_offset_x", func(o *RenderOptions) **uint32 { return &o.LabelOffsetX }),
	uintField("label_offset_y", func(o *RenderOptions) **uint32 { return &o.LabelOffsetY }),
	uintField("counter_offset_x", func(o *RenderOptions) **uint32 { return &o.CounterOffsetX }),
	uintField("counter_offset_y", func(o *RenderOptions) **uint32 { return &o.CounterOffsetY }),
	stringField("shadow_fill", func(o *RenderOptions) **string { return &o.ShadowFill }),
	floatField("shadow_opacity", func(o *RenderOptions) **float32 { return &o.ShadowOpacity }),
	stringField("background_label", func(o *RenderOptions) **string { return &o.BackgroundLabel }),
	stringField("background_counter", func(o *RenderOptions) **string { return &o.BackgroundCounter }),
	stringField("label_color", func(o *RenderOptions) **string { return &o.LabelColor }),
	stringField("counter_color", func(o *RenderOptions) **string { return &o.CounterColor }),
	stringField("text_color", func(o *RenderOptions) **string { return &o.TextColor }),
	stringField("background_color", func(o *RenderOptions) **string { return &o.BackgroundColor }),
	uintField("border_width", func(o *RenderOptions) **uint32 { return &o.BorderWidth }),
	stringField("border_color", func(o *RenderOptions) **string { return &o.BorderColor }),
	uintField("border_radius", func(o *RenderOptions) **uint32 { return &o.BorderRadius }),
	stringField("logo_url", func(o *RenderOptions) **string { return &o.LogoURL }),
	uintField("logo_width", func(o *RenderOptions) **uint32 { return &o.LogoWidth }),
	stringField("element_positions", func(o *RenderOptions) **string { return &o.ElementPositions }),
}

// ParseQuery decodes badge options from URL query parameters. It returns nil
// options when the query is empty. Unknown parameters are ignored; the first
// value of a repeated parameter wins. A malformed numeric value is an error
// wrapping ErrInvalidParameter.
func ParseQuery(values url.Values) (*RenderOptions, error) {
	if len(values) == 0 {
		return nil, nil
	}

	opts := &RenderOptions{}
	for _, f := range queryFields {
		if !values.Has(f.name) {
			continue
		}
		if err := f.parse(opts, values.Get(f.name)); err != nil {
			return nil, err
		}
	}
	return opts, nil
}
