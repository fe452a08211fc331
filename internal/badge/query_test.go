// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package badge

import (
	"errors"
	"net/url"
	"testing"
)

func TestParseQuery_Empty(t *testing.T) {
	t.Parallel()

	opts, err := ParseQuery(url.Values{})
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}
	if opts != nil {
		t.Errorf("ParseQuery(empty) = %+v, want nil", opts)
	}
}

func TestParseQuery_Fields(t *testing.T) {
	t.Parallel()

	q, err := url.ParseQuery("label=Views&width=200&height=28&grad_stop1_opacity=0.25" +
		"&text_color=fff&border_width=2&logo_url=https%3A%2F%2Fexample.com%2Fl.png" +
		"&element_positions=logo,label,counter&font_weight=bold&style=.count%7Bfill:red%7D")
	if err != nil {
		t.Fatal(err)
	}

	opts, err := ParseQuery(q)
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}

	checks := []struct {
		name string
		ok   bool
	}{
		{"label", opts.Label != nil && *opts.Label == "Views"},
		{"width", opts.Width != nil && *opts.Width == 200},
		{"height", opts.Height != nil && *opts.Height == 28},
		{"grad_stop1_opacity", opts.GradStop1Opacity != nil && *opts.GradStop1Opacity == 0.25},
		{"text_color", opts.TextColor != nil && *opts.TextColor == "fff"},
		{"border_width", opts.BorderWidth != nil && *opts.BorderWidth == 2},
		{"logo_url", opts.LogoURL != nil && *opts.LogoURL == "https://example.com/l.png"},
		{"element_positions", opts.ElementPositions != nil && *opts.ElementPositions == "logo,label,counter"},
		{"font_weight", opts.FontWeight != nil && *opts.FontWeight == "bold"},
		{"style", opts.Style != nil && *opts.Style == ".count{fill:red}"},
		{"unset radius", opts.Radius == nil},
		{"unset label_color", opts.LabelColor == nil},
	}
	for _, c := range checks {
		if !c.ok {
			t.Errorf("%s not decoded as expected: %+v", c.name, opts)
		}
	}
}

func TestParseQuery_UnknownOnly(t *testing.T) {
	t.Parallel()

	opts, err := ParseQuery(url.Values{"cachebust": {"1"}})
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}
	if opts == nil {
		t.Fatal("ParseQuery() = nil, want empty options")
	}
	if got := BuildCustomCSS(opts); got != ":root {\n}\n" {
		t.Errorf("BuildCustomCSS() = %q", got)
	}
}

func TestParseQuery_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query url.Values
	}{
		{"negative width", url.Values{"width": {"-1"}}},
		{"text width", url.Values{"width": {"wide"}}},
		{"empty height", url.Values{"height": {""}}},
		{"overflow", url.Values{"border_width": {"4294967296"}}},
		{"bad opacity", url.Values{"shadow_opacity": {"half"}}},
		{"fractional size", url.Values{"font_size": {"11.5"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts, err := ParseQuery(tt.query)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("ParseQuery() error = %v, want %v", err, ErrInvalidParameter)
			}
			if opts != nil {
				t.Errorf("ParseQuery() = %+v, want nil on error", opts)
			}
		})
	}
}

func TestParseQuery_FirstValueWins(t *testing.T) {
	t.Parallel()

	opts, err := ParseQuery(url.Values{"label": {"first", "second"}})
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}
	if opts.Label == nil || *opts.Label != "first" {
		t.Errorf("Label = %v, want first", opts.Label)
	}
}
