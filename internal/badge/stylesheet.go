// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package badge

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed assets/style.css
var defaultStylesheet string

// DefaultStylesheet returns the embedded base stylesheet.
func DefaultStylesheet() string {
	return defaultStylesheet
}

// LoadStylesheet reads the base stylesheet from path, or returns the embedded
// one when path is empty.
func LoadStylesheet(path string) (string, error) {
	if path == "" {
		return defaultStylesheet, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read stylesheet: %w", err)
	}
	return string(data), nil
}
