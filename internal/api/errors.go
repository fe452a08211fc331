// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import "errors"

// Request decoding errors
var (
	// ErrEmptyBody indicates a JSON body was required but none was sent
	ErrEmptyBody = errors.New("request body is empty")

	// ErrBodyTooLarge indicates the body exceeded maxRequestBodyBytes
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrTrailingData indicates more than one JSON value was sent
	ErrTrailingData = errors.New("request body must contain a single JSON object")
)
