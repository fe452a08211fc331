// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built on first use with
// WithRequiredStructEnabled, json field names in messages, and the
// application-specific "badgename" tag.
//
// # Usage
//
//	type createBadgeRequest struct {
//	    Name  string  `json:"name" validate:"required,badgename"`
//	    Count *uint64 `json:"count"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // render 400 with apiErr.Code (VALIDATION_FAILED) and apiErr.Message
//	}
//
// Badge render options carry lte/max bounds on their numeric and URL fields
// and are validated the same way before rendering.
package validation
