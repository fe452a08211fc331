// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/visitcounter/internal/validation"
)

// maxRequestBodyBytes bounds JSON request bodies. Every body this API accepts
// is a handful of fields.
const maxRequestBodyBytes = 64 << 10

// sanitizeLogValue removes control characters from strings to prevent log
// injection. Badge names come straight from the URL.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// badgeNameParam returns the {name} URL parameter, writing a 400 and
// returning false when it is not a valid badge name.
func badgeNameParam(rw *ResponseWriter, r *http.Request) (string, bool) {
	name := chi.URLParam(r, "name")
	if !validation.IsValidBadgeName(name) {
		rw.ValidationError(
			fmt.Sprintf("Invalid badge name: at most %d characters, no slashes, control characters or surrounding spaces", validation.MaxBadgeNameLength),
			map[string]interface{}{"field": "name"},
		)
		return "", false
	}
	return name, true
}

// decodeJSON reads a single JSON object from the request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if len(body) == 0 {
		return ErrEmptyBody
	}
	if len(body) > maxRequestBodyBytes {
		return ErrBodyTooLarge
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return ErrTrailingData
	}
	return nil
}

// decodeAndValidate decodes the body into v and runs struct validation,
// writing the 400 response itself on failure.
func decodeAndValidate(rw *ResponseWriter, r *http.Request, v interface{}) bool {
	if err := decodeJSON(r, v); err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "Request body too large")
			return false
		}
		rw.BadRequest("Invalid request body: " + err.Error())
		return false
	}

	if verr := validation.ValidateStruct(v); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}
