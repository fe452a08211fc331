// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// PasswordPolicy defines requirements for the admin password.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigit     bool
	RequireSpecial   bool

	// ForbidCommonPasswords blocks a short list of breached passwords
	ForbidCommonPasswords bool

	// ForbidUsernameSimilarity rejects passwords containing the username or its reverse
	ForbidUsernameSimilarity bool
}

// DefaultPasswordPolicy is applied in production.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:                12,
		RequireUppercase:         true,
		RequireLowercase:         true,
		RequireDigit:             true,
		RequireSpecial:           true,
		ForbidCommonPasswords:    true,
		ForbidUsernameSimilarity: true,
	}
}

// RelaxedPasswordPolicy is applied outside production.
func RelaxedPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:                8,
		ForbidCommonPasswords:    true,
		ForbidUsernameSimilarity: true,
	}
}

// Validate returns an error listing every requirement the password misses.
func (p PasswordPolicy) Validate(password, username string) error {
	var problems []string

	if len(password) < p.MinLength {
		problems = append(problems,
			fmt.Sprintf("password must be at least %d characters (got %d)", p.MinLength, len(password)))
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if p.RequireUppercase && !hasUpper {
		problems = append(problems, "password must contain at least one uppercase letter")
	}
	if p.RequireLowercase && !hasLower {
		problems = append(problems, "password must contain at least one lowercase letter")
	}
	if p.RequireDigit && !hasDigit {
		problems = append(problems, "password must contain at least one digit")
	}
	if p.RequireSpecial && !hasSpecial {
		problems = append(problems, "password must contain at least one special character")
	}

	if p.ForbidCommonPasswords && commonPasswords[strings.ToLower(password)] {
		problems = append(problems, "password is too common and easily guessable")
	}
	if p.ForbidUsernameSimilarity && username != "" && isSimilarToUsername(password, username) {
		problems = append(problems, "password is too similar to username")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

var commonPasswords = map[string]bool{
	"123456":        true,
	"12345678":      true,
	"123456789":     true,
	"1234567890":    true,
	"password":      true,
	"password1":     true,
	"password123":   true,
	"passw0rd":      true,
	"p@ssw0rd":      true,
	"qwerty":        true,
	"qwerty123":     true,
	"qwertyuiop":    true,
	"abc123":        true,
	"abcd1234":      true,
	"1q2w3e4r":      true,
	"1qaz2wsx":      true,
	"admin":         true,
	"admin123":      true,
	"administrator": true,
	"letmein":       true,
	"welcome":       true,
	"welcome123":    true,
	"iloveyou":      true,
	"sunshine":      true,
	"trustno1":      true,
	"changeme":      true,
	"secret":        true,
	"default":       true,
	"11111111":      true,
	"00000000":      true,
	"visitcounter":  true,
	"counter":       true,
	"counter123":    true,
	"badge":         true,
	"visits":        true,
}

// isSimilarToUsername checks if the password contains the username, the
// username contains the password, or the password contains the reversed username.
func isSimilarToUsername(password, username string) bool {
	lowerPass := strings.ToLower(password)
	lowerUser := strings.ToLower(username)

	if strings.Contains(lowerPass, lowerUser) || strings.Contains(lowerUser, lowerPass) {
		return true
	}

	runes := []rune(lowerUser)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return strings.Contains(lowerPass, string(runes))
}

