// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for the admin password hash.
const bcryptCost = 12

// AdminCredentials verifies the single admin login.
type AdminCredentials struct {
	username     string
	passwordHash []byte
}

// NewAdminCredentials hashes password once so that logins only pay for the
// comparison.
func NewAdminCredentials(username, password string) (*AdminCredentials, error) {
	return newAdminCredentials(username, password, bcryptCost)
}

func newAdminCredentials(username, password string, cost int) (*AdminCredentials, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &AdminCredentials{
		username:     username,
		passwordHash: hash,
	}, nil
}

// Verify reports whether username and password match. An empty username
// matches the configured one so the login form may send only a password.
// The bcrypt comparison always runs so timing does not reveal which half failed.
func (c *AdminCredentials) Verify(username, password string) bool {
	if username == "" {
		username = c.username
	}
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
	return usernameMatch && passwordMatch
}

// Username returns the configured admin username.
func (c *AdminCredentials) Username() string {
	return c.username
}
