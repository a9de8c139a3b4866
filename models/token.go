// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package models

import "time"

// Token is a signed session token issued after a successful login.
type Token struct {
	// SignedString is the compact JWT representation sent to the client.
	SignedString string `json:"token"`

	// Username is the subject the token was issued for.
	Username string `json:"-"`

	// ExpiresAt is when the token stops being accepted.
	ExpiresAt time.Time `json:"expires_at"`
}
