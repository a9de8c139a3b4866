// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

// Package utils holds small cross-cutting helpers: context keys, JSON
// response writing, JWT issuance and validation, and the outbound HTTP
// client wrapper.
package utils

import "context"

// contextKey keeps this package's context values from colliding with
// string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is where the auth middleware stores the authenticated
// username. Read it back with [GetUsernameFromContext].
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext returns the authenticated username, if any.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}
