// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import "errors"

// Errors produced while parsing the Authorization header. All of them map to
// HTTP 401.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty Authorization header")
	ErrInvalidAuthorizationHeader = errors.New("malformed Authorization header")
	ErrEmptyToken                 = errors.New("empty credential in Authorization header")
)
