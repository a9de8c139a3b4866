// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrNotSpaceMember      = errors.New("user is not a member of the space")

	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidSlug     = errors.New("invalid space slug")

	ErrWrongCredentials        = errors.New("wrong credentials")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
