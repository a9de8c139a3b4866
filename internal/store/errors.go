// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrUserAlreadyExists is returned when creating a user whose username
	// (or token) is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when an operation targets a username with
	// no stored account.
	ErrUserNotFound = errors.New("user not found")

	// ErrSpaceAlreadyExists is returned when creating a space whose slug is
	// already taken.
	ErrSpaceAlreadyExists = errors.New("space already exists")

	// ErrSpaceNotFound is returned when an operation targets a slug with no
	// stored space.
	ErrSpaceNotFound = errors.New("space not found")

	// ErrNoteNotFound is returned when an operation targets a (space slug,
	// number) pair with no stored note.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoteAlreadyExists is returned when an INSERT collides on (space
	// slug, number). With atomic counter assignment this indicates a bug or
	// an out-of-band write.
	ErrNoteAlreadyExists = errors.New("note number already taken")
)

// Low-level database operation errors, wrapped around driver failures.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("error scanning row")
)
