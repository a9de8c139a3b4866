// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package fields

import (
	"errors"
	"fmt"
)

// Sentinel errors for the field model. Callers match with [errors.Is];
// [ValidationError] unwraps to ErrValidation so the whole class can be
// matched at once.
var (
	// ErrValidation marks any schema validation failure on a note write.
	ErrValidation = errors.New("field validation failed")

	// ErrFieldExists is returned by schema evolution when adding a field
	// whose name is already declared.
	ErrFieldExists = errors.New("field already declared in schema")

	// ErrFieldNotFound is returned by schema evolution when the named field
	// is not declared.
	ErrFieldNotFound = errors.New("field not declared in schema")

	// ErrInvalidFieldDef is returned when a field definition itself is
	// malformed (empty name, unknown type tag, select without values, or a
	// default that violates the definition).
	ErrInvalidFieldDef = errors.New("invalid field definition")
)

// ValidationError reports why a single field in an incoming payload violated
// the current schema.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// Unwrap makes every ValidationError match [ErrValidation] via errors.Is.
func (e *ValidationError) Unwrap() error { return ErrValidation }

func failf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
