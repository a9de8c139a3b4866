// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package fields

import (
	"fmt"
	"regexp"

	"github.com/spacenote/spacenote/models"
)

// Field names are lowercase identifiers so they stay usable as JSON keys and
// query parameters.
var fieldNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// AddField returns a new schema with def appended. The input schema is never
// mutated, and no stored note is affected: the new definition only binds
// future writes.
func AddField(schema models.Schema, def models.FieldDef) (models.Schema, error) {
	if err := CheckDef(def); err != nil {
		return nil, err
	}
	if _, exists := schema.Field(def.Name); exists {
		return nil, fmt.Errorf("%w: %q", ErrFieldExists, def.Name)
	}

	out := schema.Clone()
	return append(out, def), nil
}

// RemoveField returns a new schema without the named declaration. Values
// already stored under that name remain in their notes untouched; they are
// simply no longer validated on future writes.
func RemoveField(schema models.Schema, name string) (models.Schema, error) {
	idx := indexOf(schema, name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}

	out := make(models.Schema, 0, len(schema)-1)
	out = append(out, schema[:idx]...)
	out = append(out, schema[idx+1:]...)
	return out, nil
}

// ChangeField returns a new schema with the declaration matching def.Name
// replaced by def. Historical values are not re-validated against the
// changed definition; mismatches discovered on later reads are expected and
// tolerated.
func ChangeField(schema models.Schema, def models.FieldDef) (models.Schema, error) {
	if err := CheckDef(def); err != nil {
		return nil, err
	}

	idx := indexOf(schema, def.Name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, def.Name)
	}

	out := schema.Clone()
	out[idx] = def
	return out, nil
}

// CheckDef verifies that a field definition is internally consistent: a
// valid name, a known type tag, options matching the type, and a default
// (if any) that satisfies the definition itself.
func CheckDef(def models.FieldDef) error {
	if !fieldNamePattern.MatchString(def.Name) {
		return fmt.Errorf("%w: name %q must match %s", ErrInvalidFieldDef, def.Name, fieldNamePattern)
	}
	if !def.Type.Known() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidFieldDef, def.Type)
	}

	switch def.Type {
	case models.FieldTypeSelect:
		if len(def.Options.Values) == 0 {
			return fmt.Errorf("%w: select field %q needs a non-empty values option", ErrInvalidFieldDef, def.Name)
		}
	case models.FieldTypeInt, models.FieldTypeFloat:
		if def.Options.Min != nil && def.Options.Max != nil && *def.Options.Min > *def.Options.Max {
			return fmt.Errorf("%w: field %q has min above max", ErrInvalidFieldDef, def.Name)
		}
	default:
		if len(def.Options.Values) != 0 || def.Options.Min != nil || def.Options.Max != nil {
			return fmt.Errorf("%w: field %q carries options its type does not support", ErrInvalidFieldDef, def.Name)
		}
	}

	if def.Default != nil {
		if err := checkValue(def, *def.Default); err != nil {
			return fmt.Errorf("%w: default value rejected: %w", ErrInvalidFieldDef, err)
		}
	}

	return nil
}

func indexOf(schema models.Schema, name string) int {
	for i, def := range schema {
		if def.Name == name {
			return i
		}
	}
	return -1
}
