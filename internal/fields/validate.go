// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package fields

import (
	"github.com/spacenote/spacenote/models"
)

// ValidateCreate checks an incoming fields payload against the current
// schema for a note creation and returns the payload to store.
//
// Rules:
//   - Declared fields present in the payload are type-checked against their
//     definition (including select membership and numeric bounds).
//   - A required field absent from the payload fails validation, default or
//     not. An absent optional field receives the definition's default when
//     one is declared and otherwise simply stays absent.
//   - Fields not declared in the schema are preserved as-is; the model never
//     closes the set of representable fields.
//   - An explicit null satisfies presence for optional fields but never for
//     required ones.
//
// The input map is not mutated. On failure no payload is returned: a note
// either satisfies the schema's hard constraints or is rejected in full.
func ValidateCreate(schema models.Schema, incoming models.FieldMap) (models.FieldMap, error) {
	out := incoming.Clone()
	if out == nil {
		out = models.FieldMap{}
	}

	for _, def := range schema {
		value, present := incoming[def.Name]

		if !present {
			if def.Required {
				return nil, failf(def.Name, "required field is missing")
			}
			if def.Default != nil {
				out[def.Name] = *def.Default
			}
			continue
		}

		if err := checkValue(def, value); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ValidateUpdate checks an incoming partial fields payload against the
// current schema for an update of an existing note, and returns the full
// payload to store: the existing payload with the incoming fields merged on
// top.
//
// Grandfathering: a required field that the stored document never contained
// does not have to be supplied — only newly written values are held to the
// current schema. The update path therefore fails on a required field only
// when the incoming payload explicitly sets it to null. Fields the payload
// does not mention are left untouched, and undeclared incoming fields are
// preserved.
func ValidateUpdate(schema models.Schema, existing, incoming models.FieldMap) (models.FieldMap, error) {
	out := existing.Clone()
	if out == nil {
		out = models.FieldMap{}
	}

	for name, value := range incoming {
		def, declared := schema.Field(name)
		if declared {
			if err := checkValue(def, value); err != nil {
				return nil, err
			}
		}
		out[name] = value
	}

	return out, nil
}

// checkValue verifies a single non-absent value against its definition.
// Historical values already in storage are never passed through here; type
// mismatches between old data and a newer schema are a display-layer
// concern, not a storage-layer error.
func checkValue(def models.FieldDef, value models.Value) error {
	if value.IsNull() {
		if def.Required {
			return failf(def.Name, "required field cannot be null")
		}
		return nil
	}

	switch def.Type {
	case models.FieldTypeString, models.FieldTypeUser:
		if _, ok := value.AsString(); !ok {
			return failf(def.Name, "expected string, got %s", value.Kind())
		}

	case models.FieldTypeSelect:
		chosen, ok := value.AsString()
		if !ok {
			return failf(def.Name, "expected string, got %s", value.Kind())
		}
		if !contains(def.Options.Values, chosen) {
			return failf(def.Name, "value %q is not in the allowed set", chosen)
		}

	case models.FieldTypeTags:
		if _, ok := value.AsStringList(); !ok {
			return failf(def.Name, "expected string list, got %s", value.Kind())
		}

	case models.FieldTypeInt:
		number, ok := value.AsInt()
		if !ok {
			return failf(def.Name, "expected int, got %s", value.Kind())
		}
		return checkBounds(def, float64(number))

	case models.FieldTypeFloat:
		number, ok := value.AsFloat()
		if !ok {
			return failf(def.Name, "expected float, got %s", value.Kind())
		}
		return checkBounds(def, number)

	case models.FieldTypeBool:
		if _, ok := value.AsBool(); !ok {
			return failf(def.Name, "expected bool, got %s", value.Kind())
		}

	default:
		return failf(def.Name, "unknown field type %q", def.Type)
	}

	return nil
}

func checkBounds(def models.FieldDef, number float64) error {
	if min := def.Options.Min; min != nil && number < *min {
		return failf(def.Name, "value %v is below the minimum %v", number, *min)
	}
	if max := def.Options.Max; max != nil && number > *max {
		return failf(def.Name, "value %v is above the maximum %v", number, *max)
	}
	return nil
}

func contains(set []string, s string) bool {
	for _, item := range set {
		if item == s {
			return true
		}
	}
	return false
}
