// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package models

import "time"

// FieldType is the declared type tag of a field definition. The enumeration
// is fixed; schemas referencing any other tag are rejected.
type FieldType string

const (
	// FieldTypeString is free-form text.
	FieldTypeString FieldType = "string"

	// FieldTypeSelect is a single choice from the definition's Values option.
	FieldTypeSelect FieldType = "select"

	// FieldTypeTags is a free-form list of string tags.
	FieldTypeTags FieldType = "tags"

	// FieldTypeUser is a reference to a user by username.
	FieldTypeUser FieldType = "user"

	// FieldTypeInt is an integer number.
	FieldTypeInt FieldType = "int"

	// FieldTypeFloat is a floating-point number. Integer values are accepted
	// where a float is declared.
	FieldTypeFloat FieldType = "float"

	// FieldTypeBool is a boolean flag.
	FieldTypeBool FieldType = "bool"
)

// Known reports whether t is one of the supported field type tags.
func (t FieldType) Known() bool {
	switch t {
	case FieldTypeString, FieldTypeSelect, FieldTypeTags, FieldTypeUser,
		FieldTypeInt, FieldTypeFloat, FieldTypeBool:
		return true
	default:
		return false
	}
}

// FieldOptions carries the type-specific constraints of a field definition.
type FieldOptions struct {
	// Values is the allowed value set for select fields.
	Values []string `json:"values,omitempty" bson:"values,omitempty"`

	// Min is the inclusive lower bound for numeric fields.
	Min *float64 `json:"min,omitempty" bson:"min,omitempty"`

	// Max is the inclusive upper bound for numeric fields.
	Max *float64 `json:"max,omitempty" bson:"max,omitempty"`
}

// FieldDef is a single field declaration inside a space's schema.
type FieldDef struct {
	// Name identifies the field. Unique within the owning space's schema.
	Name string `json:"name" bson:"name"`

	// Type is the declared type tag.
	Type FieldType `json:"type" bson:"type"`

	// Required marks the field as mandatory on note creation. Notes written
	// before the field became required are never retroactively invalidated.
	Required bool `json:"required" bson:"required"`

	// Options holds the type-specific constraints.
	Options FieldOptions `json:"options,omitempty" bson:"options,omitempty"`

	// Default, when non-nil, is substituted for the field on note creation
	// if the incoming payload omits it.
	Default *Value `json:"default,omitempty" bson:"default,omitempty"`
}

// Schema is the ordered collection of field definitions currently in force
// for a space. Mutating a schema never touches stored notes; only future
// writes are validated against it.
type Schema []FieldDef

// Field returns the definition with the given name, or ok=false.
func (s Schema) Field(name string) (FieldDef, bool) {
	for _, def := range s {
		if def.Name == name {
			return def, true
		}
	}
	return FieldDef{}, false
}

// Clone returns an independent copy of the schema, so evolution operations
// never alias the input's backing array.
func (s Schema) Clone() Schema {
	if s == nil {
		return nil
	}
	cp := make(Schema, len(s))
	copy(cp, s)
	return cp
}

// Space is a workspace boundary. It owns a field schema and its own note
// numbering sequence, and restricts note access to its members.
// Natural key: slug.
type Space struct {
	Slug      string    `json:"slug" bson:"slug"`
	Title     string    `json:"title" bson:"title"`
	Members   []string  `json:"members" bson:"members"`
	Fields    Schema    `json:"fields" bson:"fields"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// HasMember reports whether username is a member of the space.
func (s Space) HasMember(username string) bool {
	for _, member := range s.Members {
		if member == username {
			return true
		}
	}
	return false
}
