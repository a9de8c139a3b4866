// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

// Package importer loads a declarative snapshot of users, spaces, notes, and
// comments from a JSON or YAML file and replays it against a running server
// through the public HTTP API. It is used to seed fresh deployments and to
// move data between the two storage engines.
package importer

import (
	"fmt"

	"github.com/spacenote/spacenote/models"
)

// Snapshot is the top-level document an import file decodes into.
type Snapshot struct {
	Users  []SnapshotUser  `json:"users" yaml:"users"`
	Spaces []SnapshotSpace `json:"spaces" yaml:"spaces"`
}

type SnapshotUser struct {
	Username string `json:"username" yaml:"username"`
}

type SnapshotSpace struct {
	Slug    string          `json:"slug" yaml:"slug"`
	Title   string          `json:"title" yaml:"title"`
	Members []string        `json:"members" yaml:"members"`
	Fields  []SnapshotField `json:"fields" yaml:"fields"`
	Notes   []SnapshotNote  `json:"notes" yaml:"notes"`
}

// SnapshotField mirrors models.FieldDef with a plainly-typed default so the
// same struct decodes from both JSON and YAML.
type SnapshotField struct {
	Name     string               `json:"name" yaml:"name"`
	Type     string               `json:"type" yaml:"type"`
	Required bool                 `json:"required" yaml:"required"`
	Options  *models.FieldOptions `json:"options,omitempty" yaml:"options,omitempty"`
	Default  any                  `json:"default,omitempty" yaml:"default,omitempty"`
}

type SnapshotNote struct {
	Fields   map[string]any    `json:"fields" yaml:"fields"`
	Comments []SnapshotComment `json:"comments,omitempty" yaml:"comments,omitempty"`
}

type SnapshotComment struct {
	Content string `json:"content" yaml:"content"`
}

// FieldDef converts the plainly-typed snapshot definition into the domain
// representation used by the API.
func (f SnapshotField) FieldDef() (models.FieldDef, error) {
	def := models.FieldDef{
		Name:     f.Name,
		Type:     models.FieldType(f.Type),
		Required: f.Required,
	}
	if f.Options != nil {
		def.Options = *f.Options
	}
	if f.Default != nil {
		value, err := models.FromAny(f.Default)
		if err != nil {
			return models.FieldDef{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		def.Default = &value
	}
	return def, nil
}

// FieldMap converts the note's plainly-typed field values into the domain
// representation used by the API.
func (n SnapshotNote) FieldMap() (models.FieldMap, error) {
	fields := make(models.FieldMap, len(n.Fields))
	for name, raw := range n.Fields {
		value, err := models.FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		fields[name] = value
	}
	return fields, nil
}
