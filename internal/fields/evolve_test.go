// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacenote/spacenote/models"
)

func TestAddField_Appends(t *testing.T) {
	schema := models.Schema{{Name: "title", Type: models.FieldTypeString}}

	out, err := AddField(schema, models.FieldDef{Name: "priority", Type: models.FieldTypeInt})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "priority", out[1].Name)
	assert.Len(t, schema, 1, "input schema must stay untouched")
}

func TestAddField_DuplicateName(t *testing.T) {
	schema := models.Schema{{Name: "title", Type: models.FieldTypeString}}

	_, err := AddField(schema, models.FieldDef{Name: "title", Type: models.FieldTypeInt})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldExists)
}

func TestRemoveField_DropsDeclaration(t *testing.T) {
	schema := models.Schema{
		{Name: "title", Type: models.FieldTypeString},
		{Name: "priority", Type: models.FieldTypeInt},
	}

	out, err := RemoveField(schema, "title")
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "priority", out[0].Name)
	assert.Len(t, schema, 2, "input schema must stay untouched")
}

func TestRemoveField_Unknown(t *testing.T) {
	_, err := RemoveField(models.Schema{}, "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestChangeField_ReplacesInPlace(t *testing.T) {
	schema := models.Schema{
		{Name: "status", Type: models.FieldTypeSelect, Options: models.FieldOptions{Values: []string{"open"}}},
		{Name: "title", Type: models.FieldTypeString},
	}

	out, err := ChangeField(schema, models.FieldDef{
		Name:    "status",
		Type:    models.FieldTypeSelect,
		Options: models.FieldOptions{Values: []string{"open", "done"}},
	})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, []string{"open", "done"}, out[0].Options.Values)
	assert.Equal(t, []string{"open"}, schema[0].Options.Values, "input schema must stay untouched")
}

func TestChangeField_Unknown(t *testing.T) {
	_, err := ChangeField(models.Schema{}, models.FieldDef{Name: "status", Type: models.FieldTypeString})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestCheckDef(t *testing.T) {
	bad := models.Int(99)
	goodDefault := models.String("open")

	tests := []struct {
		name    string
		def     models.FieldDef
		wantErr bool
	}{
		{
			name: "plain string field",
			def:  models.FieldDef{Name: "title", Type: models.FieldTypeString},
		},
		{
			name: "select with values and valid default",
			def: models.FieldDef{
				Name:    "status",
				Type:    models.FieldTypeSelect,
				Options: models.FieldOptions{Values: []string{"open", "done"}},
				Default: &goodDefault,
			},
		},
		{
			name: "int with bounds",
			def: models.FieldDef{
				Name:    "priority",
				Type:    models.FieldTypeInt,
				Options: models.FieldOptions{Min: floatPtr(1), Max: floatPtr(5)},
			},
		},
		{
			name:    "empty name",
			def:     models.FieldDef{Name: "", Type: models.FieldTypeString},
			wantErr: true,
		},
		{
			name:    "uppercase name",
			def:     models.FieldDef{Name: "Title", Type: models.FieldTypeString},
			wantErr: true,
		},
		{
			name:    "unknown type",
			def:     models.FieldDef{Name: "blob", Type: models.FieldType("binary")},
			wantErr: true,
		},
		{
			name:    "select without values",
			def:     models.FieldDef{Name: "status", Type: models.FieldTypeSelect},
			wantErr: true,
		},
		{
			name: "min above max",
			def: models.FieldDef{
				Name:    "priority",
				Type:    models.FieldTypeInt,
				Options: models.FieldOptions{Min: floatPtr(9), Max: floatPtr(1)},
			},
			wantErr: true,
		},
		{
			name: "options on a type that takes none",
			def: models.FieldDef{
				Name:    "title",
				Type:    models.FieldTypeString,
				Options: models.FieldOptions{Values: []string{"a"}},
			},
			wantErr: true,
		},
		{
			name: "default violating the definition",
			def: models.FieldDef{
				Name:    "archived",
				Type:    models.FieldTypeBool,
				Default: &bad,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDef(tt.def)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFieldDef)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
