// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package service

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacenote/spacenote/internal/fields"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/store"
	"github.com/spacenote/spacenote/models"
)

func newTestNoteService(t *testing.T) NoteService {
	t.Helper()

	ctx := context.Background()
	users := NewUserService(newFakeUserRepo(), logger.Nop())
	spaces := NewSpaceService(newFakeSpaceRepo(), users, logger.Nop())
	notes := NewNoteService(newFakeNoteRepo(), newFakeCounterRepo(), spaces, logger.Nop())

	_, err := users.CreateUser(ctx, models.AdminUsername, "alice")
	require.NoError(t, err)

	_, err = spaces.CreateSpace(ctx, models.AdminUsername, models.Space{
		Slug:    "tasks",
		Title:   "Tasks",
		Members: []string{"alice"},
		Fields: models.Schema{
			{Name: "title", Type: models.FieldTypeString, Required: true},
			{
				Name:    "status",
				Type:    models.FieldTypeSelect,
				Options: models.FieldOptions{Values: []string{"open", "done"}},
				Default: valuePtr(models.String("open")),
			},
		},
	})
	require.NoError(t, err)

	return notes
}

func valuePtr(v models.Value) *models.Value {
	return &v
}

func TestNoteService_CreateNote(t *testing.T) {
	notes := newTestNoteService(t)
	ctx := context.Background()

	created, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{
		"title": models.String("fix roof"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.Number)
	assert.Equal(t, "alice", created.AuthorUsername)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, models.String("open"), created.Fields["status"])

	second, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{
		"title": models.String("clean gutters"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Number)
}

func TestNoteService_CreateNote_Rejections(t *testing.T) {
	notes := newTestNoteService(t)
	ctx := context.Background()

	// required field missing
	_, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fields.ErrValidation)

	// value outside the select options
	_, err = notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{
		"title":  models.String("x"),
		"status": models.String("abandoned"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, fields.ErrValidation)

	// non-member actor
	_, err = notes.CreateNote(ctx, "stranger", "tasks", models.FieldMap{
		"title": models.String("x"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSpaceMember)

	// unknown space
	_, err = notes.CreateNote(ctx, "alice", "ghost", models.FieldMap{
		"title": models.String("x"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrSpaceNotFound)
}

func TestNoteService_ConcurrentCreates_DistinctNumbers(t *testing.T) {
	notes := newTestNoteService(t)
	ctx := context.Background()

	const writers = 32

	numbers := make([]int64, writers)
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			note, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{
				"title": models.String("concurrent"),
			})
			assert.NoError(t, err)
			numbers[i] = note.Number
		}(i)
	}
	wg.Wait()

	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	for i, number := range numbers {
		assert.Equal(t, int64(i+1), number)
	}
}

// A stored note reads back with its fields payload untouched no matter how
// the space schema evolves around it.
func TestNoteService_SchemaEvolutionLeavesNotesUntouched(t *testing.T) {
	ctx := context.Background()
	users := NewUserService(newFakeUserRepo(), logger.Nop())
	spaces := NewSpaceService(newFakeSpaceRepo(), users, logger.Nop())
	notes := NewNoteService(newFakeNoteRepo(), newFakeCounterRepo(), spaces, logger.Nop())

	_, err := users.CreateUser(ctx, models.AdminUsername, "alice")
	require.NoError(t, err)

	_, err = spaces.CreateSpace(ctx, models.AdminUsername, models.Space{
		Slug:    "tasks",
		Title:   "Tasks",
		Members: []string{"alice"},
		Fields: models.Schema{
			{Name: "title", Type: models.FieldTypeString, Required: true},
			{Name: "priority", Type: models.FieldTypeInt},
		},
	})
	require.NoError(t, err)

	created, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{
		"title":    models.String("fix roof"),
		"priority": models.Int(3),
	})
	require.NoError(t, err)

	_, err = spaces.RemoveField(ctx, models.AdminUsername, "tasks", "priority")
	require.NoError(t, err)
	_, err = spaces.UpdateField(ctx, models.AdminUsername, "tasks", models.FieldDef{
		Name: "title",
		Type: models.FieldTypeString,
	})
	require.NoError(t, err)
	_, err = spaces.AddField(ctx, models.AdminUsername, "tasks", models.FieldDef{
		Name:     "status",
		Type:     models.FieldTypeSelect,
		Required: true,
		Options:  models.FieldOptions{Values: []string{"open", "done"}},
		Default:  valuePtr(models.String("open")),
	})
	require.NoError(t, err)

	got, err := notes.GetNote(ctx, "alice", "tasks", created.Number)
	require.NoError(t, err)

	assert.Equal(t, created.Fields, got.Fields)
	assert.Equal(t, models.Int(3), got.Fields["priority"])
	_, hasStatus := got.Fields["status"]
	assert.False(t, hasStatus, "schema additions never backfill stored notes")
}

func TestNoteService_UpdateNoteFields(t *testing.T) {
	notes := newTestNoteService(t)
	ctx := context.Background()

	created, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{
		"title":  models.String("fix roof"),
		"legacy": models.Int(42),
	})
	require.NoError(t, err)

	updated, err := notes.UpdateNoteFields(ctx, "alice", "tasks", created.Number, models.FieldMap{
		"status": models.String("done"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.String("done"), updated.Fields["status"])
	assert.Equal(t, models.String("fix roof"), updated.Fields["title"])
	// undeclared values survive partial updates
	assert.Equal(t, models.Int(42), updated.Fields["legacy"])

	got, err := notes.GetNote(ctx, "alice", "tasks", created.Number)
	require.NoError(t, err)
	assert.Equal(t, models.String("done"), got.Fields["status"])
}

func TestNoteService_UpdateNoteFields_Rejections(t *testing.T) {
	notes := newTestNoteService(t)
	ctx := context.Background()

	created, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{
		"title": models.String("fix roof"),
	})
	require.NoError(t, err)

	// empty update
	_, err = notes.UpdateNoteFields(ctx, "alice", "tasks", created.Number, models.FieldMap{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	// nulling a required field
	_, err = notes.UpdateNoteFields(ctx, "alice", "tasks", created.Number, models.FieldMap{
		"title": models.Null(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, fields.ErrValidation)

	// unknown note
	_, err = notes.UpdateNoteFields(ctx, "alice", "tasks", 999, models.FieldMap{
		"status": models.String("done"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_ListNotes(t *testing.T) {
	notes := newTestNoteService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{
			"title": models.String("note"),
		})
		require.NoError(t, err)
	}

	page, err := notes.ListNotes(ctx, "alice", "tasks", 2, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Items, 2)
	// newest first
	assert.Equal(t, int64(3), page.Items[0].Number)
	assert.Equal(t, int64(2), page.Items[1].Number)

	next, err := notes.ListNotes(ctx, "alice", "tasks", 2, 2)
	require.NoError(t, err)
	require.Len(t, next.Items, 1)
	assert.Equal(t, int64(1), next.Items[0].Number)
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", limit: 0, offset: 0, wantLimit: 50, wantOffset: 0},
		{name: "negative limit", limit: -5, offset: 0, wantLimit: 50, wantOffset: 0},
		{name: "over cap", limit: 500, offset: 10, wantLimit: 100, wantOffset: 10},
		{name: "negative offset", limit: 20, offset: -1, wantLimit: 20, wantOffset: 0},
		{name: "in range", limit: 25, offset: 75, wantLimit: 25, wantOffset: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := clampPage(tt.limit, tt.offset, defaultListLimit)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
