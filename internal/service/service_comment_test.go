// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/store"
	"github.com/spacenote/spacenote/models"
)

func newTestCommentService(t *testing.T) (CommentService, NoteService) {
	t.Helper()

	ctx := context.Background()
	users := NewUserService(newFakeUserRepo(), logger.Nop())
	spaces := NewSpaceService(newFakeSpaceRepo(), users, logger.Nop())
	noteRepo := newFakeNoteRepo()
	counterRepo := newFakeCounterRepo()
	notes := NewNoteService(noteRepo, counterRepo, spaces, logger.Nop())
	comments := NewCommentService(newFakeCommentRepo(), counterRepo, noteRepo, spaces, logger.Nop())

	_, err := users.CreateUser(ctx, models.AdminUsername, "alice")
	require.NoError(t, err)

	_, err = spaces.CreateSpace(ctx, models.AdminUsername, models.Space{
		Slug: "tasks", Title: "Tasks", Members: []string{"alice"},
	})
	require.NoError(t, err)

	return comments, notes
}

func TestCommentService_CreateComment(t *testing.T) {
	comments, notes := newTestCommentService(t)
	ctx := context.Background()

	note, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{})
	require.NoError(t, err)

	first, err := comments.CreateComment(ctx, "alice", "tasks", note.Number, "looks done to me")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Number)
	assert.Equal(t, "alice", first.AuthorUsername)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := comments.CreateComment(ctx, "alice", "tasks", note.Number, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Number)
}

func TestCommentService_NumberingPerNote(t *testing.T) {
	comments, notes := newTestCommentService(t)
	ctx := context.Background()

	first, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{})
	require.NoError(t, err)
	second, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{})
	require.NoError(t, err)

	c1, err := comments.CreateComment(ctx, "alice", "tasks", first.Number, "on note one")
	require.NoError(t, err)
	c2, err := comments.CreateComment(ctx, "alice", "tasks", second.Number, "on note two")
	require.NoError(t, err)

	// each note carries its own sequence
	assert.Equal(t, int64(1), c1.Number)
	assert.Equal(t, int64(1), c2.Number)
}

func TestCommentService_CreateComment_Rejections(t *testing.T) {
	comments, notes := newTestCommentService(t)
	ctx := context.Background()

	note, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{})
	require.NoError(t, err)

	_, err = comments.CreateComment(ctx, "alice", "tasks", note.Number, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = comments.CreateComment(ctx, "alice", "tasks", 999, "orphan")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)

	_, err = comments.CreateComment(ctx, "stranger", "tasks", note.Number, "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSpaceMember)
}

func TestCommentService_ListComments(t *testing.T) {
	comments, notes := newTestCommentService(t)
	ctx := context.Background()

	note, err := notes.CreateNote(ctx, "alice", "tasks", models.FieldMap{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := comments.CreateComment(ctx, "alice", "tasks", note.Number, "comment")
		require.NoError(t, err)
	}

	page, err := comments.ListComments(ctx, "alice", "tasks", note.Number, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(1), page.Items[0].Number)
	assert.Equal(t, int64(2), page.Items[1].Number)

	_, err = comments.ListComments(ctx, "alice", "tasks", 999, 10, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestCommentPageDefaults(t *testing.T) {
	// comment listings page at the full cap when no limit is given
	limit, offset := clampPage(0, 0, defaultCommentListLimit)
	assert.Equal(t, 100, limit)
	assert.Equal(t, 0, offset)
}
