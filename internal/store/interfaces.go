// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

import (
	"context"

	"github.com/spacenote/spacenote/models"
)

// UserRepository persists user accounts keyed by username.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, username string) error
	ListUsers(ctx context.Context) ([]models.User, error)
}

// SpaceRepository persists spaces keyed by slug. Member and schema updates
// replace the whole list; both are small and owned by a single cached copy
// in the service layer.
type SpaceRepository interface {
	CreateSpace(ctx context.Context, space models.Space) (models.Space, error)
	UpdateMembers(ctx context.Context, slug string, members []string) error
	UpdateFields(ctx context.Context, slug string, schema models.Schema) error
	ListSpaces(ctx context.Context) ([]models.Space, error)
}

// NoteRepository persists notes keyed by (space slug, number). Stored fields
// payloads are written and returned verbatim; the repository applies no
// schema logic.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, slug string, number int64) (models.Note, error)
	UpdateNoteFields(ctx context.Context, slug string, number int64, fieldsPayload models.FieldMap) error
	ListNotes(ctx context.Context, slug string, limit, offset int) (models.PaginationResult[models.Note], error)
}

// CommentRepository persists comments keyed by (space slug, note number,
// comment number).
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListComments(ctx context.Context, slug string, noteNumber int64, limit, offset int) (models.PaginationResult[models.Comment], error)
}

// CounterRepository hands out per-space note numbers and per-note comment
// numbers. Each call is an atomic read-modify-write: no two concurrent
// callers may observe or receive the same number.
type CounterRepository interface {
	NextNoteNumber(ctx context.Context, slug string) (int64, error)
	NextCommentNumber(ctx context.Context, slug string, noteNumber int64) (int64, error)
}
