// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package service

import (
	"context"

	"github.com/spacenote/spacenote/models"
)

// AuthService authenticates API callers. Both credential forms are accepted:
// the static per-user API token handed out at registration, and short-lived
// JWTs issued by Login in exchange for that token.
type AuthService interface {
	Login(ctx context.Context, username, token string) (models.Token, error)
	Resolve(ctx context.Context, credential string) (models.User, error)
}

// UserService manages user accounts and keeps the full user set cached in
// memory. Lookups by username or token never touch storage.
type UserService interface {
	CreateUser(ctx context.Context, actor, username string) (models.User, error)
	DeleteUser(ctx context.Context, actor, username string) error
	ListUsers(ctx context.Context, actor string) ([]models.User, error)

	GetUser(username string) (models.User, bool)
	GetUserByToken(token string) (models.User, bool)

	EnsureAdmin(ctx context.Context) (models.User, error)
	RefreshCache(ctx context.Context) error
}

// SpaceService manages spaces and their field schemas, keeping the full space
// set cached in memory. Schema changes rewrite the space definition only;
// notes already stored in the space are never touched.
type SpaceService interface {
	CreateSpace(ctx context.Context, actor string, space models.Space) (models.Space, error)
	AddMember(ctx context.Context, actor, slug, username string) (models.Space, error)
	AddField(ctx context.Context, actor, slug string, def models.FieldDef) (models.Space, error)
	UpdateField(ctx context.Context, actor, slug string, def models.FieldDef) (models.Space, error)
	RemoveField(ctx context.Context, actor, slug, name string) (models.Space, error)
	ListSpaces(ctx context.Context, actor string) ([]models.Space, error)

	GetSpace(slug string) (models.Space, bool)
	EnsureMember(slug, username string) (models.Space, error)

	RefreshCache(ctx context.Context) error
}

// NoteService manages notes inside spaces: creation with write-time schema
// validation, sequential numbering, listing, and partial field updates.
type NoteService interface {
	CreateNote(ctx context.Context, actor, slug string, incoming models.FieldMap) (models.Note, error)
	GetNote(ctx context.Context, actor, slug string, number int64) (models.Note, error)
	ListNotes(ctx context.Context, actor, slug string, limit, offset int) (models.PaginationResult[models.Note], error)
	UpdateNoteFields(ctx context.Context, actor, slug string, number int64, incoming models.FieldMap) (models.Note, error)
}

// CommentService manages per-note comment threads.
type CommentService interface {
	CreateComment(ctx context.Context, actor, slug string, noteNumber int64, content string) (models.Comment, error)
	ListComments(ctx context.Context, actor, slug string, noteNumber int64, limit, offset int) (models.PaginationResult[models.Comment], error)
}
