// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"context"

	"github.com/spacenote/spacenote/internal/service"
	"github.com/spacenote/spacenote/models"
)

// Hand-written function mocks for the service interfaces. Unset methods
// return zero values, so each test only fills in what it exercises.

type mockAuthService struct {
	loginFn   func(ctx context.Context, username, token string) (models.Token, error)
	resolveFn func(ctx context.Context, credential string) (models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, token string) (models.Token, error) {
	if m.loginFn == nil {
		return models.Token{}, nil
	}
	return m.loginFn(ctx, username, token)
}

func (m *mockAuthService) Resolve(ctx context.Context, credential string) (models.User, error) {
	if m.resolveFn == nil {
		return models.User{}, nil
	}
	return m.resolveFn(ctx, credential)
}

type mockUserService struct {
	createUserFn func(ctx context.Context, actor, username string) (models.User, error)
	deleteUserFn func(ctx context.Context, actor, username string) error
	listUsersFn  func(ctx context.Context, actor string) ([]models.User, error)
	getUserFn    func(username string) (models.User, bool)
}

func (m *mockUserService) CreateUser(ctx context.Context, actor, username string) (models.User, error) {
	if m.createUserFn == nil {
		return models.User{}, nil
	}
	return m.createUserFn(ctx, actor, username)
}

func (m *mockUserService) DeleteUser(ctx context.Context, actor, username string) error {
	if m.deleteUserFn == nil {
		return nil
	}
	return m.deleteUserFn(ctx, actor, username)
}

func (m *mockUserService) ListUsers(ctx context.Context, actor string) ([]models.User, error) {
	if m.listUsersFn == nil {
		return nil, nil
	}
	return m.listUsersFn(ctx, actor)
}

func (m *mockUserService) GetUser(username string) (models.User, bool) {
	if m.getUserFn == nil {
		return models.User{}, false
	}
	return m.getUserFn(username)
}

func (m *mockUserService) GetUserByToken(string) (models.User, bool) { return models.User{}, false }
func (m *mockUserService) EnsureAdmin(context.Context) (models.User, error) {
	return models.User{}, nil
}
func (m *mockUserService) RefreshCache(context.Context) error { return nil }

type mockSpaceService struct {
	createSpaceFn func(ctx context.Context, actor string, space models.Space) (models.Space, error)
	addMemberFn   func(ctx context.Context, actor, slug, username string) (models.Space, error)
	addFieldFn    func(ctx context.Context, actor, slug string, def models.FieldDef) (models.Space, error)
	updateFieldFn func(ctx context.Context, actor, slug string, def models.FieldDef) (models.Space, error)
	removeFieldFn func(ctx context.Context, actor, slug, name string) (models.Space, error)
	listSpacesFn  func(ctx context.Context, actor string) ([]models.Space, error)
}

func (m *mockSpaceService) CreateSpace(ctx context.Context, actor string, space models.Space) (models.Space, error) {
	if m.createSpaceFn == nil {
		return models.Space{}, nil
	}
	return m.createSpaceFn(ctx, actor, space)
}

func (m *mockSpaceService) AddMember(ctx context.Context, actor, slug, username string) (models.Space, error) {
	if m.addMemberFn == nil {
		return models.Space{}, nil
	}
	return m.addMemberFn(ctx, actor, slug, username)
}

func (m *mockSpaceService) AddField(ctx context.Context, actor, slug string, def models.FieldDef) (models.Space, error) {
	if m.addFieldFn == nil {
		return models.Space{}, nil
	}
	return m.addFieldFn(ctx, actor, slug, def)
}

func (m *mockSpaceService) UpdateField(ctx context.Context, actor, slug string, def models.FieldDef) (models.Space, error) {
	if m.updateFieldFn == nil {
		return models.Space{}, nil
	}
	return m.updateFieldFn(ctx, actor, slug, def)
}

func (m *mockSpaceService) RemoveField(ctx context.Context, actor, slug, name string) (models.Space, error) {
	if m.removeFieldFn == nil {
		return models.Space{}, nil
	}
	return m.removeFieldFn(ctx, actor, slug, name)
}

func (m *mockSpaceService) ListSpaces(ctx context.Context, actor string) ([]models.Space, error) {
	if m.listSpacesFn == nil {
		return nil, nil
	}
	return m.listSpacesFn(ctx, actor)
}

func (m *mockSpaceService) GetSpace(string) (models.Space, bool) { return models.Space{}, false }
func (m *mockSpaceService) EnsureMember(string, string) (models.Space, error) {
	return models.Space{}, nil
}
func (m *mockSpaceService) RefreshCache(context.Context) error { return nil }

type mockNoteService struct {
	createNoteFn       func(ctx context.Context, actor, slug string, incoming models.FieldMap) (models.Note, error)
	getNoteFn          func(ctx context.Context, actor, slug string, number int64) (models.Note, error)
	listNotesFn        func(ctx context.Context, actor, slug string, limit, offset int) (models.PaginationResult[models.Note], error)
	updateNoteFieldsFn func(ctx context.Context, actor, slug string, number int64, incoming models.FieldMap) (models.Note, error)
}

func (m *mockNoteService) CreateNote(ctx context.Context, actor, slug string, incoming models.FieldMap) (models.Note, error) {
	if m.createNoteFn == nil {
		return models.Note{}, nil
	}
	return m.createNoteFn(ctx, actor, slug, incoming)
}

func (m *mockNoteService) GetNote(ctx context.Context, actor, slug string, number int64) (models.Note, error) {
	if m.getNoteFn == nil {
		return models.Note{}, nil
	}
	return m.getNoteFn(ctx, actor, slug, number)
}

func (m *mockNoteService) ListNotes(ctx context.Context, actor, slug string, limit, offset int) (models.PaginationResult[models.Note], error) {
	if m.listNotesFn == nil {
		return models.PaginationResult[models.Note]{}, nil
	}
	return m.listNotesFn(ctx, actor, slug, limit, offset)
}

func (m *mockNoteService) UpdateNoteFields(ctx context.Context, actor, slug string, number int64, incoming models.FieldMap) (models.Note, error) {
	if m.updateNoteFieldsFn == nil {
		return models.Note{}, nil
	}
	return m.updateNoteFieldsFn(ctx, actor, slug, number, incoming)
}

type mockCommentService struct {
	createCommentFn func(ctx context.Context, actor, slug string, noteNumber int64, content string) (models.Comment, error)
	listCommentsFn  func(ctx context.Context, actor, slug string, noteNumber int64, limit, offset int) (models.PaginationResult[models.Comment], error)
}

func (m *mockCommentService) CreateComment(ctx context.Context, actor, slug string, noteNumber int64, content string) (models.Comment, error) {
	if m.createCommentFn == nil {
		return models.Comment{}, nil
	}
	return m.createCommentFn(ctx, actor, slug, noteNumber, content)
}

func (m *mockCommentService) ListComments(ctx context.Context, actor, slug string, noteNumber int64, limit, offset int) (models.PaginationResult[models.Comment], error) {
	if m.listCommentsFn == nil {
		return models.PaginationResult[models.Comment]{}, nil
	}
	return m.listCommentsFn(ctx, actor, slug, noteNumber, limit, offset)
}

var (
	_ service.AuthService    = (*mockAuthService)(nil)
	_ service.UserService    = (*mockUserService)(nil)
	_ service.SpaceService   = (*mockSpaceService)(nil)
	_ service.NoteService    = (*mockNoteService)(nil)
	_ service.CommentService = (*mockCommentService)(nil)
)
