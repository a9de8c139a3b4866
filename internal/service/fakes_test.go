// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package service

import (
	"context"
	"sync"

	"github.com/spacenote/spacenote/internal/store"
	"github.com/spacenote/spacenote/models"
)

// In-memory repository fakes. They enforce the same uniqueness and
// atomicity guarantees the real backends provide, so service tests exercise
// genuine concurrency behaviour.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Username]; exists {
		return models.User{}, store.ErrUserAlreadyExists
	}
	f.users[user.Username] = user
	return user, nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[username]; !exists {
		return store.ErrUserNotFound
	}
	delete(f.users, username)
	return nil
}

func (f *fakeUserRepo) ListUsers(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeSpaceRepo struct {
	mu     sync.Mutex
	spaces map[string]models.Space
}

func newFakeSpaceRepo() *fakeSpaceRepo {
	return &fakeSpaceRepo{spaces: make(map[string]models.Space)}
}

func (f *fakeSpaceRepo) CreateSpace(_ context.Context, space models.Space) (models.Space, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.spaces[space.Slug]; exists {
		return models.Space{}, store.ErrSpaceAlreadyExists
	}
	f.spaces[space.Slug] = space
	return space, nil
}

func (f *fakeSpaceRepo) UpdateMembers(_ context.Context, slug string, members []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	space, exists := f.spaces[slug]
	if !exists {
		return store.ErrSpaceNotFound
	}
	space.Members = members
	f.spaces[slug] = space
	return nil
}

func (f *fakeSpaceRepo) UpdateFields(_ context.Context, slug string, schema models.Schema) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	space, exists := f.spaces[slug]
	if !exists {
		return store.ErrSpaceNotFound
	}
	space.Fields = schema
	f.spaces[slug] = space
	return nil
}

func (f *fakeSpaceRepo) ListSpaces(_ context.Context) ([]models.Space, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Space, 0, len(f.spaces))
	for _, s := range f.spaces {
		out = append(out, s)
	}
	return out, nil
}

type noteKey struct {
	slug   string
	number int64
}

type fakeNoteRepo struct {
	mu    sync.Mutex
	notes map[noteKey]models.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[noteKey]models.Note)}
}

func (f *fakeNoteRepo) CreateNote(_ context.Context, note models.Note) (models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := noteKey{note.SpaceSlug, note.Number}
	if _, exists := f.notes[key]; exists {
		return models.Note{}, store.ErrNoteAlreadyExists
	}
	f.notes[key] = note
	return note, nil
}

func (f *fakeNoteRepo) GetNote(_ context.Context, slug string, number int64) (models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, exists := f.notes[noteKey{slug, number}]
	if !exists {
		return models.Note{}, store.ErrNoteNotFound
	}
	return note, nil
}

func (f *fakeNoteRepo) UpdateNoteFields(_ context.Context, slug string, number int64, fieldsPayload models.FieldMap) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := noteKey{slug, number}
	note, exists := f.notes[key]
	if !exists {
		return store.ErrNoteNotFound
	}
	note.Fields = fieldsPayload
	f.notes[key] = note
	return nil
}

func (f *fakeNoteRepo) ListNotes(_ context.Context, slug string, limit, offset int) (models.PaginationResult[models.Note], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []models.Note
	for _, note := range f.notes {
		if note.SpaceSlug == slug {
			all = append(all, note)
		}
	}
	// newest first, matching the real backends
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[j].Number > all[i].Number {
				all[i], all[j] = all[j], all[i]
			}
		}
	}

	page := models.PaginationResult[models.Note]{
		Total:  int64(len(all)),
		Limit:  limit,
		Offset: offset,
		Items:  []models.Note{},
	}
	for i := offset; i < len(all) && len(page.Items) < limit; i++ {
		page.Items = append(page.Items, all[i])
	}
	return page, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, comment models.Comment) (models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments = append(f.comments, comment)
	return comment, nil
}

func (f *fakeCommentRepo) ListComments(_ context.Context, slug string, noteNumber int64, limit, offset int) (models.PaginationResult[models.Comment], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []models.Comment
	for _, c := range f.comments {
		if c.SpaceSlug == slug && c.NoteNumber == noteNumber {
			all = append(all, c)
		}
	}

	page := models.PaginationResult[models.Comment]{
		Total:  int64(len(all)),
		Limit:  limit,
		Offset: offset,
		Items:  []models.Comment{},
	}
	for i := offset; i < len(all) && len(page.Items) < limit; i++ {
		page.Items = append(page.Items, all[i])
	}
	return page, nil
}

type commentCounterKey struct {
	slug       string
	noteNumber int64
}

type fakeCounterRepo struct {
	mu          sync.Mutex
	noteSeqs    map[string]int64
	commentSeqs map[commentCounterKey]int64
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{
		noteSeqs:    make(map[string]int64),
		commentSeqs: make(map[commentCounterKey]int64),
	}
}

func (f *fakeCounterRepo) NextNoteNumber(_ context.Context, slug string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.noteSeqs[slug]++
	return f.noteSeqs[slug], nil
}

func (f *fakeCounterRepo) NextCommentNumber(_ context.Context, slug string, noteNumber int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := commentCounterKey{slug, noteNumber}
	f.commentSeqs[key]++
	return f.commentSeqs[key], nil
}

// compile-time checks that the fakes satisfy the store interfaces
var (
	_ store.UserRepository    = (*fakeUserRepo)(nil)
	_ store.SpaceRepository   = (*fakeSpaceRepo)(nil)
	_ store.NoteRepository    = (*fakeNoteRepo)(nil)
	_ store.CommentRepository = (*fakeCommentRepo)(nil)
	_ store.CounterRepository = (*fakeCounterRepo)(nil)
)
