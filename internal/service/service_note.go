// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spacenote/spacenote/internal/fields"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/store"
	"github.com/spacenote/spacenote/models"
)

// List queries clamp the page size to maxListLimit. A zero limit falls back
// to the per-resource default: note listings page at 50, comment listings at
// the full 100.
const (
	defaultListLimit        = 50
	defaultCommentListLimit = 100
	maxListLimit            = 100
)

// noteService is the concrete implementation of NoteService.
//
// Note creation and update run write-time validation against the space schema
// cached by SpaceService; the validated field set is then persisted verbatim.
// Numbers come from the counter repository, so two concurrent creates in the
// same space never collide.
type noteService struct {
	noteRepository    store.NoteRepository
	counterRepository store.CounterRepository
	spaces            SpaceService
	logger            *logger.Logger
}

// NewNoteService constructs a NoteService over the given repositories.
func NewNoteService(noteRepository store.NoteRepository, counterRepository store.CounterRepository, spaces SpaceService, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository:    noteRepository,
		counterRepository: counterRepository,
		spaces:            spaces,
		logger:            logger,
	}
}

// CreateNote validates the incoming field set against the space schema,
// claims the next note number, and persists the note.
//
// Validation injects declared defaults for absent fields and rejects the
// write with fields.ErrValidation when a required field is missing or a value
// does not fit its definition. Fields not declared in the schema are stored
// as provided.
func (s *noteService) CreateNote(ctx context.Context, actor, slug string, incoming models.FieldMap) (models.Note, error) {
	log := logger.FromContext(ctx)

	space, err := s.spaces.EnsureMember(slug, actor)
	if err != nil {
		return models.Note{}, err
	}

	validated, err := fields.ValidateCreate(space.Fields, incoming)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("note rejected by schema validation")
		return models.Note{}, err
	}

	number, err := s.counterRepository.NextNoteNumber(ctx, slug)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("error claiming next note number")
		return models.Note{}, fmt.Errorf("error claiming next note number: %w", err)
	}

	note := models.Note{
		SpaceSlug:      slug,
		Number:         number,
		AuthorUsername: actor,
		CreatedAt:      time.Now().UTC(),
		Fields:         validated,
	}

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("slug", slug).Int64("number", number).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// GetNote returns one note by its number within the space.
func (s *noteService) GetNote(ctx context.Context, actor, slug string, number int64) (models.Note, error) {
	if _, err := s.spaces.EnsureMember(slug, actor); err != nil {
		return models.Note{}, err
	}

	note, err := s.noteRepository.GetNote(ctx, slug, number)
	if err != nil {
		return models.Note{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	return note, nil
}

// ListNotes returns a page of notes from the space ordered by number. The
// limit is clamped to [1, 100] with a default of 50; a negative offset is
// treated as zero.
func (s *noteService) ListNotes(ctx context.Context, actor, slug string, limit, offset int) (models.PaginationResult[models.Note], error) {
	if _, err := s.spaces.EnsureMember(slug, actor); err != nil {
		return models.PaginationResult[models.Note]{}, err
	}

	limit, offset = clampPage(limit, offset, defaultListLimit)

	page, err := s.noteRepository.ListNotes(ctx, slug, limit, offset)
	if err != nil {
		return models.PaginationResult[models.Note]{}, fmt.Errorf("note listing ended with error: %w", err)
	}

	return page, nil
}

// UpdateNoteFields applies a partial field update to an existing note.
//
// Incoming values are merged onto the stored field set: only the named fields
// change, and only the incoming values are validated against the current
// schema. Stored values written under an older schema, including fields no
// longer declared, survive the update untouched unless explicitly rewritten.
func (s *noteService) UpdateNoteFields(ctx context.Context, actor, slug string, number int64, incoming models.FieldMap) (models.Note, error) {
	log := logger.FromContext(ctx)

	space, err := s.spaces.EnsureMember(slug, actor)
	if err != nil {
		return models.Note{}, err
	}
	if len(incoming) == 0 {
		return models.Note{}, ErrInvalidDataProvided
	}

	note, err := s.noteRepository.GetNote(ctx, slug, number)
	if err != nil {
		return models.Note{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	merged, err := fields.ValidateUpdate(space.Fields, note.Fields, incoming)
	if err != nil {
		log.Err(err).Str("slug", slug).Int64("number", number).Msg("note update rejected by schema validation")
		return models.Note{}, err
	}

	if err := s.noteRepository.UpdateNoteFields(ctx, slug, number, merged); err != nil {
		log.Err(err).Str("slug", slug).Int64("number", number).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	note.Fields = merged

	return note, nil
}

func clampPage(limit, offset, fallback int) (int, int) {
	switch {
	case limit <= 0:
		limit = fallback
	case limit > maxListLimit:
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
