// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/store"
	"github.com/spacenote/spacenote/models"
)

// commentService is the concrete implementation of CommentService.
// Comments are numbered sequentially within their note via the counter
// repository, mirroring how notes are numbered within their space.
type commentService struct {
	commentRepository store.CommentRepository
	counterRepository store.CounterRepository
	noteRepository    store.NoteRepository
	spaces            SpaceService
	logger            *logger.Logger
}

// NewCommentService constructs a CommentService over the given repositories.
func NewCommentService(commentRepository store.CommentRepository, counterRepository store.CounterRepository, noteRepository store.NoteRepository, spaces SpaceService, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		counterRepository: counterRepository,
		noteRepository:    noteRepository,
		spaces:            spaces,
		logger:            logger,
	}
}

// CreateComment adds a comment to an existing note. The content must be
// non-empty and the note must exist in the space.
func (s *commentService) CreateComment(ctx context.Context, actor, slug string, noteNumber int64, content string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if _, err := s.spaces.EnsureMember(slug, actor); err != nil {
		return models.Comment{}, err
	}
	if content == "" {
		log.Error().Str("slug", slug).Int64("note", noteNumber).Msg("empty comment content provided")
		return models.Comment{}, ErrInvalidDataProvided
	}

	if _, err := s.noteRepository.GetNote(ctx, slug, noteNumber); err != nil {
		return models.Comment{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	number, err := s.counterRepository.NextCommentNumber(ctx, slug, noteNumber)
	if err != nil {
		log.Err(err).Str("slug", slug).Int64("note", noteNumber).Msg("error claiming next comment number")
		return models.Comment{}, fmt.Errorf("error claiming next comment number: %w", err)
	}

	comment := models.Comment{
		SpaceSlug:      slug,
		NoteNumber:     noteNumber,
		Number:         number,
		AuthorUsername: actor,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Str("slug", slug).Int64("note", noteNumber).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return created, nil
}

// ListComments returns a page of comments on a note ordered by number.
// An unset limit pages at maxListLimit, an unset offset starts at zero.
func (s *commentService) ListComments(ctx context.Context, actor, slug string, noteNumber int64, limit, offset int) (models.PaginationResult[models.Comment], error) {
	if _, err := s.spaces.EnsureMember(slug, actor); err != nil {
		return models.PaginationResult[models.Comment]{}, err
	}

	if _, err := s.noteRepository.GetNote(ctx, slug, noteNumber); err != nil {
		return models.PaginationResult[models.Comment]{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	limit, offset = clampPage(limit, offset, defaultCommentListLimit)

	page, err := s.commentRepository.ListComments(ctx, slug, noteNumber, limit, offset)
	if err != nil {
		return models.PaginationResult[models.Comment]{}, fmt.Errorf("comment listing ended with error: %w", err)
	}

	return page, nil
}
