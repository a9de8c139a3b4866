// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

import (
	"context"
	"fmt"

	"github.com/spacenote/spacenote/internal/logger"
)

// counterRepository is the PostgreSQL-backed implementation of
// [CounterRepository]. Each increment is a single upsert statement, so
// concurrent creations in the same space always receive distinct,
// monotonically increasing numbers. Numbers are unique but not guaranteed
// gap-free across failed creations.
type counterRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCounterRepository constructs a [CounterRepository] backed by the
// provided database connection.
func NewCounterRepository(db *DB, log *logger.Logger) CounterRepository {
	log.Debug().Msg("creating counter repository")
	return &counterRepository{db: db, logger: log}
}

// NextNoteNumber atomically increments and returns the note counter of the
// given space.
func (r *counterRepository) NextNoteNumber(ctx context.Context, slug string) (int64, error) {
	return r.next(ctx, nextNoteNumber, "*counterRepository.NextNoteNumber", slug)
}

// NextCommentNumber atomically increments and returns the comment counter
// of the given note.
func (r *counterRepository) NextCommentNumber(ctx context.Context, slug string, noteNumber int64) (int64, error) {
	return r.next(ctx, nextCommentNumber, "*counterRepository.NextCommentNumber", slug, noteNumber)
}

func (r *counterRepository) next(ctx context.Context, query, caller string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	var seq int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
		log.Err(err).Str("func", caller).Msg("error incrementing counter")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return seq, nil
}

// compile-time interface checks for the PostgreSQL backend
var (
	_ UserRepository    = (*userRepository)(nil)
	_ SpaceRepository   = (*spaceRepository)(nil)
	_ NoteRepository    = (*noteRepository)(nil)
	_ CommentRepository = (*commentRepository)(nil)
	_ CounterRepository = (*counterRepository)(nil)
)
