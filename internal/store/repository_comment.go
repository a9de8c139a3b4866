// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/models"
)

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository].
type commentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection.
func NewCommentRepository(db *DB, log *logger.Logger) CommentRepository {
	log.Debug().Msg("creating comment repository")
	return &commentRepository{db: db, logger: log}
}

// CreateComment persists a new comment. A foreign key violation means the
// targeted note does not exist.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createComment,
		comment.SpaceSlug, comment.NoteNumber, comment.Number,
		comment.AuthorUsername, comment.Content, comment.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error inserting comment")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Comment{}, ErrNoteNotFound
		default:
			return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return comment, nil
}

// ListComments returns one page of a note's comments, oldest first,
// together with the total count.
func (r *commentRepository) ListComments(ctx context.Context, slug string, noteNumber int64, limit, offset int) (models.PaginationResult[models.Comment], error) {
	log := logger.FromContext(ctx)
	page := models.PaginationResult[models.Comment]{Limit: limit, Offset: offset}

	where := squirrel.Eq{"space_slug": slug, "note_number": noteNumber}

	countQuery, countArgs, err := psql.
		Select("COUNT(*)").
		From("comments").
		Where(where).
		ToSql()
	if err != nil {
		return page, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&page.Total); err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error counting comments")
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listQuery, listArgs, err := psql.
		Select("space_slug", "note_number", "number", "author_username", "content", "created_at").
		From("comments").
		Where(where).
		OrderBy("number ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return page, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error querying comments")
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	page.Items = []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.SpaceSlug, &comment.NoteNumber, &comment.Number,
			&comment.AuthorUsername, &comment.Content, &comment.CreatedAt); err != nil {
			log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error scanning comment row")
			return page, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		page.Items = append(page.Items, comment)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return page, nil
}
