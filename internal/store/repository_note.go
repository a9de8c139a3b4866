// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/models"
)

// psql builds parameterised queries with PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. The fields payload lives in a jsonb column and is
// written and read back without interpretation.
type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection.
func NewNoteRepository(db *DB, log *logger.Logger) NoteRepository {
	log.Debug().Msg("creating note repository")
	return &noteRepository{db: db, logger: log}
}

// CreateNote persists a new note. The (space_slug, number) pair must be
// fresh from the counter; a collision maps to [ErrNoteAlreadyExists].
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	rawFields, err := fieldsToJSON(note.Fields)
	if err != nil {
		return models.Note{}, err
	}

	_, err = r.db.ExecContext(ctx, createNote, note.SpaceSlug, note.Number, note.AuthorUsername, note.CreatedAt, rawFields)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error inserting note")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Note{}, ErrNoteAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Note{}, ErrSpaceNotFound
		default:
			return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return note, nil
}

// GetNote retrieves a note by its composite natural key. The stored fields
// payload is returned as-is, including fields no longer declared in the
// space's current schema.
func (r *noteRepository) GetNote(ctx context.Context, slug string, number int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var (
		note      models.Note
		rawFields []byte
	)

	row := r.db.QueryRowContext(ctx, getNote, slug, number)
	if err := row.Scan(&note.SpaceSlug, &note.Number, &note.AuthorUsername, &note.CreatedAt, &rawFields); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error scanning note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	fieldsPayload, err := fieldsFromJSON(rawFields)
	if err != nil {
		return models.Note{}, err
	}
	note.Fields = fieldsPayload

	return note, nil
}

// UpdateNoteFields replaces the stored fields payload of a note. The caller
// is responsible for having validated the payload against the current
// schema; the repository stores it verbatim.
func (r *noteRepository) UpdateNoteFields(ctx context.Context, slug string, number int64, fieldsPayload models.FieldMap) error {
	log := logger.FromContext(ctx)

	rawFields, err := fieldsToJSON(fieldsPayload)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, updateNoteFields, slug, number, rawFields)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNoteFields").Msg("error updating note fields")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// ListNotes returns one page of a space's notes, newest first, together
// with the total count.
func (r *noteRepository) ListNotes(ctx context.Context, slug string, limit, offset int) (models.PaginationResult[models.Note], error) {
	log := logger.FromContext(ctx)
	page := models.PaginationResult[models.Note]{Limit: limit, Offset: offset}

	countQuery, countArgs, err := psql.
		Select("COUNT(*)").
		From("notes").
		Where(squirrel.Eq{"space_slug": slug}).
		ToSql()
	if err != nil {
		return page, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&page.Total); err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error counting notes")
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listQuery, listArgs, err := psql.
		Select("space_slug", "number", "author_username", "created_at", "fields").
		From("notes").
		Where(squirrel.Eq{"space_slug": slug}).
		OrderBy("number DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return page, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error querying notes")
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	page.Items = []models.Note{}
	for rows.Next() {
		var (
			note      models.Note
			rawFields []byte
		)
		if err := rows.Scan(&note.SpaceSlug, &note.Number, &note.AuthorUsername, &note.CreatedAt, &rawFields); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error scanning note row")
			return page, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if note.Fields, err = fieldsFromJSON(rawFields); err != nil {
			return page, err
		}
		page.Items = append(page.Items, note)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return page, nil
}
