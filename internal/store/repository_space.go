// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/models"
)

// spaceRepository is the PostgreSQL-backed implementation of
// [SpaceRepository]. Member lists and field schemas live in jsonb columns;
// updates replace the whole value, which is safe because the service layer
// serialises writes through its cache.
type spaceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSpaceRepository constructs a [SpaceRepository] backed by the provided
// database connection.
func NewSpaceRepository(db *DB, log *logger.Logger) SpaceRepository {
	log.Debug().Msg("creating space repository")
	return &spaceRepository{db: db, logger: log}
}

// CreateSpace persists a new space and returns it with the server-assigned
// CreatedAt. A slug collision maps to [ErrSpaceAlreadyExists].
func (r *spaceRepository) CreateSpace(ctx context.Context, space models.Space) (models.Space, error) {
	log := logger.FromContext(ctx)

	members, err := membersToJSON(space.Members)
	if err != nil {
		return models.Space{}, err
	}
	schema, err := schemaToJSON(space.Fields)
	if err != nil {
		return models.Space{}, err
	}

	row := r.db.QueryRowContext(ctx, createSpace, space.Slug, space.Title, members, schema)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*spaceRepository.CreateSpace").Msg("error inserting space")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Space{}, ErrSpaceAlreadyExists
		default:
			return models.Space{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&space.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Space{}, ErrSpaceAlreadyExists
		}
		log.Err(err).Str("func", "*spaceRepository.CreateSpace").Msg("error scanning created space")
		return models.Space{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return space, nil
}

// UpdateMembers replaces the member list of the space with the given slug.
func (r *spaceRepository) UpdateMembers(ctx context.Context, slug string, members []string) error {
	raw, err := membersToJSON(members)
	if err != nil {
		return err
	}
	return r.updateColumn(ctx, updateSpaceMembers, slug, raw, "*spaceRepository.UpdateMembers")
}

// UpdateFields replaces the field schema of the space with the given slug.
// Stored notes are untouched: the new schema only binds future writes.
func (r *spaceRepository) UpdateFields(ctx context.Context, slug string, schema models.Schema) error {
	raw, err := schemaToJSON(schema)
	if err != nil {
		return err
	}
	return r.updateColumn(ctx, updateSpaceFields, slug, raw, "*spaceRepository.UpdateFields")
}

func (r *spaceRepository) updateColumn(ctx context.Context, query, slug string, raw []byte, caller string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, slug, raw)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error updating space")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

// ListSpaces returns all stored spaces ordered by slug. Like users, spaces
// are small and bounded and are fully cached by the service layer.
func (r *spaceRepository) ListSpaces(ctx context.Context) ([]models.Space, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSpaces)
	if err != nil {
		log.Err(err).Str("func", "*spaceRepository.ListSpaces").Msg("error querying spaces")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var spaces []models.Space
	for rows.Next() {
		var (
			space      models.Space
			rawMembers []byte
			rawSchema  []byte
		)
		if err := rows.Scan(&space.Slug, &space.Title, &rawMembers, &rawSchema, &space.CreatedAt); err != nil {
			log.Err(err).Str("func", "*spaceRepository.ListSpaces").Msg("error scanning space row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if space.Members, err = membersFromJSON(rawMembers); err != nil {
			return nil, err
		}
		if space.Fields, err = schemaFromJSON(rawSchema); err != nil {
			return nil, err
		}

		spaces = append(spaces, space)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return spaces, nil
}
