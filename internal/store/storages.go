// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

import (
	"context"
	"fmt"

	"github.com/spacenote/spacenote/internal/config"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/migrations"
)

// Storages bundles one repository per entity, all backed by the same
// storage engine.
type Storages struct {
	Users    UserRepository
	Spaces   SpaceRepository
	Notes    NoteRepository
	Comments CommentRepository
	Counters CounterRepository
}

// NewStorages connects to the configured storage engine and wires up the
// matching repository set. The PostgreSQL backend runs its goose migrations
// before handing out repositories; the MongoDB backend creates its unique
// indexes inside NewConnectMongo.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.DB.Engine {
	case config.EnginePostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error creating postgres storages: %w", err)
		}
		if err := migrations.Migrate(db.DB); err != nil {
			return nil, fmt.Errorf("error migrating database: %w", err)
		}

		return &Storages{
			Users:    NewUserRepository(db, log),
			Spaces:   NewSpaceRepository(db, log),
			Notes:    NewNoteRepository(db, log),
			Comments: NewCommentRepository(db, log),
			Counters: NewCounterRepository(db, log),
		}, nil

	case config.EngineMongo:
		m, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error creating mongo storages: %w", err)
		}

		return &Storages{
			Users:    NewMongoUserRepository(m, log),
			Spaces:   NewMongoSpaceRepository(m, log),
			Notes:    NewMongoNoteRepository(m, log),
			Comments: NewMongoCommentRepository(m, log),
			Counters: NewMongoCounterRepository(m, log),
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage engine %q", cfg.DB.Engine)
	}
}
