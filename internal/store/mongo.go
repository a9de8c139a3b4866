// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

import (
	"context"
	"fmt"

	"github.com/spacenote/spacenote/internal/config"
	"github.com/spacenote/spacenote/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the MongoDB backend. The counter collections
// mirror the per-space and per-note numbering sequences.
const (
	collectionUsers           = "users"
	collectionSpaces          = "spaces"
	collectionNotes           = "notes"
	collectionComments        = "comments"
	collectionNoteCounters    = "note_counters"
	collectionCommentCounters = "comment_counters"
)

// Mongo wraps the MongoDB client and database handle shared by all
// repositories of this backend.
type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to MongoDB, pings the primary, and creates the
// unique indexes the natural-key lookups rely on.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongodb")
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongodb (ping)")
		return nil, err
	}

	m := &Mongo{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   log,
	}

	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to mongodb successfully")

	return m, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "token", Value: 1}}, Options: unique},
		},
		collectionSpaces: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		collectionNotes: {
			{Keys: bson.D{{Key: "space_slug", Value: 1}, {Key: "number", Value: 1}}, Options: unique},
		},
		collectionComments: {
			{Keys: bson.D{{Key: "space_slug", Value: 1}, {Key: "note_number", Value: 1}, {Key: "number", Value: 1}}, Options: unique},
		},
		collectionNoteCounters: {
			{Keys: bson.D{{Key: "space_slug", Value: 1}}, Options: unique},
		},
		collectionCommentCounters: {
			{Keys: bson.D{{Key: "space_slug", Value: 1}, {Key: "note_number", Value: 1}}, Options: unique},
		},
	}

	for collection, models := range indexes {
		if _, err := m.database.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("error creating indexes for %s: %w", collection, err)
		}
	}

	return nil
}

// isDuplicateKey reports whether err is a unique index violation.
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
