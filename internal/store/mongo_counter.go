// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

import (
	"context"
	"fmt"

	"github.com/spacenote/spacenote/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoCounterRepository is the MongoDB-backed implementation of
// [CounterRepository]. Each increment is a single findOneAndUpdate with
// $inc and upsert, which MongoDB applies atomically per document — the
// same numbering guarantee the PostgreSQL upsert gives.
type mongoCounterRepository struct {
	noteCounters    *mongo.Collection
	commentCounters *mongo.Collection
	logger          *logger.Logger
}

// NewMongoCounterRepository constructs a [CounterRepository] over the
// counter collections.
func NewMongoCounterRepository(m *Mongo, log *logger.Logger) CounterRepository {
	log.Debug().Msg("creating mongo counter repository")
	return &mongoCounterRepository{
		noteCounters:    m.database.Collection(collectionNoteCounters),
		commentCounters: m.database.Collection(collectionCommentCounters),
		logger:          log,
	}
}

func (r *mongoCounterRepository) NextNoteNumber(ctx context.Context, slug string) (int64, error) {
	return r.next(ctx, r.noteCounters, bson.M{"space_slug": slug}, "*mongoCounterRepository.NextNoteNumber")
}

func (r *mongoCounterRepository) NextCommentNumber(ctx context.Context, slug string, noteNumber int64) (int64, error) {
	return r.next(ctx, r.commentCounters, bson.M{"space_slug": slug, "note_number": noteNumber}, "*mongoCounterRepository.NextCommentNumber")
}

func (r *mongoCounterRepository) next(ctx context.Context, collection *mongo.Collection, filter bson.M, caller string) (int64, error) {
	log := logger.FromContext(ctx)

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := collection.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"seq": 1}}, opts).Decode(&counter)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error incrementing counter")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return counter.Seq, nil
}

// compile-time interface checks for the MongoDB backend
var (
	_ UserRepository    = (*mongoUserRepository)(nil)
	_ SpaceRepository   = (*mongoSpaceRepository)(nil)
	_ NoteRepository    = (*mongoNoteRepository)(nil)
	_ CommentRepository = (*mongoCommentRepository)(nil)
	_ CounterRepository = (*mongoCounterRepository)(nil)
)
