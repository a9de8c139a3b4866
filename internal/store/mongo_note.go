// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoNoteRepository is the MongoDB-backed implementation of
// [NoteRepository]. The fields payload is stored as a native subdocument;
// [models.Value] handles the BSON conversion per field.
type mongoNoteRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoNoteRepository constructs a [NoteRepository] over the notes
// collection.
func NewMongoNoteRepository(m *Mongo, log *logger.Logger) NoteRepository {
	log.Debug().Msg("creating mongo note repository")
	return &mongoNoteRepository{
		collection: m.database.Collection(collectionNotes),
		logger:     log,
	}
}

func (r *mongoNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if note.Fields == nil {
		note.Fields = models.FieldMap{}
	}

	if _, err := r.collection.InsertOne(ctx, note); err != nil {
		if isDuplicateKey(err) {
			return models.Note{}, ErrNoteAlreadyExists
		}
		log.Err(err).Str("func", "*mongoNoteRepository.CreateNote").Msg("error inserting note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

func (r *mongoNoteRepository) GetNote(ctx context.Context, slug string, number int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	err := r.collection.FindOne(ctx, bson.M{"space_slug": slug, "number": number}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*mongoNoteRepository.GetNote").Msg("error decoding note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

func (r *mongoNoteRepository) UpdateNoteFields(ctx context.Context, slug string, number int64, fieldsPayload models.FieldMap) error {
	log := logger.FromContext(ctx)

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"space_slug": slug, "number": number},
		bson.M{"$set": bson.M{"fields": fieldsPayload}})
	if err != nil {
		log.Err(err).Str("func", "*mongoNoteRepository.UpdateNoteFields").Msg("error updating note fields")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (r *mongoNoteRepository) ListNotes(ctx context.Context, slug string, limit, offset int) (models.PaginationResult[models.Note], error) {
	log := logger.FromContext(ctx)
	page := models.PaginationResult[models.Note]{Limit: limit, Offset: offset}

	filter := bson.M{"space_slug": slug}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*mongoNoteRepository.ListNotes").Msg("error counting notes")
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	page.Total = total

	opts := options.Find().
		SetSort(bson.D{{Key: "number", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		log.Err(err).Str("func", "*mongoNoteRepository.ListNotes").Msg("error querying notes")
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	page.Items = []models.Note{}
	if err := cursor.All(ctx, &page.Items); err != nil {
		log.Err(err).Str("func", "*mongoNoteRepository.ListNotes").Msg("error decoding notes")
		return page, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return page, nil
}
