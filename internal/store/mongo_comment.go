// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

import (
	"context"
	"fmt"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoCommentRepository is the MongoDB-backed implementation of
// [CommentRepository].
type mongoCommentRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoCommentRepository constructs a [CommentRepository] over the
// comments collection.
func NewMongoCommentRepository(m *Mongo, log *logger.Logger) CommentRepository {
	log.Debug().Msg("creating mongo comment repository")
	return &mongoCommentRepository{
		collection: m.database.Collection(collectionComments),
		logger:     log,
	}
}

func (r *mongoCommentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		log.Err(err).Str("func", "*mongoCommentRepository.CreateComment").Msg("error inserting comment")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return comment, nil
}

func (r *mongoCommentRepository) ListComments(ctx context.Context, slug string, noteNumber int64, limit, offset int) (models.PaginationResult[models.Comment], error) {
	log := logger.FromContext(ctx)
	page := models.PaginationResult[models.Comment]{Limit: limit, Offset: offset}

	filter := bson.M{"space_slug": slug, "note_number": noteNumber}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*mongoCommentRepository.ListComments").Msg("error counting comments")
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	page.Total = total

	opts := options.Find().
		SetSort(bson.D{{Key: "number", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		log.Err(err).Str("func", "*mongoCommentRepository.ListComments").Msg("error querying comments")
		return page, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	page.Items = []models.Comment{}
	if err := cursor.All(ctx, &page.Items); err != nil {
		log.Err(err).Str("func", "*mongoCommentRepository.ListComments").Msg("error decoding comments")
		return page, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return page, nil
}
