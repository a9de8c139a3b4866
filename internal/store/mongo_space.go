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
)

// mongoSpaceRepository is the MongoDB-backed implementation of
// [SpaceRepository]. Spaces map one-to-one onto documents; the field schema
// is embedded, which is the modeling this backend exists to demonstrate.
type mongoSpaceRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoSpaceRepository constructs a [SpaceRepository] over the spaces
// collection.
func NewMongoSpaceRepository(m *Mongo, log *logger.Logger) SpaceRepository {
	log.Debug().Msg("creating mongo space repository")
	return &mongoSpaceRepository{
		collection: m.database.Collection(collectionSpaces),
		logger:     log,
	}
}

func (r *mongoSpaceRepository) CreateSpace(ctx context.Context, space models.Space) (models.Space, error) {
	log := logger.FromContext(ctx)

	if space.Members == nil {
		space.Members = []string{}
	}
	if space.Fields == nil {
		space.Fields = models.Schema{}
	}

	if _, err := r.collection.InsertOne(ctx, space); err != nil {
		if isDuplicateKey(err) {
			return models.Space{}, ErrSpaceAlreadyExists
		}
		log.Err(err).Str("func", "*mongoSpaceRepository.CreateSpace").Msg("error inserting space")
		return models.Space{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return space, nil
}

func (r *mongoSpaceRepository) UpdateMembers(ctx context.Context, slug string, members []string) error {
	return r.setField(ctx, slug, "members", members, "*mongoSpaceRepository.UpdateMembers")
}

func (r *mongoSpaceRepository) UpdateFields(ctx context.Context, slug string, schema models.Schema) error {
	return r.setField(ctx, slug, "fields", schema, "*mongoSpaceRepository.UpdateFields")
}

func (r *mongoSpaceRepository) setField(ctx context.Context, slug, field string, value any, caller string) error {
	log := logger.FromContext(ctx)

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"slug": slug},
		bson.M{"$set": bson.M{field: value}})
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error updating space")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

func (r *mongoSpaceRepository) ListSpaces(ctx context.Context) ([]models.Space, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		log.Err(err).Str("func", "*mongoSpaceRepository.ListSpaces").Msg("error querying spaces")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var spaces []models.Space
	if err := cursor.All(ctx, &spaces); err != nil {
		log.Err(err).Str("func", "*mongoSpaceRepository.ListSpaces").Msg("error decoding spaces")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return spaces, nil
}
