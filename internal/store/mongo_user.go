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

// mongoUserRepository is the MongoDB-backed implementation of
// [UserRepository].
type mongoUserRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoUserRepository constructs a [UserRepository] over the users
// collection.
func NewMongoUserRepository(m *Mongo, log *logger.Logger) UserRepository {
	log.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		collection: m.database.Collection(collectionUsers),
		logger:     log,
	}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *mongoUserRepository) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	res, err := r.collection.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *mongoUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ListUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ListUsers").Msg("error decoding users")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return users, nil
}
