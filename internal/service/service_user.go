// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package service

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/google/uuid"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/store"
	"github.com/spacenote/spacenote/models"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

const maxUsernameLength = 50

// userService is the concrete implementation of UserService.
//
// Every user is kept in two in-memory maps, one keyed by username and one by
// API token, so authentication and membership checks on the hot request path
// never hit storage. The maps are rebuilt from storage by RefreshCache and
// updated in place by the mutating operations.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger

	mu         sync.RWMutex
	byUsername map[string]models.User
	byToken    map[string]models.User
}

// NewUserService constructs a UserService with empty caches. Call RefreshCache
// (or Services.WarmCaches) before serving requests.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
		byUsername:     make(map[string]models.User),
		byToken:        make(map[string]models.User),
	}
}

// CreateUser registers a new user account with a freshly generated API token.
// Only the admin user may create accounts.
//
// Returns:
//   - ErrPermissionDenied if actor is not the admin user.
//   - ErrInvalidUsername if username is empty, too long, or contains
//     characters outside [a-z0-9_-].
//   - store.ErrUserAlreadyExists (wrapped) if the username is taken.
func (s *userService) CreateUser(ctx context.Context, actor, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	if actor != models.AdminUsername {
		log.Error().Str("actor", actor).Msg("non-admin attempted to create a user")
		return models.User{}, ErrPermissionDenied
	}
	if !validUsername(username) {
		log.Error().Str("username", username).Msg("invalid username provided")
		return models.User{}, ErrInvalidUsername
	}

	user := models.User{Username: username, Token: uuid.NewString()}
	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	s.cachePut(created)

	return created, nil
}

// DeleteUser removes a user account. Only the admin user may delete accounts,
// and the admin account itself cannot be deleted.
func (s *userService) DeleteUser(ctx context.Context, actor, username string) error {
	log := logger.FromContext(ctx)

	if actor != models.AdminUsername {
		log.Error().Str("actor", actor).Msg("non-admin attempted to delete a user")
		return ErrPermissionDenied
	}
	if username == models.AdminUsername {
		log.Error().Msg("attempted to delete the admin user")
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.DeleteUser(ctx, username); err != nil {
		log.Err(err).Str("username", username).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	s.cacheDelete(username)

	return nil
}

// ListUsers returns all registered users. Only the admin user may list
// accounts. The result is served from the in-memory cache.
func (s *userService) ListUsers(ctx context.Context, actor string) ([]models.User, error) {
	if actor != models.AdminUsername {
		logger.FromContext(ctx).Error().Str("actor", actor).Msg("non-admin attempted to list users")
		return nil, ErrPermissionDenied
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.byUsername))
	for _, user := range s.byUsername {
		users = append(users, user)
	}
	return users, nil
}

// GetUser looks up a user by username in the in-memory cache.
func (s *userService) GetUser(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byUsername[username]
	return user, ok
}

// GetUserByToken looks up a user by API token in the in-memory cache.
func (s *userService) GetUserByToken(token string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byToken[token]
	return user, ok
}

// EnsureAdmin creates the admin account on first start. If the admin user
// already exists it is returned unchanged; otherwise a new account with a
// generated API token is persisted and the token is logged once so the
// operator can pick it up.
func (s *userService) EnsureAdmin(ctx context.Context) (models.User, error) {
	if admin, ok := s.GetUser(models.AdminUsername); ok {
		return admin, nil
	}

	admin := models.User{Username: models.AdminUsername, Token: uuid.NewString()}
	created, err := s.userRepository.CreateUser(ctx, admin)
	if err != nil {
		return models.User{}, fmt.Errorf("admin user creation ended with error: %w", err)
	}

	s.cachePut(created)
	s.logger.Info().Str("token", created.Token).Msg("admin user created")

	return created, nil
}

// RefreshCache rebuilds both lookup maps from storage. Called at startup and
// periodically by the cache refresh worker.
func (s *userService) RefreshCache(ctx context.Context) error {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("error listing users for cache refresh: %w", err)
	}

	byUsername := make(map[string]models.User, len(users))
	byToken := make(map[string]models.User, len(users))
	for _, user := range users {
		byUsername[user.Username] = user
		byToken[user.Token] = user
	}

	s.mu.Lock()
	s.byUsername = byUsername
	s.byToken = byToken
	s.mu.Unlock()

	return nil
}

func (s *userService) cachePut(user models.User) {
	s.mu.Lock()
	s.byUsername[user.Username] = user
	s.byToken[user.Token] = user
	s.mu.Unlock()
}

func (s *userService) cacheDelete(username string) {
	s.mu.Lock()
	if user, ok := s.byUsername[username]; ok {
		delete(s.byToken, user.Token)
		delete(s.byUsername, username)
	}
	s.mu.Unlock()
}

func validUsername(username string) bool {
	return username != "" && len(username) <= maxUsernameLength && usernamePattern.MatchString(username)
}
