// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package service

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/spacenote/spacenote/internal/fields"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/store"
	"github.com/spacenote/spacenote/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

const maxSlugLength = 50

// spaceService is the concrete implementation of SpaceService.
//
// The full space set is cached in memory keyed by slug, so membership checks
// and schema lookups on the note path never hit storage. Schema evolution is
// delegated to the fields package and the rewritten definition is persisted
// as a whole; stored notes are never rewritten.
type spaceService struct {
	spaceRepository store.SpaceRepository
	users           UserService
	logger          *logger.Logger

	mu     sync.RWMutex
	bySlug map[string]models.Space
}

// NewSpaceService constructs a SpaceService with an empty cache. Call
// RefreshCache (or Services.WarmCaches) before serving requests.
func NewSpaceService(spaceRepository store.SpaceRepository, users UserService, logger *logger.Logger) SpaceService {
	return &spaceService{
		spaceRepository: spaceRepository,
		users:           users,
		logger:          logger,
		bySlug:          make(map[string]models.Space),
	}
}

// CreateSpace creates a new space. Only the admin user may create spaces.
//
// The slug must match [a-z0-9-] and be at most 50 characters, the title must
// be non-empty, every listed member must be a registered user, and every
// field definition must pass the same checks applied when adding a field to
// an existing space.
func (s *spaceService) CreateSpace(ctx context.Context, actor string, space models.Space) (models.Space, error) {
	log := logger.FromContext(ctx)

	if actor != models.AdminUsername {
		log.Error().Str("actor", actor).Msg("non-admin attempted to create a space")
		return models.Space{}, ErrPermissionDenied
	}
	if !validSlug(space.Slug) {
		log.Error().Str("slug", space.Slug).Msg("invalid space slug provided")
		return models.Space{}, ErrInvalidSlug
	}
	if space.Title == "" {
		log.Error().Str("slug", space.Slug).Msg("empty space title provided")
		return models.Space{}, ErrInvalidDataProvided
	}
	for _, member := range space.Members {
		if _, ok := s.users.GetUser(member); !ok {
			log.Error().Str("slug", space.Slug).Str("member", member).Msg("unknown member listed for new space")
			return models.Space{}, fmt.Errorf("%w: unknown member %q", ErrInvalidDataProvided, member)
		}
	}

	schema := models.Schema{}
	for _, def := range space.Fields {
		var err error
		if schema, err = fields.AddField(schema, def); err != nil {
			log.Err(err).Str("slug", space.Slug).Str("field", def.Name).Msg("invalid field definition for new space")
			return models.Space{}, err
		}
	}
	space.Fields = schema
	space.CreatedAt = time.Now().UTC()

	created, err := s.spaceRepository.CreateSpace(ctx, space)
	if err != nil {
		log.Err(err).Str("slug", space.Slug).Msg("space creation ended with error")
		return models.Space{}, fmt.Errorf("space creation ended with error: %w", err)
	}

	s.cachePut(created)

	return created, nil
}

// AddMember grants a registered user access to a space. Only the admin user
// may manage members.
func (s *spaceService) AddMember(ctx context.Context, actor, slug, username string) (models.Space, error) {
	log := logger.FromContext(ctx)

	if actor != models.AdminUsername {
		log.Error().Str("actor", actor).Msg("non-admin attempted to add a member")
		return models.Space{}, ErrPermissionDenied
	}

	space, ok := s.GetSpace(slug)
	if !ok {
		return models.Space{}, store.ErrSpaceNotFound
	}
	if _, ok := s.users.GetUser(username); !ok {
		log.Error().Str("slug", slug).Str("username", username).Msg("unknown user added as member")
		return models.Space{}, fmt.Errorf("%w: unknown member %q", ErrInvalidDataProvided, username)
	}
	if space.HasMember(username) {
		return models.Space{}, fmt.Errorf("%w: %q is already a member", ErrInvalidDataProvided, username)
	}

	members := append(append([]string{}, space.Members...), username)
	if err := s.spaceRepository.UpdateMembers(ctx, slug, members); err != nil {
		log.Err(err).Str("slug", slug).Msg("member update ended with error")
		return models.Space{}, fmt.Errorf("member update ended with error: %w", err)
	}

	space.Members = members
	s.cachePut(space)

	return space, nil
}

// AddField appends a new field definition to the space schema. Only the admin
// user may change schemas. Existing notes are not touched: older notes simply
// lack the new field until their next update.
func (s *spaceService) AddField(ctx context.Context, actor, slug string, def models.FieldDef) (models.Space, error) {
	return s.evolveSchema(ctx, actor, slug, def.Name, func(schema models.Schema) (models.Schema, error) {
		return fields.AddField(schema, def)
	})
}

// UpdateField replaces an existing field definition in the space schema.
// Only the admin user may change schemas. Stored values written under the old
// definition remain valid until the note they belong to is next updated.
func (s *spaceService) UpdateField(ctx context.Context, actor, slug string, def models.FieldDef) (models.Space, error) {
	return s.evolveSchema(ctx, actor, slug, def.Name, func(schema models.Schema) (models.Schema, error) {
		return fields.ChangeField(schema, def)
	})
}

// RemoveField drops a field definition from the space schema. Only the admin
// user may change schemas. Values already stored under the removed name stay
// in their notes and are preserved verbatim across future updates.
func (s *spaceService) RemoveField(ctx context.Context, actor, slug, name string) (models.Space, error) {
	return s.evolveSchema(ctx, actor, slug, name, func(schema models.Schema) (models.Schema, error) {
		return fields.RemoveField(schema, name)
	})
}

// evolveSchema runs one schema transition under the cache lock and persists
// the result. Serialising transitions through the lock keeps concurrent
// schema changes from overwriting each other.
func (s *spaceService) evolveSchema(ctx context.Context, actor, slug, fieldName string, transition func(models.Schema) (models.Schema, error)) (models.Space, error) {
	log := logger.FromContext(ctx)

	if actor != models.AdminUsername {
		log.Error().Str("actor", actor).Msg("non-admin attempted to change a space schema")
		return models.Space{}, ErrPermissionDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	space, ok := s.bySlug[slug]
	if !ok {
		return models.Space{}, store.ErrSpaceNotFound
	}

	schema, err := transition(space.Fields)
	if err != nil {
		log.Err(err).Str("slug", slug).Str("field", fieldName).Msg("schema transition rejected")
		return models.Space{}, err
	}

	if err := s.spaceRepository.UpdateFields(ctx, slug, schema); err != nil {
		log.Err(err).Str("slug", slug).Str("field", fieldName).Msg("schema update ended with error")
		return models.Space{}, fmt.Errorf("schema update ended with error: %w", err)
	}

	space.Fields = schema
	s.bySlug[slug] = space

	return space, nil
}

// ListSpaces returns the spaces visible to actor: all of them for the admin
// user, otherwise only the spaces actor is a member of.
func (s *spaceService) ListSpaces(_ context.Context, actor string) ([]models.Space, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spaces := make([]models.Space, 0, len(s.bySlug))
	for _, space := range s.bySlug {
		if actor == models.AdminUsername || space.HasMember(actor) {
			spaces = append(spaces, space)
		}
	}
	return spaces, nil
}

// GetSpace looks up a space by slug in the in-memory cache.
func (s *spaceService) GetSpace(slug string) (models.Space, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	space, ok := s.bySlug[slug]
	return space, ok
}

// EnsureMember returns the space if username may act inside it. The admin
// user has access to every space.
//
// Returns store.ErrSpaceNotFound if the slug is unknown and ErrNotSpaceMember
// if the user has no access.
func (s *spaceService) EnsureMember(slug, username string) (models.Space, error) {
	space, ok := s.GetSpace(slug)
	if !ok {
		return models.Space{}, store.ErrSpaceNotFound
	}
	if username != models.AdminUsername && !space.HasMember(username) {
		return models.Space{}, ErrNotSpaceMember
	}
	return space, nil
}

// RefreshCache rebuilds the slug map from storage. Called at startup and
// periodically by the cache refresh worker.
func (s *spaceService) RefreshCache(ctx context.Context) error {
	spaces, err := s.spaceRepository.ListSpaces(ctx)
	if err != nil {
		return fmt.Errorf("error listing spaces for cache refresh: %w", err)
	}

	bySlug := make(map[string]models.Space, len(spaces))
	for _, space := range spaces {
		bySlug[space.Slug] = space
	}

	s.mu.Lock()
	s.bySlug = bySlug
	s.mu.Unlock()

	return nil
}

func (s *spaceService) cachePut(space models.Space) {
	s.mu.Lock()
	s.bySlug[space.Slug] = space
	s.mu.Unlock()
}

func validSlug(slug string) bool {
	return slug != "" && len(slug) <= maxSlugLength && slugPattern.MatchString(slug)
}
