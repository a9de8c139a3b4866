// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package service

import (
	"context"
	"fmt"

	"github.com/spacenote/spacenote/internal/config"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	SpaceService   SpaceService
	NoteService    NoteService
	CommentService CommentService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	users := NewUserService(storages.Users, logger)
	spaces := NewSpaceService(storages.Spaces, users, logger)

	return &Services{
		AuthService:    NewAuthService(users, cfg.App, logger),
		UserService:    users,
		SpaceService:   spaces,
		NoteService:    NewNoteService(storages.Notes, storages.Counters, spaces, logger),
		CommentService: NewCommentService(storages.Comments, storages.Counters, storages.Notes, spaces, logger),
	}
}

// WarmCaches loads users and spaces into memory and makes sure the admin
// account exists. Must be called once before the HTTP server starts
// accepting requests.
func (s *Services) WarmCaches(ctx context.Context) error {
	if err := s.UserService.RefreshCache(ctx); err != nil {
		return fmt.Errorf("error warming user cache: %w", err)
	}
	if _, err := s.UserService.EnsureAdmin(ctx); err != nil {
		return fmt.Errorf("error ensuring admin user: %w", err)
	}
	if err := s.SpaceService.RefreshCache(ctx); err != nil {
		return fmt.Errorf("error warming space cache: %w", err)
	}
	return nil
}

// RefreshCaches re-reads users and spaces from storage. Used by the periodic
// cache refresh worker to bound staleness when several server instances share
// one database.
func (s *Services) RefreshCaches(ctx context.Context) error {
	if err := s.UserService.RefreshCache(ctx); err != nil {
		return fmt.Errorf("error refreshing user cache: %w", err)
	}
	if err := s.SpaceService.RefreshCache(ctx); err != nil {
		return fmt.Errorf("error refreshing space cache: %w", err)
	}
	return nil
}
