// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/spacenote/spacenote/internal/config"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/utils"
	"github.com/spacenote/spacenote/models"
)

// authService is the concrete implementation of AuthService.
// It authenticates callers against the user cache and handles the JWT
// lifecycle for session tokens.
type authService struct {
	users UserService

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserService and
// populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users UserService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:         users,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login exchanges a username and its static API token for a short-lived
// session JWT.
//
// Returns:
//   - ErrInvalidDataProvided if username or token is empty.
//   - ErrWrongCredentials if the user is unknown or the token does not match.
//   - ErrTokenCreationFailed (wrapped) if JWT generation fails.
func (a *authService) Login(ctx context.Context, username, token string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || token == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	user, ok := a.users.GetUser(username)
	if !ok || subtle.ConstantTimeCompare([]byte(user.Token), []byte(token)) != 1 {
		log.Error().Str("username", username).Msg("wrong credentials")
		return models.Token{}, ErrWrongCredentials
	}

	issued, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return issued, nil
}

// Resolve authenticates a raw credential taken from the Authorization header.
//
// The credential is first matched against the static API tokens in the user
// cache; if no user owns it, it is treated as a session JWT and validated.
// Any failure is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) Resolve(ctx context.Context, credential string) (models.User, error) {
	if credential == "" {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	if user, ok := a.users.GetUserByToken(credential); ok {
		return user, nil
	}

	parsed, err := utils.ValidateAndParseJWTToken(credential, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, ok := a.users.GetUser(parsed.Username)
	if !ok {
		// The account was deleted after the token was issued.
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return user, nil
}
