// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/utils"
)

// auth is an HTTP middleware that enforces bearer authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// credential, resolves it via [service.AuthService.Resolve] — the credential
// may be either a static API token or a session JWT — and on success stores
// the authenticated username in the request context under
// [utils.UsernameCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer credential
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The credential matches no user and fails JWT validation.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		credential, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Resolve(ctx, credential)
		if err != nil {
			log.Err(err).Msg("error occurred during resolving credential")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated username in the context so that downstream
		// handlers can retrieve it without re-resolving the credential.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, user.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer credential string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// actor returns the authenticated username placed in the context by the auth
// middleware. The empty string means the middleware did not run.
func actor(r *http.Request) string {
	username, _ := utils.GetUsernameFromContext(r.Context())
	return username
}
