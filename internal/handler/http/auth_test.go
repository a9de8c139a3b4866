// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacenote/spacenote/internal/service"
	"github.com/spacenote/spacenote/models"
)

func TestLogin(t *testing.T) {
	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, username, token string) (models.Token, error) {
				if username != "alice" || token != "static-token" {
					return models.Token{}, service.ErrWrongCredentials
				}
				return models.Token{SignedString: "signed-jwt", ExpiresAt: expiry}, nil
			},
		},
	})

	// login runs outside the auth middleware
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"alice","token":"static-token"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "signed-jwt", body["token"])
	assert.Contains(t, body, "expires_at")
}

func TestLogin_WrongCredentials(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{
			loginFn: func(context.Context, string, string) (models.Token, error) {
				return models.Token{}, service.ErrWrongCredentials
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"alice","token":"nope"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody[errorResponse](t, rec)
	assert.Equal(t, "unauthorized", body.Type)
}

func TestLogin_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
