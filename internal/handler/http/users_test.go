// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacenote/spacenote/internal/service"
	"github.com/spacenote/spacenote/internal/store"
	"github.com/spacenote/spacenote/models"
)

func TestCreateUser(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		UserService: &mockUserService{
			createUserFn: func(_ context.Context, actor, username string) (models.User, error) {
				assert.Equal(t, models.AdminUsername, actor)
				return models.User{
					Username:  username,
					Token:     "generated-token",
					CreatedAt: time.Now().UTC(),
				}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/users/", `{"username":"alice"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	// the API token is exposed exactly once, in the creation response
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "generated-token", body["token"])
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantType   string
	}{
		{name: "duplicate", serviceErr: store.ErrUserAlreadyExists, wantStatus: http.StatusConflict, wantType: "conflict"},
		{name: "invalid username", serviceErr: service.ErrInvalidUsername, wantStatus: http.StatusBadRequest, wantType: "bad_request"},
		{name: "non-admin actor", serviceErr: service.ErrPermissionDenied, wantStatus: http.StatusForbidden, wantType: "permission_denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &service.Services{
				UserService: &mockUserService{
					createUserFn: func(context.Context, string, string) (models.User, error) {
						return models.User{}, tt.serviceErr
					},
				},
			})

			rec := doRequest(t, router, http.MethodPost, "/api/v1/users/", `{"username":"x"}`)

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody[errorResponse](t, rec)
			assert.Equal(t, tt.wantType, body.Type)
		})
	}
}

func TestMe(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		UserService: &mockUserService{
			getUserFn: func(username string) (models.User, bool) {
				return models.User{Username: username, Token: "secret", CreatedAt: time.Now().UTC()}, true
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/users/me", "")

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, models.AdminUsername, body["username"])
	assert.NotContains(t, body, "token")
}

func TestListUsers(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		UserService: &mockUserService{
			listUsersFn: func(context.Context, string) ([]models.User, error) {
				return []models.User{
					{Username: "admin", Token: "secret"},
					{Username: "alice", Token: "secret"},
				}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/users/", "")

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[[]map[string]any](t, rec)
	require.Len(t, body, 2)
	assert.Equal(t, "admin", body[0]["username"])
	// tokens never serialize outside the creation response
	assert.NotContains(t, body[0], "token")
}

func TestDeleteUser(t *testing.T) {
	var deleted string
	router := newTestRouter(t, &service.Services{
		UserService: &mockUserService{
			deleteUserFn: func(_ context.Context, _, username string) error {
				deleted = username
				return nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodDelete, "/api/v1/users/alice", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "alice", deleted)
}

func TestDeleteUser_NotFound(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		UserService: &mockUserService{
			deleteUserFn: func(context.Context, string, string) error {
				return store.ErrUserNotFound
			},
		},
	})

	rec := doRequest(t, router, http.MethodDelete, "/api/v1/users/ghost", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
