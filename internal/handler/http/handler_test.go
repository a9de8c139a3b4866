// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/service"
	"github.com/spacenote/spacenote/models"
)

const testToken = "valid-token"

// resolveAs returns an auth mock that accepts testToken as the given user and
// rejects everything else.
func resolveAs(username string) *mockAuthService {
	return &mockAuthService{
		resolveFn: func(_ context.Context, credential string) (models.User, error) {
			if credential != testToken {
				return models.User{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.User{Username: username}, nil
		},
	}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()

	if services.AuthService == nil {
		services.AuthService = resolveAs(models.AdminUsername)
	}
	if services.UserService == nil {
		services.UserService = &mockUserService{}
	}
	if services.SpaceService == nil {
		services.SpaceService = &mockSpaceService{}
	}
	if services.NoteService == nil {
		services.NoteService = &mockNoteService{}
	}
	if services.CommentService == nil {
		services.CommentService = &mockCommentService{}
	}

	return NewHandler(services, logger.Nop()).Init()
}

// doRequest performs an authenticated JSON request against the router and
// returns the recorded response.
func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
