// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"errors"
	"net/http"

	"github.com/spacenote/spacenote/internal/fields"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/service"
	"github.com/spacenote/spacenote/internal/store"
	"github.com/spacenote/spacenote/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidUsername:     http.StatusBadRequest,
	service.ErrInvalidSlug:         http.StatusBadRequest,

	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrPermissionDenied: http.StatusForbidden,
	service.ErrNotSpaceMember:   http.StatusForbidden,

	fields.ErrValidation:      http.StatusUnprocessableEntity,
	fields.ErrInvalidFieldDef: http.StatusBadRequest,
	fields.ErrFieldExists:     http.StatusConflict,
	fields.ErrFieldNotFound:   http.StatusNotFound,

	store.ErrUserAlreadyExists:  http.StatusConflict,
	store.ErrSpaceAlreadyExists: http.StatusConflict,
	store.ErrNoteAlreadyExists:  http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrSpaceNotFound:      http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func errorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "permission_denied"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusUnprocessableEntity:
		return "validation_error"
	default:
		return "internal_error"
	}
}

// writeError maps err to an HTTP status and writes the canonical JSON error
// body. Internal errors are logged but never leak their message to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed with internal error")
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, errorResponse{Message: message, Type: errorType(status)}, status)
}
