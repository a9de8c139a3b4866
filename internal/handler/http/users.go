// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/store"
	"github.com/spacenote/spacenote/internal/utils"
)

type createUserRequest struct {
	Username string `json:"username"`
}

// createUserResponse exposes the generated API token once, at creation time.
// Regular user serialization never includes the token.
type createUserResponse struct {
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, actor(r), req.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, createUserResponse{
		Username:  user.Username,
		Token:     user.Token,
		CreatedAt: user.CreatedAt,
	}, http.StatusCreated)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.services.UserService.GetUser(actor(r))
	if !ok {
		writeError(w, r, store.ErrUserNotFound)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.services.UserService.DeleteUser(r.Context(), actor(r), username); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
