// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// login exchanges a username and static API token for a session JWT.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req.Username, req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", req.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, token, http.StatusOK)
}
