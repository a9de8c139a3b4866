// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/utils"
)

type createCommentRequest struct {
	Content string `json:"content"`
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	slug := chi.URLParam(r, "slug")

	number, err := noteNumber(r)
	if err != nil {
		http.Error(w, "invalid note number", http.StatusBadRequest)
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	comment, err := h.services.CommentService.CreateComment(ctx, actor(r), slug, number, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	number, err := noteNumber(r)
	if err != nil {
		http.Error(w, "invalid note number", http.StatusBadRequest)
		return
	}

	limit, offset := pageParams(r)

	page, err := h.services.CommentService.ListComments(r.Context(), actor(r), slug, number, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}
