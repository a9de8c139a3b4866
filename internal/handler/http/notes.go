// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/utils"
	"github.com/spacenote/spacenote/models"
)

type noteFieldsRequest struct {
	Fields models.FieldMap `json:"fields"`
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	slug := chi.URLParam(r, "slug")

	var req noteFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, actor(r), slug, req.Fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	number, err := noteNumber(r)
	if err != nil {
		http.Error(w, "invalid note number", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), actor(r), slug, number)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	limit, offset := pageParams(r)

	page, err := h.services.NoteService.ListNotes(r.Context(), actor(r), slug, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) updateNoteFields(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	slug := chi.URLParam(r, "slug")

	number, err := noteNumber(r)
	if err != nil {
		http.Error(w, "invalid note number", http.StatusBadRequest)
		return
	}

	var req noteFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNoteFields(ctx, actor(r), slug, number, req.Fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func noteNumber(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "number"), 10, 64)
}

// pageParams reads the limit and offset query parameters. Malformed or absent
// values fall through as zero; the service layer applies defaults and clamps.
func pageParams(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}
