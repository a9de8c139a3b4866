// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/utils"
	"github.com/spacenote/spacenote/models"
)

func (h *Handler) createSpace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var space models.Space
	if err := json.NewDecoder(r.Body).Decode(&space); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.SpaceService.CreateSpace(ctx, actor(r), space)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listSpaces(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.services.SpaceService.ListSpaces(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, spaces, http.StatusOK)
}

type addMemberRequest struct {
	Username string `json:"username"`
}

func (h *Handler) addMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	slug := chi.URLParam(r, "slug")

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	space, err := h.services.SpaceService.AddMember(ctx, actor(r), slug, req.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, space, http.StatusOK)
}

func (h *Handler) addField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	slug := chi.URLParam(r, "slug")

	var def models.FieldDef
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	space, err := h.services.SpaceService.AddField(ctx, actor(r), slug, def)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, space, http.StatusOK)
}

func (h *Handler) updateField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	slug := chi.URLParam(r, "slug")

	var def models.FieldDef
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	// The URL names the field being replaced; the body must agree.
	if name := chi.URLParam(r, "name"); def.Name != "" && def.Name != name {
		http.Error(w, "field name in body does not match URL", http.StatusBadRequest)
		return
	} else if def.Name == "" {
		def.Name = name
	}

	space, err := h.services.SpaceService.UpdateField(ctx, actor(r), slug, def)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, space, http.StatusOK)
}

func (h *Handler) removeField(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	name := chi.URLParam(r, "name")

	space, err := h.services.SpaceService.RemoveField(r.Context(), actor(r), slug, name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, space, http.StatusOK)
}
