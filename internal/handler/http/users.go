// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-estate-api/internal/app"
	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/internal/store"
	"github.com/MKhiriev/go-estate-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.respondGetNotFound(w, r)
			return
		}
		respondError(w, r, err, "error getting user")
		return
	}

	writeJSON(w, r, user.Public(), http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		respondError(w, r, err, "error listing users")
		return
	}

	writeJSON(w, r, models.PublicUsers(users), http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		respondError(w, r, err, "error creating user")
		return
	}

	log.Debug().Str("user_id", created.ID).Msg("user created")
	writeJSON(w, r, created.Public(), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var modified models.User
	if err := json.NewDecoder(r.Body).Decode(&modified); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), id, modified)
	if err != nil {
		respondError(w, r, err, "error updating user")
		return
	}

	writeJSON(w, r, updated.Public(), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		respondError(w, r, err, "error deleting user")
		return
	}

	w.WriteHeader(http.StatusOK)
}
