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

func (h *Handler) getProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	property, err := h.services.PropertyService.GetProperty(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrPropertyNotFound) {
			h.respondGetNotFound(w, r)
			return
		}
		respondError(w, r, err, "error getting property")
		return
	}

	writeJSON(w, r, property, http.StatusOK)
}

func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.services.PropertyService.ListProperties(r.Context())
	if err != nil {
		respondError(w, r, err, "error listing properties")
		return
	}
	if properties == nil {
		properties = []models.Property{}
	}

	writeJSON(w, r, properties, http.StatusOK)
}

func (h *Handler) createProperty(w http.ResponseWriter, r *http.Request) {
	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		logger.FromRequest(r).Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.PropertyService.CreateProperty(r.Context(), property)
	if err != nil {
		respondError(w, r, err, "error creating property")
		return
	}

	writeJSON(w, r, created, http.StatusOK)
}

func (h *Handler) updateProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var modified models.Property
	if err := json.NewDecoder(r.Body).Decode(&modified); err != nil {
		logger.FromRequest(r).Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.PropertyService.UpdateProperty(r.Context(), id, modified)
	if err != nil {
		respondError(w, r, err, "error updating property")
		return
	}

	writeJSON(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.PropertyService.DeleteProperty(r.Context(), id); err != nil {
		respondError(w, r, err, "error deleting property")
		return
	}

	w.WriteHeader(http.StatusOK)
}
