package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-estate-api/internal/app"
	"github.com/MKhiriev/go-estate-api/internal/config"
	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/internal/service"
	"github.com/MKhiriev/go-estate-api/internal/store"
	"github.com/MKhiriev/go-estate-api/internal/utils"
)

// writeJSON logs encoding failures; the status line may already be sent.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// respondError maps err to a status code. Not-found answers carry no body,
// server-side failures hide their cause from the client.
func respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	switch {
	case status == http.StatusNotFound:
		log.Debug().Err(err).Msg(msg)
		w.WriteHeader(http.StatusNotFound)
	case status >= http.StatusInternalServerError:
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		log.Info().Err(err).Msg(msg)
		http.Error(w, app.MsgEmailAlreadyExists, status)
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Info().Err(err).Msg(msg)
		http.Error(w, err.Error(), status)
	default:
		log.Warn().Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
	}
}

// respondGetNotFound answers a GET on an unknown id according to the
// configured not-found policy.
func (h *Handler) respondGetNotFound(w http.ResponseWriter, r *http.Request) {
	if h.notFoundPolicy == config.NotFoundPolicyLegacy {
		writeJSON(w, r, nil, http.StatusOK)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}
