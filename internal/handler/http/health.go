package http

import (
	"net/http"

	"github.com/MKhiriev/go-estate-api/models"
)

// health reports UP while the database answers a ping and DOWN with 503
// otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.CheckHealth(r.Context()); err != nil {
		respondHealth(w, r, models.HealthStatusDown, http.StatusServiceUnavailable)
		return
	}
	respondHealth(w, r, models.HealthStatusUp, http.StatusOK)
}

func respondHealth(w http.ResponseWriter, r *http.Request, status string, code int) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, models.HealthResponse{Status: status}, code)
}
