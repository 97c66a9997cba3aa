package http

import (
	"net/http"

	"github.com/MKhiriev/go-estate-api/internal/logger"
)

// withRateLimit rejects requests above the configured token bucket with 429.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
