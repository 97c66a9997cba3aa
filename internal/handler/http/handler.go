package http

import (
	"github.com/MKhiriev/go-estate-api/internal/config"
	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/internal/service"
	"golang.org/x/time/rate"
)

const defaultMetricsPath = "/metrics"

type Handler struct {
	services *service.Services

	notFoundPolicy string
	server         config.Server

	limiter *rate.Limiter
	metrics *httpMetrics

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A zero RateLimit disables rate
// limiting and MetricsDisabled drops both the middleware and the endpoint.
func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		notFoundPolicy: cfg.App.NotFoundPolicy,
		server:         cfg.Server,
		logger:         logger,
	}

	if h.notFoundPolicy == "" {
		h.notFoundPolicy = config.NotFoundPolicyStrict
	}
	if h.server.MetricsPath == "" {
		h.server.MetricsPath = defaultMetricsPath
	}

	if cfg.Server.RateLimit > 0 {
		burst := cfg.Server.RateBurst
		if burst < 1 {
			burst = 1
		}
		h.limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), burst)
	}

	if !cfg.Server.MetricsDisabled {
		h.metrics = newHTTPMetrics()
	}

	logger.Info().
		Str("not_found_policy", h.notFoundPolicy).
		Bool("rate_limited", h.limiter != nil).
		Bool("metrics", h.metrics != nil).
		Msg("http handler created")
	return h
}
