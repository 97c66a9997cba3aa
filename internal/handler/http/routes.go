package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init registers every route on a flat router so that CheckHTTPMethod can
// match request paths against route patterns.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	if h.limiter != nil {
		router.Use(h.withRateLimit)
	}
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}
	router.Use(withGZip)

	// service endpoints
	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Handle(h.server.MetricsPath, h.metrics.handler())
	}

	jsonBody := middleware.AllowContentType("application/json")

	// users
	router.Get("/users", h.listUsers)
	router.With(jsonBody).Post("/users", h.createUser)
	router.Get("/users/{id}", h.getUser)
	router.With(jsonBody).Put("/users/{id}", h.updateUser)
	router.Delete("/users/{id}", h.deleteUser)

	// properties
	router.Get("/properties", h.listProperties)
	router.With(jsonBody).Post("/properties", h.createProperty)
	router.Get("/properties/{id}", h.getProperty)
	router.With(jsonBody).Put("/properties/{id}", h.updateProperty)
	router.Delete("/properties/{id}", h.deleteProperty)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
