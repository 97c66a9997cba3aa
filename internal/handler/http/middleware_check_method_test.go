package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/properties", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("properties"))
	})
	router.Post("/properties", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/properties/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chi.URLParam(r, "id")))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "registered GET", method: http.MethodGet, path: "/properties", wantStatus: http.StatusOK, wantBody: "properties"},
		{name: "registered POST", method: http.MethodPost, path: "/properties", wantStatus: http.StatusOK},
		{name: "registered GET with param", method: http.MethodGet, path: "/properties/p-1", wantStatus: http.StatusOK, wantBody: "p-1"},
		{name: "DELETE on collection", method: http.MethodDelete, path: "/properties", wantStatus: http.StatusNotFound},
		{name: "PATCH on collection", method: http.MethodPatch, path: "/properties", wantStatus: http.StatusNotFound},
		{name: "PUT on item", method: http.MethodPut, path: "/properties/p-1", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/houses", wantStatus: http.StatusNotFound},
	}

	router := buildRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestAllowedMethods(t *testing.T) {
	router := buildRouter()

	assert.Equal(t, []string{http.MethodGet, http.MethodPost}, allowedMethods(router, "/properties"))
	assert.Equal(t, []string{http.MethodGet}, allowedMethods(router, "/properties/p-1"))
	assert.Empty(t, allowedMethods(router, "/houses"))
}
