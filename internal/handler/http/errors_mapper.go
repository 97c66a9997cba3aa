package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-estate-api/internal/service"
	"github.com/MKhiriev/go-estate-api/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrHashingPassword:     http.StatusInternalServerError,
	service.ErrDatabaseUnavailable: http.StatusServiceUnavailable,

	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrPropertyNotFound:   http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
