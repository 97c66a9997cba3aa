package adapter

import "errors"

var (
	ErrEmptyAddress   = errors.New("empty server address")
	ErrInvalidAddress = errors.New("invalid server address")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnsupportedMedia    = errors.New("unsupported media type")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrServerUnavailable   = errors.New("server unavailable")
)
