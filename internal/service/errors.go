package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrHashingPassword       = errors.New("error hashing password")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrDatabaseUnavailable   = errors.New("database is unavailable")
)
