package crypto

import "errors"

var (
	ErrPasswordMismatch  = errors.New("password does not match hash")
	ErrInvalidHashFormat = errors.New("invalid password hash format")
	ErrUnknownHasher     = errors.New("unknown password hasher")
)
