package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email is not a valid address")
	ErrEmptyPassword = errors.New("password is required")
	ErrLongPassword  = errors.New("password must not exceed 72 bytes")

	ErrEmptyTitle       = errors.New("title is required")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrNegativeBedrooms = errors.New("bedrooms must not be negative")
	ErrNegativeArea     = errors.New("area must not be negative")
)
