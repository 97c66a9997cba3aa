package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-estate-api/models"
	emailaddress "github.com/mcnijman/go-emailaddress"
)

// Field names accepted by UserValidator.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// UserValidator checks models.User values received from clients.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.User or *models.User. Without explicit fields only
// the email is checked; the password is checked only when FieldPassword is
// requested, because an update may legitimately omit it.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			email := strings.TrimSpace(user.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if _, err := emailaddress.Parse(email); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if len(user.Password) > MaxPasswordBytes {
				return ErrLongPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
