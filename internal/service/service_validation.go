package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-estate-api/internal/validators"
	"github.com/MKhiriev/go-estate-api/models"
)

// UserValidationService rejects malformed users before they reach the
// wrapped UserService. Validation failures wrap ErrInvalidDataProvided.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) GetUser(ctx context.Context, id string) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateUser(ctx, user)
}

// UpdateUser does not require a password: an empty one keeps the stored hash.
// A new password is checked like on create.
func (v *UserValidationService) UpdateUser(ctx context.Context, id string, modified models.User) (models.User, error) {
	fields := []string{validators.FieldEmail}
	if modified.Password != "" {
		fields = append(fields, validators.FieldPassword)
	}
	if err := v.validator.Validate(ctx, modified, fields...); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateUser(ctx, id, modified)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id string) error {
	return v.inner.DeleteUser(ctx, id)
}

// PropertyValidationService rejects malformed properties before they reach
// the wrapped PropertyService.
type PropertyValidationService struct {
	inner     PropertyService
	validator validators.Validator
}

func NewPropertyValidationService() PropertyServiceWrapper {
	return &PropertyValidationService{
		validator: validators.NewPropertyValidator(),
	}
}

func (v *PropertyValidationService) Wrap(inner PropertyService) PropertyService {
	v.inner = inner
	return v
}

func (v *PropertyValidationService) GetProperty(ctx context.Context, id string) (models.Property, error) {
	return v.inner.GetProperty(ctx, id)
}

func (v *PropertyValidationService) ListProperties(ctx context.Context) ([]models.Property, error) {
	return v.inner.ListProperties(ctx)
}

func (v *PropertyValidationService) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	if err := v.validator.Validate(ctx, property); err != nil {
		return models.Property{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateProperty(ctx, property)
}

func (v *PropertyValidationService) UpdateProperty(ctx context.Context, id string, modified models.Property) (models.Property, error) {
	if err := v.validator.Validate(ctx, modified); err != nil {
		return models.Property{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateProperty(ctx, id, modified)
}

func (v *PropertyValidationService) DeleteProperty(ctx context.Context, id string) error {
	return v.inner.DeleteProperty(ctx, id)
}
