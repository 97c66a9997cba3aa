package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-estate-api/models"
)

// Field names accepted by PropertyValidator.
const (
	FieldTitle    = "title"
	FieldPrice    = "price"
	FieldBedrooms = "bedrooms"
	FieldArea     = "area"
)

// PropertyValidator checks models.Property values received from clients.
type PropertyValidator struct{}

func NewPropertyValidator() Validator {
	return &PropertyValidator{}
}

// Validate accepts models.Property or *models.Property. Without explicit
// fields every rule is applied.
func (v *PropertyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Property:
		return v.validateProperty(ctx, value, fields...)
	case *models.Property:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateProperty(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PropertyValidator) validateProperty(_ context.Context, p models.Property, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPrice, FieldBedrooms, FieldArea}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(p.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldPrice:
			if p.Price < 0 {
				return ErrNegativePrice
			}
		case FieldBedrooms:
			if p.Bedrooms < 0 {
				return ErrNegativeBedrooms
			}
		case FieldArea:
			if p.Area < 0 {
				return ErrNegativeArea
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
