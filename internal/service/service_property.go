package service

import (
	"context"

	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/internal/store"
	"github.com/MKhiriev/go-estate-api/models"
)

type propertyService struct {
	propertyRepository store.PropertyRepository

	logger *logger.Logger
}

func NewPropertyService(propertyRepository store.PropertyRepository, logger *logger.Logger) PropertyService {
	return &propertyService{
		propertyRepository: propertyRepository,
		logger:             logger,
	}
}

func (s *propertyService) GetProperty(ctx context.Context, id string) (models.Property, error) {
	return s.propertyRepository.FindPropertyByID(ctx, id)
}

func (s *propertyService) ListProperties(ctx context.Context) ([]models.Property, error) {
	return s.propertyRepository.FindAllProperties(ctx)
}

func (s *propertyService) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	return s.propertyRepository.CreateProperty(ctx, property)
}

func (s *propertyService) UpdateProperty(ctx context.Context, id string, modified models.Property) (models.Property, error) {
	existing, err := s.propertyRepository.FindPropertyByID(ctx, id)
	if err != nil {
		return models.Property{}, err
	}

	models.MergeProperty(&existing, modified)

	return s.propertyRepository.UpdateProperty(ctx, existing)
}

func (s *propertyService) DeleteProperty(ctx context.Context, id string) error {
	if _, err := s.propertyRepository.FindPropertyByID(ctx, id); err != nil {
		return err
	}

	return s.propertyRepository.DeleteProperty(ctx, id)
}
