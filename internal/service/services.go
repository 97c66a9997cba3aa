package service

import (
	"github.com/MKhiriev/go-estate-api/internal/config"
	"github.com/MKhiriev/go-estate-api/internal/crypto"
	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/internal/store"
)

type Services struct {
	UserService     UserService
	PropertyService PropertyService
	AppInfoService  AppInfoService
}

// NewServices builds every service on top of storages. User and property
// services are wrapped with input validation.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, storages.DB, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserValidationService().Wrap(
		NewUserService(storages.UserRepository, hasher, logger),
	)
	propertyService := NewPropertyValidationService().Wrap(
		NewPropertyService(storages.PropertyRepository, logger),
	)

	return &Services{
		UserService:     userService,
		PropertyService: propertyService,
		AppInfoService:  appInfoService,
	}, nil
}
