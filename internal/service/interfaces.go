package service

import (
	"context"

	"github.com/MKhiriev/go-estate-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService orchestrates the /users resource: lookup, password hashing,
// merge and persistence.
type UserService interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// CreateUser hashes user.Password and stores the user.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// UpdateUser merges modified onto the stored user with the given id.
	// An empty modified.Password keeps the stored hash.
	UpdateUser(ctx context.Context, id string, modified models.User) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// PropertyService orchestrates the /properties resource.
type PropertyService interface {
	GetProperty(ctx context.Context, id string) (models.Property, error)
	ListProperties(ctx context.Context) ([]models.Property, error)
	CreateProperty(ctx context.Context, property models.Property) (models.Property, error)
	UpdateProperty(ctx context.Context, id string, modified models.Property) (models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}

// AppInfoService exposes build and runtime information about the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// CheckHealth returns nil when the database answers a ping.
	CheckHealth(ctx context.Context) error
}

// UserServiceWrapper decorates a UserService with extra behaviour such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// PropertyServiceWrapper decorates a PropertyService.
type PropertyServiceWrapper interface {
	Wrap(PropertyService) PropertyService
}
