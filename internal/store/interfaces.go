package store

import (
	"context"

	"github.com/MKhiriev/go-estate-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

// UserRepository persists [models.User] records. Every write is a single
// auto-committed statement.
type UserRepository interface {
	// FindUserByID returns ErrUserNotFound when no row has the given id.
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindAllUsers(ctx context.Context) ([]models.User, error)
	// CreateUser assigns ID, CreatedAt and UpdatedAt and returns the stored record.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// UpdateUser overwrites every mutable column and refreshes UpdatedAt.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// PropertyRepository persists [models.Property] records.
type PropertyRepository interface {
	FindPropertyByID(ctx context.Context, id string) (models.Property, error)
	FindAllProperties(ctx context.Context) ([]models.Property, error)
	CreateProperty(ctx context.Context, property models.Property) (models.Property, error)
	UpdateProperty(ctx context.Context, property models.Property) (models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}

// Pinger reports whether the underlying database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
