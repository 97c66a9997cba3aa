// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the estate REST API.
//
// [ServerAdapter] hides the transport from callers. Non-2xx answers are
// mapped to the sentinel errors in errors.go so that callers can use
// [errors.Is], e.g. [ErrNotFound] for 404 and for the legacy "null" body.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-estate-api/models"
)

// ServerAdapter talks to a running estate API server.
type ServerAdapter interface {
	// Health returns nil when the server reports status UP.
	Health(ctx context.Context) error
	Version(ctx context.Context) (string, error)

	GetUser(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, id string, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id string) error

	GetProperty(ctx context.Context, id string) (models.Property, error)
	ListProperties(ctx context.Context) ([]models.Property, error)
	CreateProperty(ctx context.Context, property models.Property) (models.Property, error)
	UpdateProperty(ctx context.Context, id string, property models.Property) (models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}
