package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-estate-api/internal/validators"
	"github.com/MKhiriev/go-estate-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerUserService struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	updateFn func(ctx context.Context, id string, modified models.User) (models.User, error)
	deleted  []string
}

func (m *mockInnerUserService) GetUser(ctx context.Context, id string) (models.User, error) {
	return models.User{ID: id}, nil
}
func (m *mockInnerUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return []models.User{}, nil
}
func (m *mockInnerUserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}
func (m *mockInnerUserService) UpdateUser(ctx context.Context, id string, modified models.User) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, modified)
	}
	return modified, nil
}
func (m *mockInnerUserService) DeleteUser(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockInnerPropertyService struct {
	calls int
}

func (m *mockInnerPropertyService) GetProperty(ctx context.Context, id string) (models.Property, error) {
	m.calls++
	return models.Property{ID: id}, nil
}
func (m *mockInnerPropertyService) ListProperties(ctx context.Context) ([]models.Property, error) {
	m.calls++
	return []models.Property{}, nil
}
func (m *mockInnerPropertyService) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	m.calls++
	return p, nil
}
func (m *mockInnerPropertyService) UpdateProperty(ctx context.Context, id string, p models.Property) (models.Property, error) {
	m.calls++
	p.ID = id
	return p, nil
}
func (m *mockInnerPropertyService) DeleteProperty(ctx context.Context, id string) error {
	m.calls++
	return nil
}

// ─────────────────────────────────────────────
// UserValidationService
// ─────────────────────────────────────────────

func TestUserValidationService_CreateUser(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{name: "valid", user: models.User{Email: "jane@example.com", Password: "pw"}},
		{name: "missing email", user: models.User{Password: "pw"}, wantErr: validators.ErrEmptyEmail},
		{name: "malformed email", user: models.User{Email: "not-an-email", Password: "pw"}, wantErr: validators.ErrInvalidEmail},
		{name: "missing password", user: models.User{Email: "jane@example.com"}, wantErr: validators.ErrEmptyPassword},
		{name: "password too long", user: models.User{Email: "jane@example.com", Password: strings.Repeat("a", 73)}, wantErr: validators.ErrLongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			inner := &mockInnerUserService{createFn: func(_ context.Context, u models.User) (models.User, error) {
				called = true
				return u, nil
			}}
			svc := NewUserValidationService().Wrap(inner)

			_, err := svc.CreateUser(context.Background(), tt.user)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.True(t, called)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, called, "inner service must not be reached")
		})
	}
}

func TestUserValidationService_UpdateUser_PasswordOptional(t *testing.T) {
	inner := &mockInnerUserService{}
	svc := NewUserValidationService().Wrap(inner)

	got, err := svc.UpdateUser(context.Background(), "u-1", models.User{Email: "jane@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got.Email)
}

func TestUserValidationService_UpdateUser_InvalidEmail(t *testing.T) {
	called := false
	inner := &mockInnerUserService{updateFn: func(context.Context, string, models.User) (models.User, error) {
		called = true
		return models.User{}, nil
	}}
	svc := NewUserValidationService().Wrap(inner)

	_, err := svc.UpdateUser(context.Background(), "u-1", models.User{Email: "@@"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, called)
}

func TestUserValidationService_UpdateUser_LongPassword(t *testing.T) {
	called := false
	inner := &mockInnerUserService{updateFn: func(context.Context, string, models.User) (models.User, error) {
		called = true
		return models.User{}, nil
	}}
	svc := NewUserValidationService().Wrap(inner)

	_, err := svc.UpdateUser(context.Background(), "u-1", models.User{
		Email:    "jane@example.com",
		Password: strings.Repeat("a", 73),
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrLongPassword)
	assert.False(t, called)
}

func TestUserValidationService_PassThrough(t *testing.T) {
	inner := &mockInnerUserService{}
	svc := NewUserValidationService().Wrap(inner)
	ctx := context.Background()

	u, err := svc.GetUser(ctx, "u-7")
	require.NoError(t, err)
	assert.Equal(t, "u-7", u.ID)

	_, err = svc.ListUsers(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, "u-7"))
	assert.Equal(t, []string{"u-7"}, inner.deleted)
}

// ─────────────────────────────────────────────
// PropertyValidationService
// ─────────────────────────────────────────────

func TestPropertyValidationService_Create(t *testing.T) {
	tests := []struct {
		name     string
		property models.Property
		wantErr  error
	}{
		{name: "valid", property: models.Property{Title: "Loft", Price: 100, Bedrooms: 1, Area: 40}},
		{name: "empty title", property: models.Property{Price: 100}, wantErr: validators.ErrEmptyTitle},
		{name: "negative price", property: models.Property{Title: "Loft", Price: -1}, wantErr: validators.ErrNegativePrice},
		{name: "negative bedrooms", property: models.Property{Title: "Loft", Bedrooms: -2}, wantErr: validators.ErrNegativeBedrooms},
		{name: "negative area", property: models.Property{Title: "Loft", Area: -0.5}, wantErr: validators.ErrNegativeArea},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerPropertyService{}
			svc := NewPropertyValidationService().Wrap(inner)

			_, err := svc.CreateProperty(context.Background(), tt.property)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, 1, inner.calls)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, inner.calls)
		})
	}
}

func TestPropertyValidationService_Update(t *testing.T) {
	inner := &mockInnerPropertyService{}
	svc := NewPropertyValidationService().Wrap(inner)

	_, err := svc.UpdateProperty(context.Background(), "p-1", models.Property{Title: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Zero(t, inner.calls)

	got, err := svc.UpdateProperty(context.Background(), "p-1", models.Property{Title: "Loft"})
	require.NoError(t, err)
	assert.Equal(t, "p-1", got.ID)
}

func TestPropertyValidationService_PassThrough(t *testing.T) {
	inner := &mockInnerPropertyService{}
	svc := NewPropertyValidationService().Wrap(inner)
	ctx := context.Background()

	_, _ = svc.GetProperty(ctx, "p")
	_, _ = svc.ListProperties(ctx)
	_ = svc.DeleteProperty(ctx, "p")

	assert.Equal(t, 3, inner.calls)
}
