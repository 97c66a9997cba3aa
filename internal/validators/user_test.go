// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-estate-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validUser() models.User {
	return models.User{
		Email:     "jane.doe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "s3cret",
	}
}

// ---------------------------------------------------------------------------
// TestUserValidator_Dispatch
// ---------------------------------------------------------------------------

func TestUserValidator_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.Property{}), ErrUnsupportedType)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var u *models.User
		require.ErrorIs(t, v.Validate(ctx, u), ErrUnsupportedType)
	})

	t.Run("value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validUser()))
	})

	t.Run("pointer", func(t *testing.T) {
		u := validUser()
		require.NoError(t, v.Validate(ctx, &u))
	})
}

// ---------------------------------------------------------------------------
// TestUserValidator_Fields
// ---------------------------------------------------------------------------

func TestUserValidator_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *models.User)
		fields  []string
		wantErr error
	}{
		{name: "default fields valid", mutate: func(u *models.User) {}},
		{name: "empty email", mutate: func(u *models.User) { u.Email = "" }, wantErr: ErrEmptyEmail},
		{name: "blank email", mutate: func(u *models.User) { u.Email = "   " }, wantErr: ErrEmptyEmail},
		{name: "malformed email", mutate: func(u *models.User) { u.Email = "not-an-email" }, wantErr: ErrInvalidEmail},
		{name: "missing domain", mutate: func(u *models.User) { u.Email = "jane@" }, wantErr: ErrInvalidEmail},
		{
			name:   "empty password ignored by default",
			mutate: func(u *models.User) { u.Password = "" },
		},
		{
			name:   "password at bcrypt limit",
			mutate: func(u *models.User) { u.Password = strings.Repeat("a", MaxPasswordBytes) },
			fields: []string{FieldPassword},
		},
		{
			name:    "password over bcrypt limit",
			mutate:  func(u *models.User) { u.Password = strings.Repeat("a", MaxPasswordBytes+1) },
			fields:  []string{FieldPassword},
			wantErr: ErrLongPassword,
		},
		{
			name:    "multibyte password over bcrypt limit",
			mutate:  func(u *models.User) { u.Password = strings.Repeat("ā", 37) },
			fields:  []string{FieldPassword},
			wantErr: ErrLongPassword,
		},
		{
			name:    "empty password when requested",
			mutate:  func(u *models.User) { u.Password = "" },
			fields:  []string{FieldEmail, FieldPassword},
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "unknown field",
			mutate:  func(u *models.User) {},
			fields:  []string{"nickname"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := v.Validate(context.Background(), u, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
