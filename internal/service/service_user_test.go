// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-estate-api/internal/crypto"
	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/internal/mock"
	"github.com/MKhiriev/go-estate-api/internal/service"
	"github.com/MKhiriev/go-estate-api/internal/store"
	"github.com/MKhiriev/go-estate-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUserServiceWithMocks(t *testing.T) (service.UserService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	return service.NewUserService(repo, hasher, logger.Nop()), repo, hasher
}

// --- CreateUser ---

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	svc, repo, hasher := newUserServiceWithMocks(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	repo.EXPECT().
		CreateUser(ctx, models.User{Email: "a@b.co", Password: "hashed"}).
		Return(models.User{ID: "u-1", Email: "a@b.co", Password: "hashed"}, nil)

	got, err := svc.CreateUser(ctx, models.User{Email: "a@b.co", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "hashed", got.Password)
}

func TestUserService_CreateUser_HashError(t *testing.T) {
	svc, _, hasher := newUserServiceWithMocks(t)

	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("entropy exhausted"))

	_, err := svc.CreateUser(context.Background(), models.User{Email: "a@b.co", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrHashingPassword)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	svc, repo, hasher := newUserServiceWithMocks(t)

	hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.CreateUser(context.Background(), models.User{Email: "a@b.co", Password: "x"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_CreateUser_RealBcryptVerifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := crypto.NewBcryptHasher(4)
	svc := service.NewUserService(repo, hasher, logger.Nop())

	var stored models.User
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			stored = u
			return u, nil
		})

	_, err := svc.CreateUser(context.Background(), models.User{Email: "a@b.co", Password: "plain"})
	require.NoError(t, err)

	assert.NotEqual(t, "plain", stored.Password)
	assert.NoError(t, hasher.Compare(stored.Password, "plain"))
}

// --- GetUser / ListUsers ---

func TestUserService_GetUser_PassesThrough(t *testing.T) {
	svc, repo, _ := newUserServiceWithMocks(t)

	repo.EXPECT().FindUserByID(gomock.Any(), "missing").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetUser(context.Background(), "missing")

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	svc, repo, _ := newUserServiceWithMocks(t)

	repo.EXPECT().FindAllUsers(gomock.Any()).Return([]models.User{{ID: "1"}, {ID: "2"}}, nil)

	users, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

// --- UpdateUser ---

func TestUserService_UpdateUser_EmptyPasswordKeepsHash(t *testing.T) {
	svc, repo, _ := newUserServiceWithMocks(t)
	ctx := context.Background()

	existing := models.User{ID: "u-1", Email: "old@b.co", FirstName: "Old", Password: "stored-hash"}
	repo.EXPECT().FindUserByID(ctx, "u-1").Return(existing, nil)
	repo.EXPECT().
		UpdateUser(ctx, models.User{ID: "u-1", Email: "new@b.co", FirstName: "New", Password: "stored-hash"}).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) { return u, nil })

	got, err := svc.UpdateUser(ctx, "u-1", models.User{Email: "new@b.co", FirstName: "New"})

	require.NoError(t, err)
	assert.Equal(t, "stored-hash", got.Password)
	assert.Equal(t, "new@b.co", got.Email)
}

func TestUserService_UpdateUser_NewPasswordIsHashed(t *testing.T) {
	svc, repo, hasher := newUserServiceWithMocks(t)

	repo.EXPECT().FindUserByID(gomock.Any(), "u-1").Return(models.User{ID: "u-1", Password: "old-hash"}, nil)
	hasher.EXPECT().Hash("new-plain").Return("new-hash", nil)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) { return u, nil })

	got, err := svc.UpdateUser(context.Background(), "u-1", models.User{Email: "a@b.co", Password: "new-plain"})

	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.Password)
}

func TestUserService_UpdateUser_IgnoresBodyID(t *testing.T) {
	svc, repo, _ := newUserServiceWithMocks(t)

	repo.EXPECT().FindUserByID(gomock.Any(), "u-1").Return(models.User{ID: "u-1", Password: "h"}, nil)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) { return u, nil })

	got, err := svc.UpdateUser(context.Background(), "u-1", models.User{ID: "other", Email: "a@b.co"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
}

func TestUserService_UpdateUser_NotFoundSkipsWrite(t *testing.T) {
	svc, repo, _ := newUserServiceWithMocks(t)

	repo.EXPECT().FindUserByID(gomock.Any(), "missing").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateUser(context.Background(), "missing", models.User{Email: "a@b.co", Password: "p"})

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_UpdateUser_HashError(t *testing.T) {
	svc, repo, hasher := newUserServiceWithMocks(t)

	repo.EXPECT().FindUserByID(gomock.Any(), "u-1").Return(models.User{ID: "u-1"}, nil)
	hasher.EXPECT().Hash("p").Return("", errors.New("boom"))

	_, err := svc.UpdateUser(context.Background(), "u-1", models.User{Email: "a@b.co", Password: "p"})

	assert.ErrorIs(t, err, service.ErrHashingPassword)
}

// --- DeleteUser ---

func TestUserService_DeleteUser_Success(t *testing.T) {
	svc, repo, _ := newUserServiceWithMocks(t)

	gomock.InOrder(
		repo.EXPECT().FindUserByID(gomock.Any(), "u-1").Return(models.User{ID: "u-1"}, nil),
		repo.EXPECT().DeleteUser(gomock.Any(), "u-1").Return(nil),
	)

	assert.NoError(t, svc.DeleteUser(context.Background(), "u-1"))
}

func TestUserService_DeleteUser_NotFoundSkipsDelete(t *testing.T) {
	svc, repo, _ := newUserServiceWithMocks(t)

	repo.EXPECT().FindUserByID(gomock.Any(), "missing").Return(models.User{}, store.ErrUserNotFound)

	err := svc.DeleteUser(context.Background(), "missing")

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
