// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-estate-api/internal/crypto"
	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/internal/store"
	"github.com/MKhiriev/go-estate-api/models"
)

// userService is the concrete implementation of UserService.
// Passwords never reach the repository in plaintext: they are hashed with
// hasher on create and on every update that carries a new password.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.FindAllUsers(ctx)
}

func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	user.Password = hash

	return s.userRepository.CreateUser(ctx, user)
}

// UpdateUser loads the stored user first so that a missing id is reported
// as store.ErrUserNotFound before anything is hashed or written.
func (s *userService) UpdateUser(ctx context.Context, id string, modified models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	existing, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if modified.Password == "" {
		modified.Password = existing.Password
	} else {
		hash, err := s.hasher.Hash(modified.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("error hashing password")
			return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
		}
		modified.Password = hash
	}

	models.MergeUser(&existing, modified)

	return s.userRepository.UpdateUser(ctx, existing)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepository.FindUserByID(ctx, id); err != nil {
		return err
	}

	return s.userRepository.DeleteUser(ctx, id)
}
