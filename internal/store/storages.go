// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-estate-api/internal/config"
	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/internal/utils"
)

// Storages bundles the open database and the repositories built on it.
type Storages struct {
	DB                 *DB
	UserRepository     UserRepository
	PropertyRepository PropertyRepository
}

// NewStorages connects to the database selected by cfg.Driver, applies the
// embedded migrations unless cfg.SkipMigrations is set, and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if !cfg.SkipMigrations {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			db.Close()
			return nil, err
		}
		log.Info().Str("func", "NewStorages").Msg("migrations applied")
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on an already open db.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	idGenerator := utils.NewUUIDGenerator()

	return &Storages{
		DB:                 db,
		UserRepository:     NewUserRepository(db, idGenerator, log),
		PropertyRepository: NewPropertyRepository(db, idGenerator, log),
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
