package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/models"
)

type propertyRepository struct {
	db          *DB
	idGenerator IDGenerator
	logger      *logger.Logger
}

func NewPropertyRepository(db *DB, idGenerator IDGenerator, logger *logger.Logger) PropertyRepository {
	logger.Debug().Msg("creating property repository")
	return &propertyRepository{
		db:          db,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

func (r *propertyRepository) FindPropertyByID(ctx context.Context, id string) (models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPropertyByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.FindPropertyByID").Msg("error building query")
		return models.Property{}, err
	}

	var property models.Property
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		property, scanErr = scanProperty(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Property{}, ErrPropertyNotFound
	case err != nil:
		log.Err(err).Str("func", "*propertyRepository.FindPropertyByID").Msg("error selecting property")
		return models.Property{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return property, nil
}

func (r *propertyRepository) FindAllProperties(ctx context.Context) ([]models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAllPropertiesQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.FindAllProperties").Msg("error building query")
		return nil, err
	}

	var properties []models.Property
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		properties = make([]models.Property, 0)
		for rows.Next() {
			property, err := scanProperty(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			properties = append(properties, property)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.FindAllProperties").Msg("error selecting properties")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return properties, nil
}

func (r *propertyRepository) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	log := logger.FromContext(ctx)

	property.ID = r.idGenerator.Generate()
	property.CreatedAt = nowUTC()
	property.UpdatedAt = property.CreatedAt

	query, args, err := buildInsertPropertyQuery(r.db.builder, property)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.CreateProperty").Msg("error building query")
		return models.Property{}, err
	}

	if _, err = r.db.exec(ctx, query, args); err != nil {
		log.Err(err).Str("func", "*propertyRepository.CreateProperty").Msg("error inserting property")
		return models.Property{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return property, nil
}

func (r *propertyRepository) UpdateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	log := logger.FromContext(ctx)

	property.UpdatedAt = nowUTC()

	query, args, err := buildUpdatePropertyQuery(r.db.builder, property)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.UpdateProperty").Msg("error building query")
		return models.Property{}, err
	}

	affected, err := r.db.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.UpdateProperty").Msg("error updating property")
		return models.Property{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Property{}, ErrPropertyNotFound
	}

	return property, nil
}

func (r *propertyRepository) DeleteProperty(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePropertyQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.DeleteProperty").Msg("error building query")
		return err
	}

	affected, err := r.db.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.DeleteProperty").Msg("error deleting property")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}
