package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/migrations"
)

// ErrorClassification tells a repository how to react to a failed statement.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures (lost connection, deadlock,
	// busy database) that may succeed on another attempt.
	Retryable

	// UniqueViolation marks a unique constraint violation.
	UniqueViolation
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

var defaultRetryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 500 * time.Millisecond}

// DB wraps *sql.DB with the driver specific pieces the repositories need:
// the squirrel placeholder format and the error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	retryDelays        []time.Duration
}

func newDB(conn *sql.DB, driver string, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
		retryDelays:        defaultRetryDelays,
	}
}

// Driver returns the database/sql driver name the connection was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded migrations using the dialect of db's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// withRetry runs op and repeats it after each of db.retryDelays while the
// returned error is classified as Retryable.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for _, delay := range db.retryDelays {
		if err == nil || db.classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Str("func", "*DB.withRetry").Msg("retrying statement")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		err = op()
	}
	return err
}

func nowUTC() time.Time {
	// Postgres stores microseconds
	return time.Now().UTC().Truncate(time.Microsecond)
}

// exec runs a write statement with retries and reports the number of
// affected rows.
func (db *DB) exec(ctx context.Context, query string, args []any) (int64, error) {
	var affected int64
	err := db.withRetry(ctx, func() error {
		res, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}
