package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-estate-api/internal/config"
	"github.com/MKhiriev/go-estate-api/internal/logger"
)

type fixedIDGenerator string

func (g fixedIDGenerator) Generate() string { return string(g) }

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	db := newDB(conn, config.DriverPostgres, sq.Dollar, NewPostgresErrorClassifier(), logger.Nop())
	db.retryDelays = []time.Duration{0, 0}
	return db, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

