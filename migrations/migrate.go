// Package migrations embeds the SQL schema of go-estate-api and applies it
// with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// dialects maps database/sql driver names to goose dialects.
var dialects = map[string]goose.Dialect{
	"pgx":     goose.DialectPostgres,
	"sqlite3": goose.DialectSQLite3,
}

// Migrate applies every pending migration to db. driver is the database/sql
// driver name the connection was opened with ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: no dialect for driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
