// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"time"
)

var knownLogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// defaults returns the values used for every field that is still empty after
// all sources have been merged.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:       "debug",
			NotFoundPolicy: NotFoundPolicyStrict,
			PasswordHasher: PasswordHasherBcrypt,
			BcryptCost:     10,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateBurst:       5000,
			MetricsPath:     "/metrics",
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// ErrInvalidStorageConfigs, ErrInvalidServerConfigs, ErrInvalidAppConfigs.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if db.Driver != DriverPostgres && db.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}
	if db.MaxOpenConns < 0 {
		return fmt.Errorf("%w: negative max open conns", ErrInvalidStorageConfigs)
	}

	srv := cfg.Server
	if srv.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if srv.RequestTimeout <= 0 || srv.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}
	if srv.RateLimit < 0 || srv.RateBurst < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidServerConfigs)
	}

	app := cfg.App
	if app.NotFoundPolicy != NotFoundPolicyStrict && app.NotFoundPolicy != NotFoundPolicyLegacy {
		return fmt.Errorf("%w: unknown not-found policy %q", ErrInvalidAppConfigs, app.NotFoundPolicy)
	}
	if app.PasswordHasher != PasswordHasherBcrypt && app.PasswordHasher != PasswordHasherArgon2 {
		return fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAppConfigs, app.PasswordHasher)
	}
	// bcrypt.MinCost..bcrypt.MaxCost
	if app.BcryptCost < 4 || app.BcryptCost > 31 {
		return fmt.Errorf("%w: bcrypt cost out of range", ErrInvalidAppConfigs)
	}
	if !slices.Contains(knownLogLevels, app.LogLevel) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, app.LogLevel)
	}

	return nil
}
