// Package config loads the server configuration.
//
// [GetStructuredConfig] reads environment variables, then command-line
// flags, then an optional JSON file named by -c or CONFIG. The layers are
// merged with mergo in that order; a non-zero value in a later layer
// overrides the earlier ones. Defaults fill whatever is still empty and the
// result is validated:
//
//   - App: version, log level, not-found policy, password hasher.
//   - Storage.DB: driver (pgx or sqlite3), DSN, pool size, migrations.
//   - Server: address, timeouts, rate limit, metrics endpoint.
package config
