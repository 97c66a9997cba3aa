package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user row matches the requested id.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPropertyNotFound is returned when no property row matches the
	// requested id.
	ErrPropertyNotFound = errors.New("property was not found")

	// ErrEmailAlreadyExists is returned when an insert or update would
	// violate the unique constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUnsupportedDriver is returned by NewStorages for an unknown
	// database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
