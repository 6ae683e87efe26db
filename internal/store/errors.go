package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup by email or ID matches no user.
	ErrUserNotFound = errors.New("no user was found")

	// ErrUnsupportedDSN is returned by [NewStorages] when the DSN scheme does
	// not select any known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN scheme")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a storage-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrConnectingDB is returned when the backend cannot be reached at boot.
	ErrConnectingDB = errors.New("error connecting database")

	// ErrMigrating is returned when schema migration or index creation fails.
	ErrMigrating = errors.New("error migrating database")
)
