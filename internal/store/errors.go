package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when no record matches the requested
	// identifier or lookup key. Identifiers that are not valid UUIDs can never
	// match and produce the same error.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned when a user is created with a username
	// that is already registered.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrCredentialConflict is returned by a credential compare-and-swap when
	// the stored credential no longer matches the expected one, meaning
	// another request changed it after it was read.
	ErrCredentialConflict = errors.New("credential was changed concurrently")

	// ErrDuplicateRecord is returned when an insert violates a unique
	// constraint that has no more specific error.
	ErrDuplicateRecord = errors.New("record already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a multi-row result
	// fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
