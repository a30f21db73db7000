package store

import "errors"

// Sentinel errors returned by repository and storage methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrListNotFound is returned when a list id has no revisions: it was
	// never created or it has been deleted.
	ErrListNotFound = errors.New("list was not found")

	// ErrIdentityNotFound is returned when no user is linked to a
	// provider-scoped natural key.
	ErrIdentityNotFound = errors.New("identity was not found")

	// ErrDuplicateIdentity is returned when linking an identity fails because
	// the natural key, or the user's identity for that provider, already
	// exists.
	ErrDuplicateIdentity = errors.New("identity already exists")

	// ErrUserNotFound is returned when a user id does not exist.
	ErrUserNotFound = errors.New("no user was found")

	// ErrRoleNotFound is returned when a role name is not seeded.
	ErrRoleNotFound = errors.New("role was not found")

	// ErrForbidden is returned when a requester tries to delete a list they
	// do not own.
	ErrForbidden = errors.New("requester does not own the list")

	// ErrRevisionConflict is returned by a conditional update when the list
	// has moved past the revision the write was based on.
	ErrRevisionConflict = errors.New("list revision conflict occurred")

	// ErrInvariantViolation is returned when stored data breaks a schema
	// invariant (a unique key matching two rows, a missing seeded role).
	ErrInvariantViolation = errors.New("storage invariant violated")

	// ErrUnsupportedProvider is returned for a provider without a table.
	ErrUnsupportedProvider = errors.New("unsupported identity provider")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when a DSN selects no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
