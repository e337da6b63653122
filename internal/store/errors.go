package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match one user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the revision read before the update no longer matches the stored one,
	// meaning a concurrent request changed the user first.
	ErrVersionConflict = errors.New("user revision conflict occurred")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single user row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan user rows")
)

// Remote asset storage errors.
var (
	// ErrAssetDestroyFailed is returned when the media provider rejects or
	// cannot complete a delete request.
	ErrAssetDestroyFailed = errors.New("failed to destroy remote asset")

	// ErrUnknownAssetProvider is returned by [NewAssetStorage] for an
	// unsupported provider name.
	ErrUnknownAssetProvider = errors.New("unknown asset provider")
)
