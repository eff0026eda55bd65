package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTodoNotFound is returned when an operation targets a todo item that
	// does not exist — or exists but is owned by a different user. The two
	// cases are deliberately indistinguishable so that foreign items never
	// leak their existence.
	ErrTodoNotFound = errors.New("todo item was not found")

	// ErrSessionNotFound is returned when a session token does not resolve to
	// a live session. Revoked tokens produce this error forever after.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrTokenCollision is returned when a freshly generated session token is
	// already bound to a live session. With 256 bits of token entropy the
	// probability is negligible, but the condition is surfaced as an internal
	// error rather than silently overwriting someone's session.
	ErrTokenCollision = errors.New("session token collision")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails, including failure to acquire a pooled connection
	// before the request deadline.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
