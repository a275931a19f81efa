package university

import "errors"

// Error kinds surfaced by the engine. Callers branch with errors.Is; the
// repositories and services wrap these with context via fmt.Errorf("%w: ...").
var (
	// ErrInvalidArgument means a required reference or parameter was nil or unset.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound means a lookup by id or unique name matched no row.
	ErrNotFound = errors.New("not found")

	// ErrConflict means an insert violated a uniqueness constraint.
	ErrConflict = errors.New("already exists")

	// ErrInconsistentState means an update or delete targeted a row that no
	// longer exists, meaning the caller holds a stale reference.
	ErrInconsistentState = errors.New("does not exist")
)
