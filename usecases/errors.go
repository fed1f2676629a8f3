package usecases

import "errors"

// Outcome kinds for failed preconditions. Handlers translate these to HTTP
// statuses; everything here is caller-caused and leaves no partial writes
// behind, because every check runs before any mutation.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidState      = errors.New("invalid state")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnauthenticated   = errors.New("invalid credentials")
)
