// Package apperror defines the error taxonomy shared by services and
// handlers. Services wrap store failures into one of these sentinels; the
// HTTP layer maps each sentinel to a distinct response status.
package apperror

import "errors"

var (
	// ErrNotFound means no document matched a key-based lookup.
	ErrNotFound = errors.New("not found")

	// ErrValidation means the caller's input failed the documented
	// required-field set or was otherwise malformed.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState means a multi-step operation observed a prior step's
	// result missing or partial.
	ErrInvalidState = errors.New("invalid state")

	// ErrStoreUnavailable means the document store could not complete a call.
	ErrStoreUnavailable = errors.New("store unavailable")
)
