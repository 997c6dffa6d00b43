package checks

import "errors"

var (
	// ErrLookup wraps every store failure, so callers can tell an unreachable
	// store from a value that failed the check.
	ErrLookup = errors.New("checks: store lookup failed")

	ErrInvalidTarget = errors.New("checks: invalid lookup target")
)
