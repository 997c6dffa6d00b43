package predicate

import "errors"

var (
	// ErrIncomparable is returned when two operands have no common ordering.
	ErrIncomparable = errors.New("predicate: operands are not comparable")

	// ErrNotNumeric is returned when a sign check receives a non-numeric value.
	ErrNotNumeric = errors.New("predicate: value is not numeric")
)
