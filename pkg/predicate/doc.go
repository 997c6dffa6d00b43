// Package predicate is a catalog of pure, side-effect-free checks over a single
// value. The rule builder in package validator folds these into batched rules,
// but every function here is usable on its own.
//
// Predicates accept any and unwrap pointers and interfaces before inspecting
// the value. A nil or absent input never panics: every predicate returns false
// for it, except the presence family (IsNil, IsEmpty) which exists precisely to
// detect absence.
//
// # Families
//
//   - presence:   IsNil, IsEmpty
//   - length:     Length, MinLength, MaxLength, LengthBetween
//   - strings:    HasPrefix, HasSuffix, Contains
//   - format:     Matches, Email, URL, UUID, Alpha, Alphanumeric, Numeric
//   - comparison: Equal, Compare, GreaterThan, GreaterThanOrEqual, LessThan,
//     LessThanOrEqual, Between, OneOf
//   - sign:       Positive, Negative, NotZero
//   - date:       InFuture, InPast, SameDay
//   - collection: Count, HasItems
//
// # Errors
//
// Comparison and sign predicates return (bool, error). The error is not a
// validation failure: it reports that the operands cannot be ordered at all
// (ErrIncomparable) or that a sign check was applied to a non-numeric value
// (ErrNotNumeric). Callers should treat it as a programming fault.
//
// # Usage
//
//	ok := predicate.Email("user@example.com")
//	gt, err := predicate.GreaterThan(age, 17)
//	if err != nil {
//	    // operands are not comparable
//	}
package predicate
