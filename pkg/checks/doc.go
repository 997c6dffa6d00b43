// Package checks provides asynchronous predicates backed by data stores, for
// use with RuleBuilder.MustAsync.
//
//	validator.RuleFor(v, "Email", func(s Signup) string { return s.Email }).
//	    NotEmpty().
//	    Email().
//	    MustAsync(checks.UniqueInPostgres[string](pool, "users", "email"), "The email is already registered.")
//
// Each constructor takes a narrow interface (RowQuerier, SetMemberChecker,
// DocumentCounter) rather than a concrete client, so checks can be exercised
// with fakes. Empty values pass every check; combine with NotEmpty when the
// value is required.
//
// A store failure is returned as an error wrapping ErrLookup. The validator
// treats it as an evaluation fault and aborts the run instead of reporting a
// validation message.
package checks
