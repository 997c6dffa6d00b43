// Package validator provides a fluent, type-safe rule engine for validating
// struct instances.
//
// A Validator is created once per type and rules are declared on it through
// RuleBuilder chains, one chain per property. A property is a name paired
// with an accessor function, so rules never depend on reflection over struct
// fields and renaming a field is a compile error, not a silent miss.
//
//	v := validator.New[User]()
//	validator.RuleFor(v, "Name", func(u User) string { return u.Name }).
//	    NotEmpty().
//	    MinimumLength(3)
//	validator.RuleFor(v, "Email", func(u User) string { return u.Email }).
//	    NotEmpty().
//	    Email()
//	validator.RuleFor(v, "Age", func(u User) int { return u.Age }).
//	    Positive()
//
//	res, err := v.Validate(u)
//
// # Rules
//
// Synchronous checks declared on one builder are folded into a single batched
// rule, registered when the first check is declared. The batched rule reads
// the builder's checks at evaluation time, so a check chained after
// registration is still evaluated. WithMessage replaces the message of the
// most recent synchronous check only.
//
// MustAsync and DependentRuleAsync register standalone rules at the point
// they are declared. DependentRuleAsync reads a second property from the same
// instance and reports under the builder's property.
//
// Rules run strictly one after another in registration order, asynchronous
// ones included. Validate and ValidateAsync share one evaluation path and
// produce identical results for the same rules and instance.
//
// # Errors
//
// A failed check is not an error: it is recorded in the Result under its
// property. The error return of Validate is reserved for rules that could not
// run at all, reported as an *EvaluationError, and for context cancellation,
// in which case the partial Result is returned alongside ctx.Err().
//
// Structurally invalid declarations, such as an empty property name or a sign
// check on a string property, panic with a *ConfigError during setup.
//
// # Results
//
// Result keeps properties in the order they first failed and messages in the
// order their checks failed. It marshals to a JSON object with the same key
// order and implements error through Err, so an invalid Result can be returned
// up the stack and recovered with errors.As.
package validator
