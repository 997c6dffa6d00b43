package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every ConfigError.
	ErrConfiguration = errors.New("validator: invalid rule configuration")

	// ErrEvaluation is wrapped by every EvaluationError.
	ErrEvaluation = errors.New("validator: rule evaluation failed")
)

// ConfigError reports a rule declared with structurally invalid input, such as
// an empty property name, a nil accessor or a check that cannot apply to the
// property's type. It is a programming mistake, so rule declaration panics with
// a *ConfigError rather than returning it.
type ConfigError struct {
	Property string
	Rule     string
	Reason   string
}

func (e *ConfigError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("validator: %s: %s", e.Rule, e.Reason)
	}
	return fmt.Sprintf("validator: %s on %q: %s", e.Rule, e.Property, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

// EvaluationError reports a rule whose predicate failed to run, as opposed to a
// predicate that ran and rejected the value. Evaluation stops at the first
// such error and no partial Result is returned.
type EvaluationError struct {
	Property string
	Err      error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("validator: evaluating %q: %v", e.Property, e.Err)
}

func (e *EvaluationError) Unwrap() []error {
	return []error{ErrEvaluation, e.Err}
}

func configPanic(property, rule, reason string) {
	panic(&ConfigError{Property: property, Rule: rule, Reason: reason})
}
