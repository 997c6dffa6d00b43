package validator

import (
	"fmt"
	"reflect"
	"time"

	"github.com/UBF21/Vali-Validation/pkg/predicate"
)

type builderState uint8

const (
	// accumulating: no check declared yet, nothing registered.
	accumulating builderState = iota
	// materialized: the batched rule is registered and reads entries lazily.
	materialized
)

type entry[P any] struct {
	check   func(P) (bool, error)
	message string
}

// RuleBuilder accumulates the checks declared for one property. The first
// synchronous check registers a single batched rule with the Validator; that
// rule reads the builder's checks when it runs, so checks chained later are
// still evaluated. Asynchronous and dependent checks are registered as their
// own rules at the point they are declared.
//
// A builder is meant for one fluent chain during setup and is not safe for
// concurrent use.
type RuleBuilder[T, P any] struct {
	validator *Validator[T]
	property  Property[T, P]
	entries   []entry[P]
	state     builderState
}

// RuleFor starts a rule chain for the property named name, read with get.
// It panics with a *ConfigError when v is nil, name is empty or get is nil.
//
//	validator.RuleFor(v, "Email", func(u User) string { return u.Email }).
//	    NotEmpty().
//	    Email()
func RuleFor[T, P any](v *Validator[T], name string, get func(T) P) *RuleBuilder[T, P] {
	return RuleForProperty(v, Field(name, get))
}

// RuleForProperty is RuleFor for a prepared Property.
func RuleForProperty[T, P any](v *Validator[T], p Property[T, P]) *RuleBuilder[T, P] {
	p.check("RuleFor")
	if v == nil {
		configPanic(p.Name, "RuleFor", "validator must not be nil")
	}
	return &RuleBuilder[T, P]{validator: v, property: p}
}

// Name returns the property name the builder reports under.
func (b *RuleBuilder[T, P]) Name() string {
	return b.property.Name
}

// WithMessage replaces the message of the most recently declared synchronous
// check. Without a prior check it does nothing.
func (b *RuleBuilder[T, P]) WithMessage(message string) *RuleBuilder[T, P] {
	if n := len(b.entries); n > 0 {
		b.entries[n-1].message = message
	}
	return b
}

// Must adds a custom synchronous check. A nil predicate always passes.
func (b *RuleBuilder[T, P]) Must(pred func(P) bool) *RuleBuilder[T, P] {
	if pred == nil {
		pred = func(P) bool { return true }
	}
	return b.add(pure(pred), b.msg(msgInvalid))
}

func (b *RuleBuilder[T, P]) add(check func(P) (bool, error), message string) *RuleBuilder[T, P] {
	b.entries = append(b.entries, entry[P]{check: check, message: message})
	if b.state == accumulating {
		b.validator.register(&executor[T]{
			property:  b.property.Name,
			kind:      batchedRule,
			immediate: b.evaluate,
		})
		b.state = materialized
	}
	return b
}

// evaluate runs the batched rule. It ranges over entries as they are at call
// time, not as they were at registration.
func (b *RuleBuilder[T, P]) evaluate(instance T) ([]failure, error) {
	value := b.property.Get(instance)

	var failures []failure
	for _, e := range b.entries {
		ok, err := e.check(value)
		if err != nil {
			return nil, err
		}
		if !ok {
			failures = append(failures, failure{property: b.property.Name, message: e.message})
		}
	}
	return failures, nil
}

func (b *RuleBuilder[T, P]) msg(format string, args ...any) string {
	return fmt.Sprintf(format, append([]any{b.property.Name}, args...)...)
}

func pure[P any](pred func(P) bool) func(P) (bool, error) {
	return func(v P) (bool, error) { return pred(v), nil }
}

func lift[P any](pred func(any) bool) func(P) (bool, error) {
	return func(v P) (bool, error) { return pred(v), nil }
}

func liftErr[P any](pred func(any) (bool, error)) func(P) (bool, error) {
	return func(v P) (bool, error) { return pred(v) }
}

// requireType panics with a ConfigError when P, after removing pointers, is
// not accepted. Interface types are only known at evaluation time and pass.
func (b *RuleBuilder[T, P]) requireType(rule, want string, accept func(reflect.Type) bool) {
	declared := reflect.TypeFor[P]()
	t := declared
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Interface || accept(t) {
		return
	}
	configPanic(b.property.Name, rule, fmt.Sprintf("requires %s, got %s", want, declared))
}

func isStringType(t reflect.Type) bool {
	return t.Kind() == reflect.String
}

func hasLength(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

func isCollection(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

func isNumeric(t reflect.Type) bool {
	return predicate.IsNumericKind(t.Kind())
}

func isTime(t reflect.Type) bool {
	return t == reflect.TypeFor[time.Time]()
}

func isOrdered(t reflect.Type) bool {
	return isNumeric(t) || isStringType(t) || isTime(t)
}
