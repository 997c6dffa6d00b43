package checks

import (
	"context"
	"reflect"

	"github.com/UBF21/Vali-Validation/pkg/predicate"
)

// Predicate is the shape accepted by RuleBuilder.MustAsync.
type Predicate[P any] func(ctx context.Context, value P) (bool, error)

// lookupValue dereferences pointers and reports false for values that carry
// nothing to look up. Presence is left to NotNull and NotEmpty, so store
// checks pass on absent values.
func lookupValue(v any) (any, bool) {
	if predicate.IsEmpty(v) {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	return rv.Interface(), true
}

// negate inverts p for present values. Absent values still pass.
func negate[P any](p Predicate[P]) Predicate[P] {
	return func(ctx context.Context, value P) (bool, error) {
		if _, present := lookupValue(value); !present {
			return true, nil
		}
		ok, err := p(ctx, value)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}
