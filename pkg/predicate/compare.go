package predicate

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
)

// Compare orders a against b and returns -1, 0 or +1. Numbers of any kind
// compare by value, strings lexically, and time.Time chronologically. Any
// other pairing, or a nil operand, yields ErrIncomparable.
func Compare(a, b any) (int, error) {
	av, ok := indirect(a)
	if !ok {
		return 0, fmt.Errorf("%w: left operand is nil", ErrIncomparable)
	}
	bv, ok := indirect(b)
	if !ok {
		return 0, fmt.Errorf("%w: right operand is nil", ErrIncomparable)
	}

	switch {
	case av.Type() == timeType && bv.Type() == timeType:
		at, _ := asTime(a)
		bt, _ := asTime(b)
		return at.Compare(bt), nil
	case IsNumericKind(av.Kind()) && IsNumericKind(bv.Kind()):
		return compareNumbers(av, bv), nil
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return strings.Compare(av.String(), bv.String()), nil
	}
	return 0, fmt.Errorf("%w: %s and %s", ErrIncomparable, av.Type(), bv.Type())
}

func compareNumbers(a, b reflect.Value) int {
	ak, bk := a.Kind(), b.Kind()
	switch {
	case isFloat(ak) || isFloat(bk):
		return cmp.Compare(toFloat(a), toFloat(b))
	case isSigned(ak) && isSigned(bk):
		return cmp.Compare(a.Int(), b.Int())
	case isUnsigned(ak) && isUnsigned(bk):
		return cmp.Compare(a.Uint(), b.Uint())
	case isSigned(ak):
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	default:
		if b.Int() < 0 {
			return 1
		}
		return cmp.Compare(a.Uint(), uint64(b.Int()))
	}
}

// compareWith runs Compare unless v is absent, in which case the check fails
// without an error.
func compareWith(v, other any, accept func(int) bool) (bool, error) {
	if _, ok := indirect(v); !ok {
		return false, nil
	}
	c, err := Compare(v, other)
	if err != nil {
		return false, err
	}
	return accept(c), nil
}

func GreaterThan(v, other any) (bool, error) {
	return compareWith(v, other, func(c int) bool { return c > 0 })
}

func GreaterThanOrEqual(v, other any) (bool, error) {
	return compareWith(v, other, func(c int) bool { return c >= 0 })
}

func LessThan(v, other any) (bool, error) {
	return compareWith(v, other, func(c int) bool { return c < 0 })
}

func LessThanOrEqual(v, other any) (bool, error) {
	return compareWith(v, other, func(c int) bool { return c <= 0 })
}

// Between reports whether min <= v <= max.
func Between(v, min, max any) (bool, error) {
	lower, err := GreaterThanOrEqual(v, min)
	if err != nil || !lower {
		return false, err
	}
	return LessThanOrEqual(v, max)
}

// Equal reports whether v and other hold the same value after unwrapping
// pointers. Numbers compare by value across kinds and times by instant.
func Equal(v, other any) bool {
	av, ok := indirect(v)
	if !ok {
		return false
	}
	bv, ok := indirect(other)
	if !ok {
		return false
	}
	if (av.Type() == timeType && bv.Type() == timeType) ||
		(IsNumericKind(av.Kind()) && IsNumericKind(bv.Kind())) {
		c, err := Compare(v, other)
		return err == nil && c == 0
	}
	return reflect.DeepEqual(av.Interface(), bv.Interface())
}

// OneOf reports whether v equals any of the allowed values.
func OneOf(v any, allowed ...any) bool {
	for _, a := range allowed {
		if Equal(v, a) {
			return true
		}
	}
	return false
}
