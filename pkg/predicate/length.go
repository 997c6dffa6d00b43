package predicate

import (
	"reflect"
	"unicode/utf8"
)

// Length returns the number of characters in a string or the number of
// elements in a slice, array or map. ok is false for nil and for any other kind.
func Length(v any) (n int, ok bool) {
	rv, ok := indirect(v)
	if !ok {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

func MinLength(v any, min int) bool {
	n, ok := Length(v)
	return ok && n >= min
}

func MaxLength(v any, max int) bool {
	n, ok := Length(v)
	return ok && n <= max
}

// LengthBetween reports whether the length of v is within [min, max].
func LengthBetween(v any, min, max int) bool {
	n, ok := Length(v)
	return ok && n >= min && n <= max
}
