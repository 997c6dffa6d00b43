package predicate

import (
	"reflect"
	"strings"
)

// IsNil reports whether v is nil. Typed nil pointers, maps, slices, channels,
// functions and interfaces count as nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsEmpty reports whether v is absent or empty. Strings are empty when they
// hold only whitespace; slices, arrays, maps and channels when they have no
// elements; any other value when it equals its type's zero value.
func IsEmpty(v any) bool {
	rv, ok := indirect(v)
	if !ok {
		return true
	}
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	}
	return rv.IsZero()
}
