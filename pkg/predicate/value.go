package predicate

import (
	"reflect"
	"time"
)

var timeType = reflect.TypeFor[time.Time]()

// indirect unwraps pointers and interfaces; ok is false when a nil is met on the way.
func indirect(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}

func asString(v any) (string, bool) {
	rv, ok := indirect(v)
	if !ok || rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

func asTime(v any) (time.Time, bool) {
	rv, ok := indirect(v)
	if !ok || rv.Type() != timeType {
		return time.Time{}, false
	}
	return rv.Interface().(time.Time), true
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// IsNumericKind reports whether k is an integer or floating point kind.
func IsNumericKind(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || isFloat(k)
}

func toFloat(rv reflect.Value) float64 {
	switch {
	case isSigned(rv.Kind()):
		return float64(rv.Int())
	case isUnsigned(rv.Kind()):
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}
