package predicate

import "reflect"

func collectionLen(v any) (int, bool) {
	rv, ok := indirect(v)
	if !ok {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// Count reports whether the slice, array or map v holds exactly n elements.
func Count(v any, n int) bool {
	l, ok := collectionLen(v)
	return ok && l == n
}

// HasItems reports whether the slice, array or map v holds at least one element.
func HasItems(v any) bool {
	l, ok := collectionLen(v)
	return ok && l > 0
}
