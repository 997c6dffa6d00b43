package predicate

import (
	"fmt"
	"math"
)

// signNaN marks a NaN float: neither positive, negative nor zero.
const signNaN = 2

// sign returns -1, 0, +1 or signNaN for a numeric v. ok is false when v is
// absent.
func sign(v any) (s int, ok bool, err error) {
	rv, ok := indirect(v)
	if !ok {
		return 0, false, nil
	}
	k := rv.Kind()
	switch {
	case isSigned(k):
		n := rv.Int()
		return cmpZero(n > 0, n < 0), true, nil
	case isUnsigned(k):
		return cmpZero(rv.Uint() > 0, false), true, nil
	case isFloat(k):
		f := rv.Float()
		if math.IsNaN(f) {
			return signNaN, true, nil
		}
		return cmpZero(f > 0, f < 0), true, nil
	}
	return 0, true, fmt.Errorf("%w: %s", ErrNotNumeric, rv.Type())
}

func cmpZero(pos, neg bool) int {
	switch {
	case pos:
		return 1
	case neg:
		return -1
	}
	return 0
}

// Positive reports whether v is strictly greater than zero.
func Positive(v any) (bool, error) {
	s, ok, err := sign(v)
	return ok && err == nil && s == 1, err
}

// Negative reports whether v is strictly less than zero.
func Negative(v any) (bool, error) {
	s, ok, err := sign(v)
	return ok && err == nil && s == -1, err
}

// NotZero reports whether v is present and not zero. NaN is not zero.
func NotZero(v any) (bool, error) {
	s, ok, err := sign(v)
	return ok && err == nil && s != 0, err
}
