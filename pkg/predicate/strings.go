package predicate

import (
	"strings"

	"golang.org/x/text/cases"
)

func HasPrefix(v any, prefix string) bool {
	s, ok := asString(v)
	return ok && strings.HasPrefix(s, prefix)
}

func HasSuffix(v any, suffix string) bool {
	s, ok := asString(v)
	return ok && strings.HasSuffix(s, suffix)
}

// Contains reports whether v contains substr. With ignoreCase set both sides
// are Unicode case-folded before the search.
func Contains(v any, substr string, ignoreCase bool) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	if ignoreCase {
		// A Caser carries state, so one is created per call.
		fold := cases.Fold()
		s = fold.String(s)
		substr = fold.String(substr)
	}
	return strings.Contains(s, substr)
}
