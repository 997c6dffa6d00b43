package predicate

import "time"

// InFuture reports whether v is a time.Time strictly after now.
func InFuture(v any, now time.Time) bool {
	t, ok := asTime(v)
	return ok && t.After(now)
}

// InPast reports whether v is a time.Time strictly before now.
func InPast(v any, now time.Time) bool {
	t, ok := asTime(v)
	return ok && t.Before(now)
}

// SameDay reports whether v falls on the same calendar day as now, judged in
// now's location.
func SameDay(v any, now time.Time) bool {
	t, ok := asTime(v)
	if !ok {
		return false
	}
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
