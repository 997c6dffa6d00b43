package validator

import "github.com/UBF21/Vali-Validation/pkg/predicate"

// Count requires exactly n elements.
func (b *RuleBuilder[T, P]) Count(n int) *RuleBuilder[T, P] {
	b.requireType("Count", "a slice, array or map", isCollection)
	return b.add(lift[P](func(v any) bool { return predicate.Count(v, n) }), b.msg(msgCount, n))
}

func (b *RuleBuilder[T, P]) NotEmptyCollection() *RuleBuilder[T, P] {
	b.requireType("NotEmptyCollection", "a slice, array or map", isCollection)
	return b.add(lift[P](predicate.HasItems), b.msg(msgNotEmptyCollection))
}
