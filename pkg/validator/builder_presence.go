package validator

import "github.com/UBF21/Vali-Validation/pkg/predicate"

// NotNull fails when the value is nil. Values of non-nillable types always pass.
func (b *RuleBuilder[T, P]) NotNull() *RuleBuilder[T, P] {
	return b.add(lift[P](func(v any) bool { return !predicate.IsNil(v) }), b.msg(msgNotNull))
}

// Null fails when the value is not nil.
func (b *RuleBuilder[T, P]) Null() *RuleBuilder[T, P] {
	return b.add(lift[P](predicate.IsNil), b.msg(msgNull))
}

// NotEmpty fails for nil, whitespace-only strings, collections without
// elements and zero values.
func (b *RuleBuilder[T, P]) NotEmpty() *RuleBuilder[T, P] {
	return b.add(lift[P](func(v any) bool { return !predicate.IsEmpty(v) }), b.msg(msgNotEmpty))
}

// Empty is the inverse of NotEmpty.
func (b *RuleBuilder[T, P]) Empty() *RuleBuilder[T, P] {
	return b.add(lift[P](predicate.IsEmpty), b.msg(msgEmpty))
}
