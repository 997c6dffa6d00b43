package validator

import "github.com/UBF21/Vali-Validation/pkg/predicate"

func (b *RuleBuilder[T, P]) Equal(other P) *RuleBuilder[T, P] {
	return b.add(lift[P](func(v any) bool { return predicate.Equal(v, other) }), b.msg(msgEqual, other))
}

func (b *RuleBuilder[T, P]) NotEqual(other P) *RuleBuilder[T, P] {
	return b.add(lift[P](func(v any) bool { return !predicate.Equal(v, other) }), b.msg(msgNotEqual, other))
}

func (b *RuleBuilder[T, P]) GreaterThan(other P) *RuleBuilder[T, P] {
	b.requireType("GreaterThan", "an ordered type", isOrdered)
	return b.add(liftErr[P](func(v any) (bool, error) { return predicate.GreaterThan(v, other) }), b.msg(msgGreaterThan, other))
}

func (b *RuleBuilder[T, P]) GreaterThanOrEqualTo(other P) *RuleBuilder[T, P] {
	b.requireType("GreaterThanOrEqualTo", "an ordered type", isOrdered)
	return b.add(liftErr[P](func(v any) (bool, error) { return predicate.GreaterThanOrEqual(v, other) }), b.msg(msgGreaterThanOrEqual, other))
}

func (b *RuleBuilder[T, P]) LessThan(other P) *RuleBuilder[T, P] {
	b.requireType("LessThan", "an ordered type", isOrdered)
	return b.add(liftErr[P](func(v any) (bool, error) { return predicate.LessThan(v, other) }), b.msg(msgLessThan, other))
}

func (b *RuleBuilder[T, P]) LessThanOrEqualTo(other P) *RuleBuilder[T, P] {
	b.requireType("LessThanOrEqualTo", "an ordered type", isOrdered)
	return b.add(liftErr[P](func(v any) (bool, error) { return predicate.LessThanOrEqual(v, other) }), b.msg(msgLessThanOrEqual, other))
}

// Between requires min <= value <= max.
func (b *RuleBuilder[T, P]) Between(min, max P) *RuleBuilder[T, P] {
	b.requireType("Between", "an ordered type", isOrdered)
	return b.add(liftErr[P](func(v any) (bool, error) { return predicate.Between(v, min, max) }), b.msg(msgBetween, min, max))
}

// Positive requires a value strictly greater than zero; zero fails.
func (b *RuleBuilder[T, P]) Positive() *RuleBuilder[T, P] {
	b.requireType("Positive", "a numeric type", isNumeric)
	return b.add(liftErr[P](predicate.Positive), b.msg(msgPositive))
}

// Negative requires a value strictly less than zero; zero fails.
func (b *RuleBuilder[T, P]) Negative() *RuleBuilder[T, P] {
	b.requireType("Negative", "a numeric type", isNumeric)
	return b.add(liftErr[P](predicate.Negative), b.msg(msgNegative))
}

func (b *RuleBuilder[T, P]) NotZero() *RuleBuilder[T, P] {
	b.requireType("NotZero", "a numeric type", isNumeric)
	return b.add(liftErr[P](predicate.NotZero), b.msg(msgNotZero))
}

// In requires the value to equal one of values.
func (b *RuleBuilder[T, P]) In(values ...P) *RuleBuilder[T, P] {
	allowed := make([]any, len(values))
	for i, v := range values {
		allowed[i] = v
	}
	return b.add(lift[P](func(v any) bool { return predicate.OneOf(v, allowed...) }), b.msg(msgIn, joinValues(values)))
}
