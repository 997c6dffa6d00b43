package validator

import "github.com/UBF21/Vali-Validation/pkg/predicate"

// FutureDate, PastDate and Today compare against the Validator's clock at
// evaluation time.

func (b *RuleBuilder[T, P]) FutureDate() *RuleBuilder[T, P] {
	b.requireType("FutureDate", "time.Time", isTime)
	now := b.validator.now
	return b.add(lift[P](func(v any) bool { return predicate.InFuture(v, now()) }), b.msg(msgFutureDate))
}

func (b *RuleBuilder[T, P]) PastDate() *RuleBuilder[T, P] {
	b.requireType("PastDate", "time.Time", isTime)
	now := b.validator.now
	return b.add(lift[P](func(v any) bool { return predicate.InPast(v, now()) }), b.msg(msgPastDate))
}

func (b *RuleBuilder[T, P]) Today() *RuleBuilder[T, P] {
	b.requireType("Today", "time.Time", isTime)
	now := b.validator.now
	return b.add(lift[P](func(v any) bool { return predicate.SameDay(v, now()) }), b.msg(msgToday))
}
