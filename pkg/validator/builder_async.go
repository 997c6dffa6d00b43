package validator

import (
	"context"

	"github.com/UBF21/Vali-Validation/pkg/async"
)

// MustAsync registers a standalone asynchronous check on the builder's
// property. It does not join the batched rule and WithMessage does not reach
// it; message sets its failure text and defaults to a generic one when empty.
// A nil predicate panics with a ConfigError. An error returned by pred aborts
// the validation run.
func (b *RuleBuilder[T, P]) MustAsync(pred func(ctx context.Context, value P) (bool, error), message string) *RuleBuilder[T, P] {
	if pred == nil {
		configPanic(b.property.Name, "MustAsync", "predicate must not be nil")
	}
	if message == "" {
		message = b.msg(msgInvalid)
	}

	name, get := b.property.Name, b.property.Get
	b.validator.register(&executor[T]{
		property: name,
		kind:     standaloneRule,
		suspending: func(ctx context.Context, instance T) *async.Future[[]failure] {
			return async.Async(ctx, get(instance), func(ctx context.Context, value P) ([]failure, error) {
				return verdict(name, message)(pred(ctx, value))
			})
		},
	})
	return b
}

// DependentRuleAsync registers a standalone asynchronous check that reads both
// the builder's property and dependent from the same instance. Failures are
// reported under the builder's property. A dependent property without a name
// or accessor, or a nil predicate, panics with a ConfigError.
//
//	validator.DependentRuleAsync(
//	    validator.RuleFor(v, "ConfirmPassword", func(u Signup) string { return u.ConfirmPassword }),
//	    validator.Field("Password", func(u Signup) string { return u.Password }),
//	    func(_ context.Context, confirm, password string) (bool, error) { return confirm == password, nil },
//	    "Passwords do not match.",
//	)
func DependentRuleAsync[T, P, D any](
	b *RuleBuilder[T, P],
	dependent Property[T, D],
	pred func(ctx context.Context, value P, dependent D) (bool, error),
	message string,
) *RuleBuilder[T, P] {
	dependent.check("DependentRuleAsync")
	if pred == nil {
		configPanic(b.property.Name, "DependentRuleAsync", "predicate must not be nil")
	}
	if message == "" {
		message = b.msg(msgDependent, dependent.Name)
	}

	type pair struct {
		value     P
		dependent D
	}

	name, get := b.property.Name, b.property.Get
	b.validator.register(&executor[T]{
		property: name,
		kind:     standaloneRule,
		suspending: func(ctx context.Context, instance T) *async.Future[[]failure] {
			in := pair{value: get(instance), dependent: dependent.Get(instance)}
			return async.Async(ctx, in, func(ctx context.Context, in pair) ([]failure, error) {
				return verdict(name, message)(pred(ctx, in.value, in.dependent))
			})
		},
	})
	return b
}

func verdict(property, message string) func(bool, error) ([]failure, error) {
	return func(ok bool, err error) ([]failure, error) {
		if err != nil || ok {
			return nil, err
		}
		return []failure{{property: property, message: message}}, nil
	}
}
