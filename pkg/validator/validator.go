package validator

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/UBF21/Vali-Validation/pkg/async"
	"github.com/UBF21/Vali-Validation/pkg/logger"
)

// Validator holds the ordered rules declared for T and runs them against
// instances. Rules are declared once, typically in a constructor, and are
// never removed. After setup the rule list is read-only, so one Validator may
// validate many instances concurrently as long as user supplied predicates
// share no mutable state.
type Validator[T any] struct {
	rules        []*executor[T]
	logger       *slog.Logger
	now          func() time.Time
	asyncTimeout time.Duration
	typeName     string
}

// New creates an empty Validator for T.
func New[T any](opts ...Option) *Validator[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	typeName := reflect.TypeFor[T]().String()
	return &Validator[T]{
		logger:       o.logger.With(logger.ValidatorType(typeName)),
		now:          o.now,
		asyncTimeout: o.asyncTimeout,
		typeName:     typeName,
	}
}

// Rules returns the number of registered rules. A builder with any number of
// synchronous checks counts once; every asynchronous or dependent check counts
// on its own.
func (v *Validator[T]) Rules() int {
	return len(v.rules)
}

func (v *Validator[T]) register(e *executor[T]) {
	v.rules = append(v.rules, e)
	v.logger.Debug("rule registered",
		logger.Property(e.property),
		logger.RuleKind(e.kind.String()),
		logger.RulePosition(len(v.rules)-1),
	)
}

// Validate runs every rule against instance in registration order. An
// asynchronous rule blocks the caller until it resolves, before the next rule
// starts. The returned error is non-nil only when a predicate fails to run;
// failed checks are reported through the Result.
func (v *Validator[T]) Validate(instance T) (*Result, error) {
	return v.evaluate(context.Background(), instance)
}

// ValidateContext is Validate with cancellation. Once ctx is done the
// remaining rules are skipped and the partially filled Result is returned
// together with ctx.Err().
func (v *Validator[T]) ValidateContext(ctx context.Context, instance T) (*Result, error) {
	return v.evaluate(ctx, instance)
}

// ValidateAsync performs the same evaluation as ValidateContext on a Future.
// Rules still run one at a time in registration order, so for the same rules
// and instance the Result is identical to the one Validate produces.
func (v *Validator[T]) ValidateAsync(ctx context.Context, instance T) *async.Future[*Result] {
	// The launcher must not skip evaluate on a canceled ctx; evaluate reports
	// cancellation itself together with the partial Result.
	return async.Go(context.WithoutCancel(ctx), func(context.Context) (*Result, error) {
		return v.evaluate(ctx, instance)
	})
}

func (v *Validator[T]) evaluate(ctx context.Context, instance T) (*Result, error) {
	result := NewResult()

	for i, rule := range v.rules {
		if err := ctx.Err(); err != nil {
			v.logger.DebugContext(ctx, "validation canceled", logger.RulePosition(i), logger.Error(err))
			return result, err
		}

		failures, err := v.run(ctx, rule, instance)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				v.logger.DebugContext(ctx, "validation canceled", logger.RulePosition(i), logger.Error(ctxErr))
				return result, ctxErr
			}
			v.logger.ErrorContext(ctx, "rule evaluation failed",
				logger.Property(rule.property),
				logger.RuleKind(rule.kind.String()),
				logger.RulePosition(i),
				logger.Error(err),
			)
			return nil, &EvaluationError{Property: rule.property, Err: err}
		}
		result.merge(failures)
	}

	v.logger.DebugContext(ctx, "validation completed",
		logger.Valid(result.IsValid()),
		logger.ErrorCount(result.Len()),
		logger.RuleCount(len(v.rules)),
	)
	return result, nil
}

func (v *Validator[T]) run(ctx context.Context, rule *executor[T], instance T) (failures []failure, err error) {
	defer func() {
		if r := recover(); r != nil {
			failures, err = nil, fmt.Errorf("%w: %v", async.ErrPanic, r)
		}
	}()

	if rule.immediate != nil {
		return rule.immediate(instance)
	}

	if v.asyncTimeout > 0 {
		rctx, cancel := context.WithTimeout(ctx, v.asyncTimeout)
		defer cancel()
		return rule.suspending(rctx, instance).AwaitContext(rctx)
	}
	return rule.suspending(ctx, instance).AwaitContext(ctx)
}
