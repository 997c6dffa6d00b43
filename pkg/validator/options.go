package validator

import (
	"log/slog"
	"time"
)

// Option configures a Validator.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	now          func() time.Time
	asyncTimeout time.Duration
}

func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
}

// WithLogger sets the logger used for registration and evaluation diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now as the reference for date checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithAsyncTimeout bounds each suspending rule. A rule that exceeds it fails
// the run with an EvaluationError wrapping context.DeadlineExceeded.
// Zero or negative disables the bound.
func WithAsyncTimeout(d time.Duration) Option {
	return func(o *options) {
		o.asyncTimeout = max(d, 0)
	}
}
