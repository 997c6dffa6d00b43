package store

import (
	"context"
	"errors"
	"time"
)

// retry calls fn until it succeeds, ctx is done or the attempts are spent.
// The last error from fn is joined to ErrConnect.
func retry(ctx context.Context, rc RetryConfig, fn func(context.Context) error) error {
	attempts := max(rc.Attempts, 1)

	var lastErr error
	for i := range attempts {
		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}

		// Linear backoff keeps restarting services from hitting the store in lockstep.
		timer := time.NewTimer(time.Duration(i+1) * rc.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(ErrConnect, ctx.Err(), lastErr)
		case <-timer.C:
		}
	}
	return errors.Join(ErrConnect, lastErr)
}
