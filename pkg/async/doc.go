// Package async provides a small generic Future type for computations that
// complete later, plus helpers to start them.
//
// The validator engine uses a Future to represent a suspending rule: the rule
// starts its predicate with Async and the engine awaits the Future before the
// next rule runs. Already-known outcomes are wrapped with Resolved so that both
// immediate and suspending rules can be consumed the same way.
//
// # Usage
//
//	f := async.Async(ctx, email, func(ctx context.Context, email string) (bool, error) {
//	    return store.EmailAvailable(ctx, email)
//	})
//
//	ok, err := f.AwaitContext(ctx)
//
// # Error Handling
//
// Await returns whatever the callback returned. AwaitWithTimeout returns
// ErrTimeout when the deadline passes first, AwaitContext returns ctx.Err()
// when the context ends first, and a panicking callback completes its Future
// with an error wrapping ErrPanic.
//
// # Performance Considerations
//
// Each Async call costs one goroutine and one channel. Resolved costs neither
// a goroutine nor a wait.
package async
