package async

import (
	"context"
	"fmt"
	"sync"
)

// Future represents the eventual result of an asynchronous operation.
// It completes exactly once, either with a value or with an error.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Await blocks until the future completes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// Done returns a channel that is closed once the future has completed.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the future has completed without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// complete stores the outcome and releases waiters. Only the first call has effect.
func (f *Future[U]) complete(res U, err error) {
	f.once.Do(func() {
		f.result = res
		f.err = err
		close(f.done)
	})
}

// Async runs fn in its own goroutine and returns a Future for its result.
//
// If ctx is already cancelled when the goroutine starts, fn is not invoked and
// the future completes with the context error. A panic inside fn completes the
// future with ErrPanic instead of crashing the process.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	return Run(ctx, param, func(ctx context.Context, param T) (U, error) {
		if err := ctx.Err(); err != nil {
			var zero U
			return zero, err
		}
		return fn(ctx, param)
	})
}

// Run is like Async but always invokes fn, even when ctx is already
// cancelled. fn alone decides how to honour cancellation. A panic inside fn
// completes the future with ErrPanic.
func Run[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero U
				f.complete(zero, fmt.Errorf("%w: %v", ErrPanic, r))
			}
		}()

		res, err := fn(ctx, param)
		f.complete(res, err)
	}()

	return f
}
