// Package async provides a small generic Future used to express a single
// asynchronous computation and wait for its completion.
//
// A Future is obtained from Async, which starts the supplied function in its
// own goroutine and immediately returns. The caller waits with Await, selects
// on Done, or polls with IsComplete. Every Future completes exactly once.
//
// # Usage
//
//	future := async.Async(ctx, userID, func(ctx context.Context, id string) (*User, error) {
//	    return repo.FindUser(ctx, id)
//	})
//
//	user, err := future.Await()
//
// # Error Handling
//
// Await returns the error produced by the function. Two additional cases are
// covered by the package: a context that is already cancelled when the
// goroutine starts completes the future with ctx.Err() without calling the
// function, and a panic inside the function completes the future with an error
// wrapping ErrPanic.
//
// Run starts the function unconditionally and leaves cancellation entirely to
// it, for callers whose contract is that the operation always runs.
//
// There is no timeout or cancellation of an operation that has started; the
// function itself is responsible for honouring its context.
package async
