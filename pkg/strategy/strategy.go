package strategy

import (
	"context"
)

// Strategy is a pluggable authentication mechanism. The pipeline calls
// Authenticate once per request and reads the outcome from act.
type Strategy interface {
	// Name is the key the strategy is registered under.
	Name() string

	// Authenticate inspects req and signals exactly one outcome on act.
	Authenticate(req *Request, opts Options, act Actions)
}

// Actions is the outcome vocabulary a strategy reports to the pipeline.
type Actions interface {
	// Success authenticates user; info is optional strategy-specific detail.
	Success(user any, info any)

	// Fail rejects the request with an optional challenge and HTTP status.
	Fail(challenge any, status int)

	// Redirect sends the client elsewhere, e.g. to a third-party login page.
	Redirect(url string, status int)

	// Pass abstains; the pipeline continues with the next strategy.
	Pass()

	// Error aborts authentication with an unrecoverable error.
	Error(err error)
}

// Options tune a single Authenticate call.
type Options struct {
	// PauseStream buffers events on the request stream while the strategy
	// waits on asynchronous work, so listeners attached later see all of them.
	PauseStream bool
}

// Deserializer resolves a principal identifier stored in a session into a
// full user record. A nil record with a nil error means the identifier no
// longer refers to a valid principal.
type Deserializer interface {
	DeserializeUser(ctx context.Context, id any, req *Request) (any, error)
}

// DeserializerFunc adapts a function to the Deserializer interface.
type DeserializerFunc func(ctx context.Context, id any, req *Request) (any, error)

// DeserializeUser calls f.
func (f DeserializerFunc) DeserializeUser(ctx context.Context, id any, req *Request) (any, error) {
	return f(ctx, id, req)
}
