package strategy

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/stream"
)

// DefaultUserProperty is the request slot a restored user is written to when
// the initialization sub-context does not name one.
const DefaultUserProperty = "user"

// Init is the sub-context attached to every request by the pipeline's
// initialization step. Strategies refuse to run without it.
type Init struct {
	// Instance resolves stored principal identifiers. Required.
	Instance Deserializer

	// Session is the request's session sub-object. When nil, a session
	// attached to the request context with session.WithSession is used.
	Session *session.Session

	// UserProperty names the request slot for the resolved user.
	// Empty means the strategy slot, then DefaultUserProperty.
	UserProperty string
}

// Request is the authentication-scoped view of one in-flight request.
// It is owned by the caller and must not be shared between concurrent
// Authenticate calls.
type Request struct {
	// HTTP is the underlying transport request. May be nil.
	HTTP *http.Request

	// Init is the initialization sub-context.
	Init *Init

	// Stream is the request's event stream, paused on demand. May be nil.
	Stream stream.Pauser

	mu           sync.RWMutex
	props        map[string]any
	userProperty string
}

// NewRequest wraps an HTTP request together with its initialization sub-context.
func NewRequest(r *http.Request, init *Init) *Request {
	return &Request{HTTP: r, Init: init}
}

// Context returns the HTTP request context or context.Background.
func (r *Request) Context() context.Context {
	if r.HTTP == nil {
		return context.Background()
	}
	return r.HTTP.Context()
}

// Set writes value into the named slot.
func (r *Request) Set(property string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.props == nil {
		r.props = make(map[string]any)
	}
	r.props[property] = value
}

// Get reads the named slot.
func (r *Request) Get(property string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.props[property]
	return v, ok
}

// Delete clears the named slot.
func (r *Request) Delete(property string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.props, property)
}

// User returns the value stored in the configured user slot.
func (r *Request) User() (any, bool) {
	return r.Get(r.UserProperty())
}

// UserProperty returns the slot name the resolved user is written to:
// Init.UserProperty, else the slot bound by the strategy that restored the
// user, else DefaultUserProperty.
func (r *Request) UserProperty() string {
	if r.Init != nil && r.Init.UserProperty != "" {
		return r.Init.UserProperty
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.userProperty != "" {
		return r.userProperty
	}
	return DefaultUserProperty
}

// bindUserProperty records the strategy's fallback slot and returns the
// effective slot name.
func (r *Request) bindUserProperty(fallback string) string {
	if fallback != "" {
		r.mu.Lock()
		r.userProperty = fallback
		r.mu.Unlock()
	}
	return r.UserProperty()
}

// session returns the session sub-object, falling back to the one attached
// to the request context.
func (r *Request) session() *session.Session {
	if r.Init != nil && r.Init.Session != nil {
		return r.Init.Session
	}
	if s, ok := session.FromContext(r.Context()); ok {
		return s
	}
	return nil
}
