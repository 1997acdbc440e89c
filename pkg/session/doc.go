// Package session models the per-request session sub-object consulted by the
// session restore strategy.
//
// A Session is a small bag of data owned by the request. One key,
// PrincipalKey, is reserved for the identifier of a previously authenticated
// principal. The identifier is opaque: any value may be stored, and IsPresent
// decides whether it counts as an established login. Numeric zero is a valid
// identifier.
//
// Persisting sessions between requests is the job of the host application's
// session store. This package only describes the in-memory shape handed to
// the strategy and the helpers to attach it to a context.Context.
//
// # Usage
//
//	sess := session.New()
//	sess.SetPrincipal(user.ID) // on login
//
//	ctx := session.WithSession(r.Context(), sess)
//	if id, ok := session.PrincipalFromContext(ctx); ok {
//	    // restore the user from id
//	}
package session
