// Package strategy defines the pluggable authentication strategy contract and
// ships the session strategy, which restores a login established on an
// earlier request.
//
// # Contract
//
// A Strategy receives an authentication-scoped Request and reports exactly
// one outcome through Actions: Success, Fail, Redirect, Pass or Error. The
// pipeline that drives strategies, and the way it registers them, live in
// the host application. Recorder is a ready-made Actions implementation.
//
// Every Request must carry an Init sub-context, created by the pipeline's
// initialization step. It links the request to the pipeline's Deserializer,
// its session sub-object and the name of the request slot for the user.
//
// # Session strategy
//
//	s := strategy.NewSession(strategy.WithLogger(log))
//
//	req := strategy.NewRequest(r, &strategy.Init{
//	    Instance: strategy.DeserializerFunc(func(ctx context.Context, id any, _ *strategy.Request) (any, error) {
//	        return users.Find(ctx, id.(string))
//	    }),
//	    Session: sess,
//	})
//
//	rec := strategy.NewRecorder()
//	s.Authenticate(req, strategy.Options{}, rec)
//
//	if rec.Outcome().Kind == strategy.KindPass {
//	    user, ok := req.User() // set when the session was restored
//	}
//
// The strategy only emits Error and Pass. A missing Init yields
// ErrNotInitialized. A session without a principal identifier, or one whose
// identifier no longer resolves, passes; in the latter case the identifier
// is removed from the session. Numeric zero is a valid identifier.
//
// # Stream pausing
//
// With Options.PauseStream (or Config.PauseStream) set and Request.Stream
// present, events on the request stream are buffered while the deserializer
// runs and replayed in order after the outcome is signalled.
//
// # Configuration
//
// LoadConfig reads Config from the environment:
//
//   - SESSION_STRATEGY_PAUSE_STREAM  – pause on every call (default false)
//   - SESSION_STRATEGY_USER_PROPERTY – request slot for the user (default "user")
package strategy
