package strategy

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/dmitrymomot/authkit/pkg/async"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

// SessionName is the name the session strategy registers under.
const SessionName = "session"

// SessionStrategy restores a login established on an earlier request.
//
// When the request's session holds a principal identifier, the strategy
// resolves it through Init.Instance and writes the user into the configured
// request slot. It never declares success itself: restored or not, it passes
// so the pipeline carries on with the request already authenticated.
type SessionStrategy struct {
	pauseStream  bool
	userProperty string
	logger       *slog.Logger
}

var _ Strategy = (*SessionStrategy)(nil)

// NewSession creates a session strategy.
func NewSession(opts ...Option) *SessionStrategy {
	s := &SessionStrategy{
		logger: logger.Discard(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With(logger.Strategy(SessionName))
	return s
}

// NewSessionFromConfig creates a session strategy from Config.
func NewSessionFromConfig(cfg Config, opts ...Option) *SessionStrategy {
	configOpts := []Option{
		WithPauseStream(cfg.PauseStream),
		WithUserProperty(cfg.UserProperty),
	}

	configOpts = append(configOpts, opts...)

	return NewSession(configOpts...)
}

// Name returns SessionName.
func (s *SessionStrategy) Name() string {
	return SessionName
}

// Authenticate restores the user referenced by the request session.
//
// Outcomes:
//   - Error(ErrNotInitialized) when req has no Init or Init has no Instance;
//   - Pass when the session holds no principal identifier;
//   - Error(err) when the deserializer fails, with err untouched;
//   - Pass after removing the identifier when it resolves to no user;
//   - Pass after storing the user otherwise. The slot is Init.UserProperty,
//     else the strategy's configured slot, else DefaultUserProperty.
//
// The deserializer runs at most once. It is invoked even when the request
// context is already cancelled; honouring cancellation is up to it. With
// stream pausing enabled the request stream is paused only around that call
// and resumed exactly once, after the outcome has been signalled.
func (s *SessionStrategy) Authenticate(req *Request, opts Options, act Actions) {
	if req == nil || req.Init == nil || req.Init.Instance == nil {
		s.logger.Error("initialization middleware not installed", logger.Outcome(KindError.String()))
		act.Error(ErrNotInitialized)
		return
	}

	ctx := req.Context()
	sess := req.session()

	id, ok := sess.Principal()
	if !ok {
		act.Pass()
		return
	}

	if (opts.PauseStream || s.pauseStream) && req.Stream != nil {
		paused := req.Stream.Pause()
		defer paused.Resume()
	}

	instance := req.Init.Instance
	start := time.Now()

	user, err := async.Run(ctx, id, func(ctx context.Context, id any) (any, error) {
		return instance.DeserializeUser(ctx, id, req)
	}).Await()

	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "failed to deserialize user",
			logger.Principal(id),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		act.Error(err)

	case isNil(user):
		sess.RemovePrincipal()
		s.logger.DebugContext(ctx, "stale session principal removed",
			logger.Principal(id),
			logger.Duration(time.Since(start)),
		)
		act.Pass()

	default:
		property := req.bindUserProperty(s.userProperty)
		req.Set(property, user)
		s.logger.DebugContext(ctx, "session restored",
			logger.Principal(id),
			logger.Property(property),
			logger.Duration(time.Since(start)),
		)
		act.Pass()
	}
}

// isNil reports whether v is nil or a typed nil reference.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
