package strategy

import "log/slog"

// Option is a functional option for configuring the SessionStrategy
type Option func(*SessionStrategy)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *SessionStrategy) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPauseStream makes every invocation pause the request stream.
func WithPauseStream(pause bool) Option {
	return func(s *SessionStrategy) {
		s.pauseStream = pause
	}
}

// WithUserProperty sets the request slot used when Init.UserProperty is empty.
func WithUserProperty(property string) Option {
	return func(s *SessionStrategy) {
		s.userProperty = property
	}
}
