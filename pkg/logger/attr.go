package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Strategy records the authentication strategy name under the key "strategy".
func Strategy(name string) slog.Attr {
	return slog.String("strategy", name)
}

// Outcome records the signalled strategy outcome under the key "outcome".
func Outcome(name string) slog.Attr {
	return slog.String("outcome", name)
}

// Principal records the principal identifier under the key "principal".
// If id is nil, it returns an empty Attr.
func Principal(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("principal", id)
}

// Property records the request slot a value was written to.
func Property(name string) slog.Attr {
	return slog.String("property", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
