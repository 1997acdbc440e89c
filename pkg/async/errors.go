package async

import "errors"

var (
	// ErrPanic wraps a panic recovered from the asynchronous function.
	ErrPanic = errors.New("async: function panicked")
)
