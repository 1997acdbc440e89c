package strategy

import "errors"

var (
	// ErrNotInitialized indicates the request carries no initialization
	// sub-context, or one without a deserializer.
	ErrNotInitialized = errors.New("strategy: initialization middleware not installed")
)
