// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent.
//
// New selects a text or JSON handler, applies static attributes and wraps the
// result in a ContextHandler, which adds attributes pulled from the context
// of every *Context logging call (request ids, tenant ids, ...).
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "api"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
//	log.DebugContext(ctx, "session restored",
//	    logger.Strategy("session"),
//	    logger.Principal(id),
//	)
//
// Helpers such as Error and Principal return an empty slog.Attr for nil
// input, which slog skips, so callers do not need nil checks.
//
// Discard returns a logger that drops everything; it is the default for
// components that accept an optional logger.
package logger
