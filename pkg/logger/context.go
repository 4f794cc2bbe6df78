package logger

import (
	"context"
)

type contextKey string

const (
	// ContextKeyRequestID is where the request id lives, both in the request
	// context and in the echo context.
	ContextKeyRequestID contextKey = "request_id"
	contextKeyLogger    contextKey = "logger"
)

func withRequest(ctx context.Context, requestID string, log Logger) context.Context {
	ctx = context.WithValue(ctx, ContextKeyRequestID, requestID)
	return context.WithValue(ctx, contextKeyLogger, log)
}

// RequestID returns the id RequestLoggerMiddleware assigned, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}

// FromContext returns the request logger, or the global logger outside a request.
func FromContext(ctx context.Context) Logger {
	if log, ok := ctx.Value(contextKeyLogger).(Logger); ok {
		return log
	}
	return Get()
}

// FromContextOr returns the request logger when ctx carries one, else fallback.
func FromContextOr(ctx context.Context, fallback Logger) Logger {
	if log, ok := ctx.Value(contextKeyLogger).(Logger); ok {
		return log
	}
	return fallback
}
