package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	memberIDKey  contextKey = "member_id"
)

// WithRequestID stores the request id in ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithMemberID stores the authenticated member id in ctx.
func WithMemberID(ctx context.Context, memberID int64) context.Context {
	return context.WithValue(ctx, memberIDKey, memberID)
}

// FromContext returns a logger annotated with whatever identifiers are
// present in ctx.
func FromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		l = l.With(slog.String("request_id", requestID))
	}
	if memberID, ok := ctx.Value(memberIDKey).(int64); ok {
		l = l.With(slog.Int64("member_id", memberID))
	}
	return l
}
