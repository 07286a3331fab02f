package middleware

import (
	"context"

	"github.com/angelmondragon/dashboard-backend/pkg/auth/session"
)

type contextKey string

const (
	ctxSession   contextKey = "session"
	ctxSessionID contextKey = "session_id"
)

// SessionFromContext returns the session record seeded by RequireSession.
func SessionFromContext(ctx context.Context) (*session.Record, bool) {
	if ctx == nil {
		return nil, false
	}
	record, ok := ctx.Value(ctxSession).(*session.Record)
	return record, ok && record != nil
}

// SessionIDFromContext returns the id of the session that authorized the request.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

// WithSession injects the session record and its id into the context.
func WithSession(ctx context.Context, sessionID string, record *session.Record) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxSession, record)
	return context.WithValue(ctx, ctxSessionID, sessionID)
}
