package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
	traceKey     ctxKey = "trace"
)

// WithIdentity stores the verified caller in the context.
// A nil identity marks a request that passed a public strategy.
func WithIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx extracts the verified caller. It returns nil when the
// request is public or never went through a guard.
func IdentityFromCtx(ctx context.Context) *domain.Identity {
	id, _ := ctx.Value(identityKey).(*domain.Identity)
	return id
}

// UserIDFromCtx extracts the caller's user ID.
// Returns uuid.Nil and false for anonymous callers and sessions without a user row.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id := IdentityFromCtx(ctx)
	if id == nil || id.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return id.UserID, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Trace collects facts resolved deep in the handler chain so that outer
// middleware can report them after the handler returns.
type Trace struct {
	Route  string
	UserID string
}

// WithTrace returns ctx carrying a Trace, reusing one already present.
func WithTrace(ctx context.Context) (context.Context, *Trace) {
	if t := TraceFromCtx(ctx); t != nil {
		return ctx, t
	}
	t := &Trace{}
	return context.WithValue(ctx, traceKey, t), t
}

// TraceFromCtx returns the request trace or nil.
func TraceFromCtx(ctx context.Context) *Trace {
	t, _ := ctx.Value(traceKey).(*Trace)
	return t
}
