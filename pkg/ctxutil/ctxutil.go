// Package ctxutil carries request-scoped values (the authenticated caller
// and the request id) on a context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	callerKey    struct{}
	requestIDKey struct{}
)

// Caller is the account behind a request, as proven by its access token.
type Caller struct {
	ID    uuid.UUID
	Email string
}

// WithCaller attaches the caller. A caller with a nil ID is ignored.
func WithCaller(ctx context.Context, c Caller) context.Context {
	if c.ID == uuid.Nil {
		return ctx
	}
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFromCtx reports the caller attached by WithCaller.
func CallerFromCtx(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	return c, ok
}

// UserIDFromCtx is CallerFromCtx for code that needs only the account id.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	c, ok := CallerFromCtx(ctx)
	return c.ID, ok
}

// WithRequestID stores the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
