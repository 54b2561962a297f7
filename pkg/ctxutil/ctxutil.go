package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	callerIDKey  ctxKey = "caller_id"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

// RoleOperator may run operations that write to the collection.
const RoleOperator = "operator"

// WithCaller stores the authenticated caller and its role in the context.
func WithCaller(ctx context.Context, id uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, callerIDKey, id)
	return context.WithValue(ctx, roleKey, role)
}

// CallerIDFromCtx extracts the caller ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func CallerIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(callerIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// RoleFromCtx returns the caller's role, or an empty string.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// IsOperatorCtx reports whether an authenticated caller holds the operator role.
func IsOperatorCtx(ctx context.Context) bool {
	if _, ok := CallerIDFromCtx(ctx); !ok {
		return false
	}
	return RoleFromCtx(ctx) == RoleOperator
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
