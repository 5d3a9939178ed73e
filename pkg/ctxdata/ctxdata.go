package ctxdata

import (
	"context"
)

type traceIDKey struct{}
type userIDKey struct{}
type userRoleKey struct{}
type sessionTokenKey struct{}

var (
	traceIDKeyInstance      = traceIDKey{}
	userIDKeyInstance       = userIDKey{}
	userRoleKeyInstance     = userRoleKey{}
	sessionTokenKeyInstance = sessionTokenKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDKeyInstance).(string)
	return traceID, ok
}

// WithUser stores the authenticated user's id and role.
func WithUser(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKeyInstance, userID)
	return context.WithValue(ctx, userRoleKeyInstance, role)
}

func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKeyInstance).(string)
	return userID, ok && userID != ""
}

func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKeyInstance).(string)
	return role, ok && role != ""
}

func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKeyInstance, token)
}

func GetSessionToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenKeyInstance).(string)
	return token, ok && token != ""
}
