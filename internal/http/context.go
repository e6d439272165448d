package http

import (
	"context"

	"github.com/example/content-assistant/internal/application"
)

type contextKey string

const (
	userContextKey       contextKey = "user"
	resourceIDContextKey contextKey = "resource_id"
)

// ContextWithUser returns a derived context carrying the acting user.
func ContextWithUser(ctx context.Context, user application.UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext extracts the acting user from context if available.
func UserFromContext(ctx context.Context) (application.UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(application.UserContext)
	return user, ok
}

// ContextWithResourceID injects the resource identifier resolved from the request path.
func ContextWithResourceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, resourceIDContextKey, id)
}

// ResourceIDFromContext extracts a resource identifier previously associated with the context.
func ResourceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(resourceIDContextKey).(string)
	return id, ok
}
