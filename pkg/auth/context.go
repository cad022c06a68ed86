package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const userIDKey contextKey = "user_id"

// ErrUserIDNotFound is returned when no user ID exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrUserIDNotFound = errors.New("user_id not found in context")

// UserIDFromCtx extracts the authenticated user ID from the request context.
// Returns 0 and ErrUserIDNotFound if no user ID is set (unauthenticated request).
func UserIDFromCtx(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok || userID == 0 {
		return 0, ErrUserIDNotFound
	}
	return userID, nil
}

// WithUserID returns a new context with the given user ID attached.
// Used by authentication middleware after verifying the bearer token.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
