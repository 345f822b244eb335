package auth

import (
	"context"
	"net/http"
)

type contextKey int

const userIDKey contextKey = iota

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the user id set by the auth middleware.
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// RequireUserID writes a 401 and returns false when the request carries no user.
func RequireUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
