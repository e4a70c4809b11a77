package middleware

import (
	"context"
	"net/http"

	"account-service/internal/auth"
	"account-service/internal/session"
)

// unexported, collision-proof context key
type userIDContextKeyType struct{}

var userIDKey = userIDContextKeyType{}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// SessionResolver maps a session identifier to its user; absent or
// expired sessions resolve to nil. *auth.Authenticator satisfies it.
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (*auth.User, error)
}

type AuthMiddleware struct {
	Resolver SessionResolver
}

func NewAuthMiddleware(resolver SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{Resolver: resolver}
}

// RequireAuth rejects requests that do not carry a valid, unexpired
// session and attaches the user ID to the request context otherwise.
// Resolver faults are treated as anonymous: the caller gets a 401, not
// a storage error.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		user, err := a.Resolver.ResolveSession(r.Context(), cookie.Value)
		if err != nil || user == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
