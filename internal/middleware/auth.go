package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"server/internal/domain"
)

type userContextKey struct{}

// TokenVerifier resolves a bearer token to the user ID it was issued for.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// Authenticate is the access-control gate. It classifies the request exactly
// once: the bearer token is verified, the user row is resolved, and the full
// user is injected into the request context so downstream handlers never
// re-derive identity from headers. Requests failing any step are rejected
// with 401 before a handler runs; a user deleted after token issuance is
// rejected the same way.
func Authenticate(tokens TokenVerifier, users domain.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "No token provided")
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeError(w, http.StatusUnauthorized, "No token provided")
				return
			}
			userID, err := tokens.VerifyToken(parts[1])
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "User not found")
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

// RequireAdmin rejects authenticated requests whose resolved user is not an
// admin. It must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil || !user.IsAdmin() {
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext returns the user resolved by Authenticate, or nil.
func UserFromContext(ctx context.Context) *domain.User {
	if u, ok := ctx.Value(userContextKey{}).(*domain.User); ok {
		return u
	}
	return nil
}

// ContextWithUser injects a resolved user, mainly for tests.
func ContextWithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
