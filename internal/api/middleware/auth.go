package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kashf-health/kashf/internal/token"
)

type ctxUserKey string

const (
	UserIDKey ctxUserKey = "user_id"
	RoleKey   ctxUserKey = "role"
)

// Verifier checks a bearer token and returns its claims.
type Verifier interface {
	Verify(raw string) (*token.Claims, error)
}

// Auth requires a valid Bearer token and adds the subject and role to the
// request context. Invalid, expired or missing tokens are uniformly 401.
func Auth(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				unauthorized(w)
				return
			}
			claims, err := v.Verify(strings.TrimSpace(ah[len("Bearer "):]))
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, claims.Subject)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}

// GetUserID returns the authenticated subject from context, or "".
func GetUserID(ctx context.Context) string {
	if s, ok := ctx.Value(UserIDKey).(string); ok {
		return s
	}
	return ""
}

// GetRole returns the authenticated role from context, or "".
func GetRole(ctx context.Context) string {
	if s, ok := ctx.Value(RoleKey).(string); ok {
		return s
	}
	return ""
}
