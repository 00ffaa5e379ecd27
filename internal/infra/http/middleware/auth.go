package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rafaelmtz/leadtracker/internal/entity"
)

type TokenVerifier interface {
	Verify(token string) (subjectEmail string, err error)
}

type contextKey string

const userContextKey contextKey = "current_user"

// Auth resolves the bearer token to a user and stores it in the request
// context. Every failure mode (missing header, bad signature, expired
// token, unknown user) answers the same 401 without detail.
func Auth(verifier TokenVerifier, users entity.UserRepositoryInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}

			email, err := verifier.Verify(token)
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := users.FindByEmail(r.Context(), email)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user set by Auth.
func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userContextKey).(*entity.User)
	return user, ok
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}
