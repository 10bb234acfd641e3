package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/studiobook/backend/internal/domain"
)

// SessionResolver resolves a bearer token to its user.
// service.AuthService satisfies it.
type SessionResolver interface {
	UserBySessionToken(ctx context.Context, token string) (domain.User, error)
}

type userContextKey struct{}

// NewAuthenticator returns a middleware that resolves "Authorization: Bearer
// <token>" to a user and stores it in the request context. Requests without a
// resolvable token continue anonymously; handlers that need a user answer 401.
func NewAuthenticator(resolver SessionResolver, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			user, err := resolver.UserBySessionToken(r.Context(), token)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthenticated) {
					log.WarnContext(r.Context(), "session lookup failed", "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userContextKey{}).(domain.User)
	return u, ok
}

func extractBearerToken(header string) string {
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
