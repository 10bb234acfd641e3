package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/studiobook/backend/internal/domain"
)

// SessionStore looks up the owner of a session token.
// repo.UserRepo satisfies it.
type SessionStore interface {
	UserBySessionToken(ctx context.Context, token string) (domain.User, error)
}

// AuthService resolves bearer tokens to users.
type AuthService struct {
	sessions SessionStore
}

// NewAuthService constructs an AuthService backed by the provided store.
func NewAuthService(s SessionStore) *AuthService {
	return &AuthService{sessions: s}
}

// UserBySessionToken returns the user behind token. Unknown, expired and
// empty tokens all yield domain.ErrUnauthenticated.
func (s *AuthService) UserBySessionToken(ctx context.Context, token string) (domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.User{}, fmt.Errorf("service.AuthService.UserBySessionToken: %w", domain.ErrUnauthenticated)
	}
	u, err := s.sessions.UserBySessionToken(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, fmt.Errorf("service.AuthService.UserBySessionToken: %w", domain.ErrUnauthenticated)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.UserBySessionToken: %w", storageError(err))
	}
	return u, nil
}
