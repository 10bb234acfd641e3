package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated account. Users own listings and make reservations.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

// Session binds an opaque bearer token to a user until ExpiresAt.
type Session struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
}
