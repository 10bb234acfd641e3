package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/studiobook/backend/internal/domain"
)

// UserRepo defines the persistence operations for users and their sessions.
type UserRepo interface {
	// Create inserts a user and returns it with the DB-generated id.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// CreateSession stores a bearer token for an existing user.
	CreateSession(ctx context.Context, session domain.Session) error

	// UserBySessionToken returns the user owning an unexpired session token.
	// Returns domain.ErrNotFound for unknown or expired tokens.
	UserBySessionToken(ctx context.Context, token string) (domain.User, error)
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

func (r *pgUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (name, email)
		VALUES (@name, @email)
		RETURNING id, name, email, created_at`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": user.Name, "email": user.Email}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) CreateSession(ctx context.Context, session domain.Session) error {
	const q = `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES (@token, @user_id, @expires_at)`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"token":      session.Token,
		"user_id":    session.UserID,
		"expires_at": session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.CreateSession: %w", err)
	}
	return nil
}

func (r *pgUserRepo) UserBySessionToken(ctx context.Context, token string) (domain.User, error) {
	const q = `
		SELECT u.id, u.name, u.email, u.created_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = @token AND s.expires_at > now()`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"token": token}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.UserBySessionToken: %w", err)
	}
	return result, nil
}

func scanUser(s scanner) (domain.User, error) {
	var (
		u  domain.User
		id pgtype.UUID
	)
	if err := s.Scan(&id, &u.Name, &u.Email, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	u.ID = uuid.UUID(id.Bytes)
	return u, nil
}
