// Package repo contains all database access logic for the studio booking API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/studiobook/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test. Begin on a
// pgx.Tx opens a savepoint, so transactional repo methods nest cleanly.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// querier is the read/write subset of db that is also satisfied by pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ListingRepo defines the persistence operations for Listings.
type ListingRepo interface {
	// Create inserts a new listing and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, listing domain.Listing) (domain.Listing, error)

	// GetByID retrieves a listing together with all of its reservations.
	// Returns domain.ErrNotFound if no listing with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error)

	// ListPaged returns one page of listings (without reservations), newest
	// first, and the total number of listings.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Listing, int64, error)
}

// pgListingRepo is the Postgres implementation of ListingRepo.
type pgListingRepo struct {
	db db
}

// NewListingRepo constructs a ListingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewListingRepo(db db) ListingRepo {
	return &pgListingRepo{db: db}
}

const listingColumns = `id, owner_id, title, price, minimum_booking_length, crew_count, area, created_at, updated_at`

// Create inserts a new listing row and returns the full persisted record.
func (r *pgListingRepo) Create(ctx context.Context, listing domain.Listing) (domain.Listing, error) {
	const q = `
		INSERT INTO listings (owner_id, title, price, minimum_booking_length, crew_count, area)
		VALUES (@owner_id, @title, @price, @minimum_booking_length, @crew_count, @area)
		RETURNING ` + listingColumns

	args := pgx.NamedArgs{
		"owner_id":               listing.OwnerID,
		"title":                  listing.Title,
		"price":                  listing.Price,
		"minimum_booking_length": listing.MinimumBookingLength,
		"crew_count":             listing.CrewCount,
		"area":                   listing.Area,
	}

	result, err := scanListing(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ListingRepo.Create: %w", err)
	}
	result.Reservations = []domain.Reservation{}
	return result, nil
}

// GetByID retrieves a listing by primary key along with its reservations.
func (r *pgListingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	listing, err := getListing(ctx, r.db, id, false)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ListingRepo.GetByID: %w", err)
	}
	listing.Reservations, err = listReservations(ctx, r.db, id)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ListingRepo.GetByID: %w", err)
	}
	return listing, nil
}

// ListPaged returns one page of listings ordered by created_at descending.
func (r *pgListingRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Listing, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM listings`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ListingRepo.ListPaged: count: %w", err)
	}

	q := `
		SELECT ` + listingColumns + `
		FROM listings
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ListingRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	listings := []domain.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ListingRepo.ListPaged: scan: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ListingRepo.ListPaged: rows: %w", err)
	}
	return listings, total, nil
}

// getListing loads a single listing row. With forUpdate the row is locked
// until the surrounding transaction ends, serialising writers per listing.
func getListing(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (domain.Listing, error) {
	sql := `SELECT ` + listingColumns + ` FROM listings WHERE id = @id`
	if forUpdate {
		sql += ` FOR UPDATE`
	}
	return scanListing(q.QueryRow(ctx, sql, pgx.NamedArgs{"id": id}))
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanListing maps a single database row into a domain.Listing.
func scanListing(s scanner) (domain.Listing, error) {
	var (
		l       domain.Listing
		id      pgtype.UUID
		ownerID pgtype.UUID
	)

	err := s.Scan(&id, &ownerID, &l.Title, &l.Price, &l.MinimumBookingLength,
		&l.CrewCount, &l.Area, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Listing{}, domain.ErrNotFound
		}
		return domain.Listing{}, err
	}

	l.ID = uuid.UUID(id.Bytes)
	l.OwnerID = uuid.UUID(ownerID.Bytes)
	return l, nil
}
