package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/studiobook/backend/internal/domain"
)

// BuildReservation receives the locked listing, with every existing
// reservation loaded, and returns the reservation to append. Returning an
// error aborts the transaction without writing anything.
type BuildReservation func(listing domain.Listing) (domain.Reservation, error)

// ReservationRepo defines the persistence operations for Reservations.
// Reservations are never updated; they are only appended to a listing.
type ReservationRepo interface {
	// AppendToListing locks the listing row, hands the listing and its current
	// reservations to build, inserts the returned reservation and commits.
	// Either the listing with its new reservation is fully visible afterwards,
	// or nothing changed. Returns the updated listing aggregate.
	// Returns domain.ErrNotFound if the listing does not exist.
	AppendToListing(ctx context.Context, listingID uuid.UUID, build BuildReservation) (domain.Listing, error)
}

// pgReservationRepo is the Postgres implementation of ReservationRepo.
type pgReservationRepo struct {
	db db
}

// NewReservationRepo constructs a ReservationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewReservationRepo(db db) ReservationRepo {
	return &pgReservationRepo{db: db}
}

// AppendToListing runs lock → build → insert in one transaction.
func (r *pgReservationRepo) AppendToListing(ctx context.Context, listingID uuid.UUID, build BuildReservation) (domain.Listing, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ReservationRepo.AppendToListing: begin: %w", err)
	}
	// Rollback after Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	listing, err := getListing(ctx, tx, listingID, true)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ReservationRepo.AppendToListing: %w", err)
	}
	listing.Reservations, err = listReservations(ctx, tx, listingID)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ReservationRepo.AppendToListing: %w", err)
	}

	candidate, err := build(listing)
	if err != nil {
		return domain.Listing{}, err
	}
	candidate.ListingID = listing.ID

	created, err := insertReservation(ctx, tx, candidate)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ReservationRepo.AppendToListing: insert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ReservationRepo.AppendToListing: commit: %w", err)
	}

	listing.Reservations = append(listing.Reservations, created)
	return listing, nil
}

const reservationColumns = `id, listing_id, user_id, start_date, end_date, start_time, end_time, total_hours, total_price, created_at`

func insertReservation(ctx context.Context, q querier, res domain.Reservation) (domain.Reservation, error) {
	const sql = `
		INSERT INTO reservations
			(listing_id, user_id, start_date, end_date, start_time, end_time, total_hours, total_price)
		VALUES
			(@listing_id, @user_id, @start_date, @end_date, @start_time, @end_time, @total_hours, @total_price)
		RETURNING ` + reservationColumns

	args := pgx.NamedArgs{
		"listing_id":  res.ListingID,
		"user_id":     res.UserID,
		"start_date":  res.StartDate.Time(),
		"end_date":    res.EndDate.Time(),
		"start_time":  clockToTime(res.StartTime),
		"end_time":    clockToTime(res.EndTime),
		"total_hours": res.TotalHours,
		"total_price": res.TotalPrice,
	}
	return scanReservation(q.QueryRow(ctx, sql, args))
}

func listReservations(ctx context.Context, q querier, listingID uuid.UUID) ([]domain.Reservation, error) {
	const sql = `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE listing_id = @listing_id
		ORDER BY start_date, start_time, created_at`

	rows, err := q.Query(ctx, sql, pgx.NamedArgs{"listing_id": listingID})
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	out := []domain.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("list reservations: scan: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reservations: rows: %w", err)
	}
	return out, nil
}

// scanReservation maps a single database row into a domain.Reservation,
// converting Postgres DATE and TIME values into calendar dates and clocks.
func scanReservation(s scanner) (domain.Reservation, error) {
	var (
		res                domain.Reservation
		id, listID, userID pgtype.UUID
		startDate, endDate pgtype.Date
		startTime, endTime pgtype.Time
	)

	err := s.Scan(&id, &listID, &userID, &startDate, &endDate, &startTime, &endTime,
		&res.TotalHours, &res.TotalPrice, &res.CreatedAt)
	if err != nil {
		return domain.Reservation{}, err
	}

	res.ID = uuid.UUID(id.Bytes)
	res.ListingID = uuid.UUID(listID.Bytes)
	res.UserID = uuid.UUID(userID.Bytes)
	res.StartDate = domain.DateOf(startDate.Time)
	res.EndDate = domain.DateOf(endDate.Time)
	res.StartTime = timeToClock(startTime)
	res.EndTime = timeToClock(endTime)
	return res, nil
}

const microsPerMinute = 60 * 1_000_000

func clockToTime(c domain.Clock) pgtype.Time {
	if c.IsZero() {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: int64(c.Minutes()) * microsPerMinute, Valid: true}
}

func timeToClock(t pgtype.Time) domain.Clock {
	if !t.Valid {
		return domain.Clock{}
	}
	minutes := int(t.Microseconds / microsPerMinute)
	return domain.NewClock(minutes/60, minutes%60)
}
