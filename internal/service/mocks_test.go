package service_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/repo"
	"github.com/pkordes/studiobook/backend/internal/service"
)

// mockListingRepo is a hand-written test double for repo.ListingRepo.
// Each method is a function field; set only the ones your test needs.
type mockListingRepo struct {
	create    func(ctx context.Context, l domain.Listing) (domain.Listing, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Listing, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Listing, int64, error)
}

func (m *mockListingRepo) Create(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	return m.create(ctx, l)
}
func (m *mockListingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	return m.getByID(ctx, id)
}
func (m *mockListingRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Listing, int64, error) {
	return m.listPaged(ctx, p)
}

var _ repo.ListingRepo = (*mockListingRepo)(nil)

type mockReservationRepo struct {
	appendToListing func(ctx context.Context, listingID uuid.UUID, build repo.BuildReservation) (domain.Listing, error)
}

func (m *mockReservationRepo) AppendToListing(ctx context.Context, listingID uuid.UUID, build repo.BuildReservation) (domain.Listing, error) {
	return m.appendToListing(ctx, listingID, build)
}

var _ repo.ReservationRepo = (*mockReservationRepo)(nil)

// memReservationRepo behaves like the Postgres repo for a single listing:
// build sees the stored reservations, and nothing is stored if build fails.
type memReservationRepo struct {
	listing domain.Listing
	calls   int
}

func (m *memReservationRepo) AppendToListing(_ context.Context, listingID uuid.UUID, build repo.BuildReservation) (domain.Listing, error) {
	m.calls++
	if listingID != m.listing.ID {
		return domain.Listing{}, domain.ErrNotFound
	}
	res, err := build(m.listing)
	if err != nil {
		return domain.Listing{}, err
	}
	res.ID = uuid.New()
	res.ListingID = m.listing.ID
	m.listing.Reservations = append(m.listing.Reservations, res)
	return m.listing, nil
}

var _ repo.ReservationRepo = (*memReservationRepo)(nil)

type mockCache struct {
	get        func(ctx context.Context, id uuid.UUID) ([]domain.Date, int64, bool, error)
	set        func(ctx context.Context, id uuid.UUID, gen int64, dates []domain.Date) error
	invalidate func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCache) Get(ctx context.Context, id uuid.UUID) ([]domain.Date, int64, bool, error) {
	return m.get(ctx, id)
}
func (m *mockCache) Set(ctx context.Context, id uuid.UUID, gen int64, dates []domain.Date) error {
	return m.set(ctx, id, gen, dates)
}
func (m *mockCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return m.invalidate(ctx, id)
}

var _ service.BlockedDatesCache = (*mockCache)(nil)

type mockPublisher struct {
	published []domain.Reservation
	err       error
}

func (m *mockPublisher) ReservationCreated(_ context.Context, res domain.Reservation) error {
	m.published = append(m.published, res)
	return m.err
}

var _ service.EventPublisher = (*mockPublisher)(nil)

type mockSessionStore struct {
	userBySessionToken func(ctx context.Context, token string) (domain.User, error)
}

func (m *mockSessionStore) UserBySessionToken(ctx context.Context, token string) (domain.User, error) {
	return m.userBySessionToken(ctx, token)
}

var _ service.SessionStore = (*mockSessionStore)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }
