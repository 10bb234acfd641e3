// Package service contains the business logic for the studio booking API.
// Services validate inputs, enforce booking rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/repo"
)

// BlockedDatesCache stores the computed blocked dates of a listing.
// Implementations must treat a missing entry as a miss, not an error.
//
// Get reports the entry's generation alongside a miss. Set must skip the write
// when Invalidate has run since that generation was read, so a reader that
// loaded reservations before a booking committed cannot cache a stale set.
type BlockedDatesCache interface {
	Get(ctx context.Context, listingID uuid.UUID) (dates []domain.Date, gen int64, hit bool, err error)
	Set(ctx context.Context, listingID uuid.UUID, gen int64, dates []domain.Date) error
	Invalidate(ctx context.Context, listingID uuid.UUID) error
}

// nopCache is used when no cache is configured.
type nopCache struct{}

func (nopCache) Get(context.Context, uuid.UUID) ([]domain.Date, int64, bool, error) {
	return nil, 0, false, nil
}
func (nopCache) Set(context.Context, uuid.UUID, int64, []domain.Date) error { return nil }
func (nopCache) Invalidate(context.Context, uuid.UUID) error { return nil }

// ListingService implements business logic for listings and the read side of
// the booking engine: blocked dates and quotes.
type ListingService struct {
	listings repo.ListingRepo
	cache    BlockedDatesCache
	log      *slog.Logger
}

// NewListingService constructs a ListingService. cache may be nil.
func NewListingService(r repo.ListingRepo, cache BlockedDatesCache, log *slog.Logger) *ListingService {
	if cache == nil {
		cache = nopCache{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &ListingService{listings: r, cache: cache, log: log}
}

// Create validates and persists a new listing owned by ownerID.
func (s *ListingService) Create(ctx context.Context, ownerID uuid.UUID, listing domain.Listing) (domain.Listing, error) {
	if ownerID == uuid.Nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.Create: %w", domain.ErrUnauthenticated)
	}
	if err := validateStruct(listing); err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.Create: %w", err)
	}
	listing.OwnerID = ownerID
	listing.Reservations = nil

	created, err := s.listings.Create(ctx, listing)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.Create: %w", storageError(err))
	}
	created.Reservations = []domain.Reservation{}
	return created, nil
}

// GetByID returns a listing with all of its reservations.
func (s *ListingService) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.GetByID: %w", storageError(err))
	}
	return l, nil
}

// ListPaged returns one page of listings and the total count.
func (s *ListingService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Listing, int64, error) {
	listings, total, err := s.listings.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ListingService.ListPaged: %w", storageError(err))
	}
	return listings, total, nil
}

// BlockedDates returns the sorted dates on which the listing has at least one
// reservation. Results are served from the cache when present; cache faults
// are logged and fall through to the database.
func (s *ListingService) BlockedDates(ctx context.Context, listingID uuid.UUID) ([]domain.Date, error) {
	dates, gen, ok, err := s.cache.Get(ctx, listingID)
	if err != nil {
		s.log.WarnContext(ctx, "blocked dates cache read failed", "listing_id", listingID, "error", err)
	}
	if ok {
		return dates, nil
	}

	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service.ListingService.BlockedDates: %w", storageError(err))
	}
	set, err := domain.BlockedDates(listing.Reservations)
	if err != nil {
		// Stored rows are constrained to valid spans, so this is corrupt data.
		return nil, fmt.Errorf("service.ListingService.BlockedDates: %w: %w", domain.ErrPersistence, err)
	}
	dates = set.Sorted()

	if err := s.cache.Set(ctx, listingID, gen, dates); err != nil {
		s.log.WarnContext(ctx, "blocked dates cache write failed", "listing_id", listingID, "error", err)
	}
	return dates, nil
}

// Quote prices a prospective booking at the listing's current rate. Unset
// times are allowed and bill the minimum; if both are set the end must be
// after the start.
func (s *ListingService) Quote(ctx context.Context, listingID uuid.UUID, req domain.QuoteRequest) (domain.Quote, error) {
	if err := validateStruct(req); err != nil {
		return domain.Quote{}, fmt.Errorf("service.ListingService.Quote: %w", err)
	}
	dates, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("service.ListingService.Quote: %w", err)
	}
	slot, err := parseInterval(req.StartTime, req.EndTime)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("service.ListingService.Quote: %w", err)
	}
	if !slot.Start.IsZero() && !slot.End.IsZero() {
		if err := slot.Validate(); err != nil {
			return domain.Quote{}, fmt.Errorf("service.ListingService.Quote: %w", err)
		}
	}

	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("service.ListingService.Quote: %w", storageError(err))
	}
	return listing.Quote(dates, slot), nil
}

// storageError passes domain sentinels through and marks anything else as a
// persistence failure.
func storageError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
}
