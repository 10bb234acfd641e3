package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/repo"
)

// EventPublisher announces committed reservations to other systems.
type EventPublisher interface {
	ReservationCreated(ctx context.Context, res domain.Reservation) error
}

type nopPublisher struct{}

func (nopPublisher) ReservationCreated(context.Context, domain.Reservation) error { return nil }

// totalsTolerance absorbs float noise when comparing client totals to ours.
const totalsTolerance = 0.005

// ReservationService is the reservation writer: it validates booking requests
// and appends reservations to their listing.
type ReservationService struct {
	reservations repo.ReservationRepo
	cache        BlockedDatesCache
	events       EventPublisher
	log          *slog.Logger
}

// NewReservationService constructs a ReservationService. cache and events may be nil.
func NewReservationService(r repo.ReservationRepo, cache BlockedDatesCache, events EventPublisher, log *slog.Logger) *ReservationService {
	if cache == nil {
		cache = nopCache{}
	}
	if events == nil {
		events = nopPublisher{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &ReservationService{reservations: r, cache: cache, events: events, log: log}
}

// bookingInput is a ReservationRequest after parsing.
type bookingInput struct {
	listingID uuid.UUID
	dates     domain.DateRange
	slot      domain.Interval
}

// Create validates req and appends the reservation to its listing, returning
// the updated listing aggregate.
//
// The overlap check and the insert run under a lock on the listing row, so two
// concurrent requests for the same slot cannot both succeed. Totals are
// recomputed from the listing's rate; the client's values are advisory.
func (s *ReservationService) Create(ctx context.Context, req domain.ReservationRequest) (domain.Listing, error) {
	if req.UserID == uuid.Nil {
		return domain.Listing{}, fmt.Errorf("service.ReservationService.Create: %w", domain.ErrUnauthenticated)
	}
	in, err := parseReservationRequest(req)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ReservationService.Create: %w", err)
	}

	listing, err := s.reservations.AppendToListing(ctx, in.listingID, func(l domain.Listing) (domain.Reservation, error) {
		candidate := domain.Reservation{
			ListingID: l.ID,
			UserID:    req.UserID,
			StartDate: in.dates.Start,
			EndDate:   in.dates.End,
			StartTime: in.slot.Start,
			EndTime:   in.slot.End,
		}
		if existing, ok := l.FirstConflict(candidate); ok {
			s.log.InfoContext(ctx, "reservation conflict",
				"listing_id", l.ID, "conflicts_with", existing.ID,
				"start_date", in.dates.Start, "end_date", in.dates.End)
			return domain.Reservation{}, fmt.Errorf("%w: %s %s-%s overlaps an existing reservation",
				domain.ErrConflict, in.dates.Start, in.slot.Start, in.slot.End)
		}

		q := l.Quote(in.dates, in.slot)
		candidate.TotalHours = q.Hours
		candidate.TotalPrice = q.Total
		s.logTotalsMismatch(ctx, req, q)
		return candidate, nil
	})
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ReservationService.Create: %w", storageError(err))
	}

	created := listing.Reservations[len(listing.Reservations)-1]
	s.log.InfoContext(ctx, "reservation created",
		"reservation_id", created.ID, "listing_id", listing.ID, "user_id", created.UserID,
		"total_price", created.TotalPrice)
	s.afterCommit(ctx, created)
	return listing, nil
}

// afterCommit runs the side effects of a committed reservation. Neither can
// undo the booking, so failures are only logged.
func (s *ReservationService) afterCommit(ctx context.Context, res domain.Reservation) {
	if err := s.cache.Invalidate(ctx, res.ListingID); err != nil {
		s.log.WarnContext(ctx, "blocked dates cache invalidation failed", "listing_id", res.ListingID, "error", err)
	}
	if err := s.events.ReservationCreated(ctx, res); err != nil {
		s.log.ErrorContext(ctx, "publish reservation.created failed", "reservation_id", res.ID, "error", err)
	}
}

func (s *ReservationService) logTotalsMismatch(ctx context.Context, req domain.ReservationRequest, q domain.Quote) {
	if math.Abs(*req.TotalHours-q.Hours) <= totalsTolerance && math.Abs(*req.TotalPrice-q.Total) <= totalsTolerance {
		return
	}
	s.log.DebugContext(ctx, "client totals differ from computed totals",
		"client_total_hours", *req.TotalHours, "total_hours", q.Hours,
		"client_total_price", *req.TotalPrice, "total_price", q.Total)
}

// parseReservationRequest applies every validation rule in order: presence,
// listing id, dates, times. Each failure wraps domain.ErrValidation.
func parseReservationRequest(req domain.ReservationRequest) (bookingInput, error) {
	if err := validateStruct(req); err != nil {
		return bookingInput{}, err
	}
	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		return bookingInput{}, fmt.Errorf("%w: listingId %q is not a valid id", domain.ErrValidation, req.ListingID)
	}
	dates, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return bookingInput{}, err
	}
	slot, err := parseInterval(req.StartTime, req.EndTime)
	if err != nil {
		return bookingInput{}, err
	}
	if err := slot.Validate(); err != nil {
		return bookingInput{}, err
	}
	return bookingInput{listingID: listingID, dates: dates, slot: slot}, nil
}
