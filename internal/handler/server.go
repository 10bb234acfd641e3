// Package handler implements the HTTP handlers for the studio booking API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, listing.go,
// reservation.go) but all share the same Server struct so they can access its
// dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/handler/gen"
)

// ListingServicer defines the business operations the listing handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ListingServicer interface {
	Create(ctx context.Context, ownerID uuid.UUID, listing domain.Listing) (domain.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Listing, int64, error)
	BlockedDates(ctx context.Context, listingID uuid.UUID) ([]domain.Date, error)
	Quote(ctx context.Context, listingID uuid.UUID, req domain.QuoteRequest) (domain.Quote, error)
}

// ReservationServicer defines the reservation writer the booking handler depends on.
type ReservationServicer interface {
	Create(ctx context.Context, req domain.ReservationRequest) (domain.Listing, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, StrictOptions(log)).
type Server struct {
	listings     ListingServicer
	reservations ReservationServicer
	log          *slog.Logger
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(listings ListingServicer, reservations ReservationServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{listings: listings, reservations: reservations, log: log}
}
