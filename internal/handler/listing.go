package handler

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/handler/gen"
	"github.com/pkordes/studiobook/backend/internal/middleware"
)

// CreateListing handles POST /listings. The caller becomes the owner.
func (s *Server) CreateListing(ctx context.Context, req gen.CreateListingRequestObject) (gen.CreateListingResponseObject, error) {
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		return gen.CreateListing401JSONResponse{UnauthenticatedJSONResponse: unauthenticatedBody()}, nil
	}

	in := domain.Listing{
		Title:                req.Body.Title,
		Price:                req.Body.Price,
		MinimumBookingLength: deref(req.Body.MinimumBookingLength),
		CrewCount:            deref(req.Body.CrewCount),
		Area:                 deref(req.Body.Area),
	}
	created, err := s.listings.Create(ctx, user.ID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return gen.CreateListing401JSONResponse{UnauthenticatedJSONResponse: unauthenticatedBody()}, nil
		case errors.Is(err, domain.ErrValidation):
			return gen.CreateListing422JSONResponse{ValidationErrorJSONResponse: validationBody(err)}, nil
		default:
			return gen.CreateListing500JSONResponse{InternalErrorJSONResponse: s.internalBody(ctx, "CreateListing", err)}, nil
		}
	}

	return gen.CreateListing201JSONResponse(listingToResponse(created, true)), nil
}

// ListListings handles GET /listings.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListListings(ctx context.Context, req gen.ListListingsRequestObject) (gen.ListListingsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	listings, total, err := s.listings.ListPaged(ctx, params)
	if err != nil {
		return gen.ListListings500JSONResponse{InternalErrorJSONResponse: s.internalBody(ctx, "ListListings", err)}, nil
	}

	data := make([]gen.Listing, len(listings))
	for i, l := range listings {
		data[i] = listingToResponse(l, false)
	}
	return gen.ListListings200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      int(total),
			TotalPages: params.TotalPages(total),
		},
	}, nil
}

// GetListing handles GET /listings/{listingId}.
func (s *Server) GetListing(ctx context.Context, req gen.GetListingRequestObject) (gen.GetListingResponseObject, error) {
	listing, err := s.listings.GetByID(ctx, req.ListingId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetListing404JSONResponse{NotFoundJSONResponse: notFoundBody("listing not found")}, nil
		}
		return gen.GetListing500JSONResponse{InternalErrorJSONResponse: s.internalBody(ctx, "GetListing", err)}, nil
	}
	return gen.GetListing200JSONResponse(listingToResponse(listing, true)), nil
}

// ListBlockedDates handles GET /listings/{listingId}/blocked-dates.
func (s *Server) ListBlockedDates(ctx context.Context, req gen.ListBlockedDatesRequestObject) (gen.ListBlockedDatesResponseObject, error) {
	dates, err := s.listings.BlockedDates(ctx, req.ListingId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListBlockedDates404JSONResponse{NotFoundJSONResponse: notFoundBody("listing not found")}, nil
		}
		return gen.ListBlockedDates500JSONResponse{InternalErrorJSONResponse: s.internalBody(ctx, "ListBlockedDates", err)}, nil
	}

	out := make([]openapi_types.Date, len(dates))
	for i, d := range dates {
		out[i] = dateToResponse(d)
	}
	return gen.ListBlockedDates200JSONResponse{ListingId: req.ListingId, Dates: out}, nil
}

// QuoteReservation handles POST /listings/{listingId}/quote.
func (s *Server) QuoteReservation(ctx context.Context, req gen.QuoteReservationRequestObject) (gen.QuoteReservationResponseObject, error) {
	q, err := s.listings.Quote(ctx, req.ListingId, domain.QuoteRequest{
		StartDate: req.Body.StartDate,
		EndDate:   req.Body.EndDate,
		StartTime: deref(req.Body.StartTime),
		EndTime:   deref(req.Body.EndTime),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.QuoteReservation422JSONResponse{ValidationErrorJSONResponse: validationBody(err)}, nil
		case errors.Is(err, domain.ErrNotFound):
			return gen.QuoteReservation404JSONResponse{NotFoundJSONResponse: notFoundBody("listing not found")}, nil
		default:
			return gen.QuoteReservation500JSONResponse{InternalErrorJSONResponse: s.internalBody(ctx, "QuoteReservation", err)}, nil
		}
	}
	return gen.QuoteReservation200JSONResponse(quoteToResponse(q)), nil
}
