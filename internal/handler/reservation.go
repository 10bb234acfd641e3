package handler

import (
	"context"
	"errors"

	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/handler/gen"
	"github.com/pkordes/studiobook/backend/internal/middleware"
)

// CreateReservation handles POST /reservations.
// On success it answers 201 with the whole listing, including the new
// reservation, so the client can refresh its calendar from one response.
func (s *Server) CreateReservation(ctx context.Context, req gen.CreateReservationRequestObject) (gen.CreateReservationResponseObject, error) {
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		return gen.CreateReservation401JSONResponse{UnauthenticatedJSONResponse: unauthenticatedBody()}, nil
	}

	listing, err := s.reservations.Create(ctx, requestToReservation(req.Body, user))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return gen.CreateReservation401JSONResponse{UnauthenticatedJSONResponse: unauthenticatedBody()}, nil
		case errors.Is(err, domain.ErrValidation):
			return gen.CreateReservation422JSONResponse{ValidationErrorJSONResponse: validationBody(err)}, nil
		case errors.Is(err, domain.ErrNotFound):
			return gen.CreateReservation404JSONResponse{NotFoundJSONResponse: notFoundBody("listing not found")}, nil
		case errors.Is(err, domain.ErrConflict):
			return gen.CreateReservation409JSONResponse{ConflictJSONResponse: conflictBody(err)}, nil
		default:
			return gen.CreateReservation500JSONResponse{InternalErrorJSONResponse: s.internalBody(ctx, "CreateReservation", err)}, nil
		}
	}

	return gen.CreateReservation201JSONResponse(listingToResponse(listing, true)), nil
}

// requestToReservation maps the wire body onto the writer's request. Absent
// strings become empty and absent totals stay nil, so the writer reports them
// as missing.
func requestToReservation(body *gen.NewReservation, user domain.User) domain.ReservationRequest {
	return domain.ReservationRequest{
		ListingID:  deref(body.ListingId),
		UserID:     user.ID,
		StartDate:  deref(body.StartDate),
		EndDate:    deref(body.EndDate),
		StartTime:  deref(body.StartTime),
		EndTime:    deref(body.EndTime),
		TotalPrice: body.TotalPrice,
		TotalHours: body.TotalHours,
	}
}
