package handler

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/handler/gen"
)

// listingToResponse converts a domain.Listing to the generated response type.
// Reservations are included only for single-listing responses.
func listingToResponse(l domain.Listing, withReservations bool) gen.Listing {
	out := gen.Listing{
		Id:                   l.ID,
		OwnerId:              l.OwnerID,
		Title:                l.Title,
		Price:                l.Price,
		MinimumBookingLength: l.MinimumBookingLength,
		CrewCount:            l.CrewCount,
		Area:                 l.Area,
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
	}
	if withReservations {
		res := make([]gen.Reservation, len(l.Reservations))
		for i, r := range l.Reservations {
			res[i] = reservationToResponse(r)
		}
		out.Reservations = &res
	}
	return out
}

func reservationToResponse(r domain.Reservation) gen.Reservation {
	return gen.Reservation{
		Id:         r.ID,
		ListingId:  r.ListingID,
		UserId:     r.UserID,
		StartDate:  dateToResponse(r.StartDate),
		EndDate:    dateToResponse(r.EndDate),
		StartTime:  r.StartTime.String(),
		EndTime:    r.EndTime.String(),
		TotalHours: r.TotalHours,
		TotalPrice: r.TotalPrice,
		CreatedAt:  r.CreatedAt,
	}
}

func dateToResponse(d domain.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}

func quoteToResponse(q domain.Quote) gen.Quote {
	return gen.Quote{
		DayCount:    q.DayCount,
		Hours:       q.Hours,
		BilledHours: q.BilledHours,
		UnitPrice:   q.UnitPrice,
		Total:       q.Total,
	}
}

// deref returns *p, or the zero value when p is nil.
func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
