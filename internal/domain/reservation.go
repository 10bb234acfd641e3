package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is a persisted booking of a listing: the same daily time slot
// repeated on every date of an inclusive date range.
type Reservation struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	UserID    uuid.UUID
	StartDate Date
	EndDate   Date
	StartTime Clock
	EndTime   Clock
	// TotalHours and TotalPrice are derived from the fields above and the
	// listing's rate at creation time, then stored.
	TotalHours float64
	TotalPrice float64
	CreatedAt  time.Time
}

// Dates returns the reservation's inclusive date span.
func (r Reservation) Dates() DateRange {
	return DateRange{Start: r.StartDate, End: r.EndDate}
}

// Slot returns the reservation's daily time window.
func (r Reservation) Slot() Interval {
	return Interval{Start: r.StartTime, End: r.EndTime}
}

// Overlaps reports whether two reservations share a date and their daily
// windows intersect.
func (r Reservation) Overlaps(other Reservation) bool {
	return r.Dates().Overlaps(other.Dates()) && r.Slot().Overlaps(other.Slot())
}

// ReservationRequest is the raw booking request as received from a client.
// Totals are pointers so that an explicit 0 is distinguishable from absence;
// both are advisory and recomputed by the server.
type ReservationRequest struct {
	ListingID  string    `json:"listingId" validate:"required"`
	UserID     uuid.UUID `json:"-"`
	StartDate  string    `json:"startDate" validate:"required"`
	EndDate    string    `json:"endDate" validate:"required"`
	StartTime  string    `json:"startTime" validate:"required"`
	EndTime    string    `json:"endTime" validate:"required"`
	TotalPrice *float64  `json:"totalPrice" validate:"required"`
	TotalHours *float64  `json:"totalHours" validate:"required"`
}
