// Package domain contains the core data types and pure booking rules for the
// studio booking API. It is imported by every other internal package
// (repo, service, handler) and performs no I/O.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Listing is a bookable studio. It is the aggregate root; reservations belong
// to a listing and are only ever appended through the reservation writer.
type Listing struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Title   string `validate:"required,max=200"`
	// Price is the amount charged per billable hour.
	Price float64 `validate:"gte=0"`
	// MinimumBookingLength is the minimum number of billable hours per day.
	MinimumBookingLength float64 `validate:"gte=0"`
	CrewCount            int     `validate:"gte=0"`
	// Area is the floor area in square feet.
	Area         int `validate:"gte=0"`
	Reservations []Reservation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Quote prices the given range and interval at this listing's rate.
func (l Listing) Quote(r DateRange, iv Interval) Quote {
	return NewQuote(r, iv, l.Price, l.MinimumBookingLength)
}

// FirstConflict returns the first existing reservation that overlaps candidate,
// or false if the slot is free.
func (l Listing) FirstConflict(candidate Reservation) (Reservation, bool) {
	for _, existing := range l.Reservations {
		if existing.Overlaps(candidate) {
			return existing, true
		}
	}
	return Reservation{}, false
}
