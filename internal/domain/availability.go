package domain

import "fmt"

// BlockedDates returns every calendar date covered by at least one reservation.
// Each reservation blocks its whole inclusive [StartDate, EndDate] span
// regardless of time of day. A reservation with an unset date or an end before
// its start yields ErrInvalidDate.
func BlockedDates(reservations []Reservation) (DateSet, error) {
	set := DateSet{}
	for _, res := range reservations {
		span := res.Dates()
		if err := span.Validate(); err != nil {
			return nil, fmt.Errorf("reservation %s: %w", res.ID, err)
		}
		for _, d := range span.Days() {
			set.Add(d)
		}
	}
	return set, nil
}
