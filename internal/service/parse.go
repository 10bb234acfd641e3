package service

import (
	"fmt"

	"github.com/pkordes/studiobook/backend/internal/domain"
)

// maxRangeDays is the longest booking or quote span accepted, counted
// inclusively. It bounds the blocked-dates expansion of a single reservation.
const maxRangeDays = 366

// parseDateRange parses both bounds and requires start <= end spanning at most
// maxRangeDays. Date failures wrap domain.ErrInvalidDate inside
// domain.ErrValidation.
func parseDateRange(start, end string) (domain.DateRange, error) {
	s, err := domain.ParseDate(start)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: startDate: %w", domain.ErrValidation, err)
	}
	e, err := domain.ParseDate(end)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: endDate: %w", domain.ErrValidation, err)
	}
	r := domain.DateRange{Start: s, End: e}
	if err := r.Validate(); err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if r.DayCount() >= maxRangeDays {
		return domain.DateRange{}, fmt.Errorf("%w: date range may span at most %d days", domain.ErrValidation, maxRangeDays)
	}
	return r, nil
}

// parseInterval parses both clock values. Empty values stay unset; callers
// that need a complete window call Validate on the result.
func parseInterval(start, end string) (domain.Interval, error) {
	s, err := domain.ParseClock(start)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("startTime: %w", err)
	}
	e, err := domain.ParseClock(end)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("endTime: %w", err)
	}
	return domain.Interval{Start: s, End: e}, nil
}
