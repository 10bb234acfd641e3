package domain

import "math"

// Quote is the breakdown behind a total price.
type Quote struct {
	// DayCount is the calendar-day difference of the range (0 for one day).
	DayCount int
	// Hours is the selected interval's duration; 0 when a time is unset.
	Hours float64
	// BilledHours is max(Hours, minimum booking length).
	BilledHours float64
	UnitPrice   float64
	Total       float64
}

// NewQuote prices a booking: the billable hours of one day times unitPrice,
// multiplied by the day count when the range spans more than one calendar day.
//
// The minimum booking length is a floor on billable hours, never a ceiling.
// A negative interval is priced as-is; rejecting it is the caller's job.
func NewQuote(r DateRange, iv Interval, unitPrice, minimumBookingLength float64) Quote {
	dayCount := r.DayCount()
	hours := iv.Hours()
	billed := math.Max(hours, minimumBookingLength)
	base := billed * unitPrice

	total := base
	if dayCount != 0 {
		total = base * float64(dayCount)
	}
	return Quote{
		DayCount:    dayCount,
		Hours:       hours,
		BilledHours: billed,
		UnitPrice:   unitPrice,
		Total:       total,
	}
}

// TotalPrice returns NewQuote(...).Total.
func TotalPrice(r DateRange, iv Interval, unitPrice, minimumBookingLength float64) float64 {
	return NewQuote(r, iv, unitPrice, minimumBookingLength).Total
}

// QuoteRequest is a client's pricing question for a listing. Times may be
// empty while the user is still choosing; the quote then bills the minimum.
type QuoteRequest struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
