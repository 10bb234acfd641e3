package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time of day and no location.
// The zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate builds a Date, normalising out-of-range values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses "2006-01-02" or an RFC 3339 date-time.
// For a date-time the calendar date is taken in the offset carried by the
// string, so "2025-06-03T00:00:00+02:00" is June 3rd.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats d as "2006-01-02".
func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to, or
// after other.
func (d Date) Compare(other Date) int {
	return d.Time().Compare(other.Time())
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

const secondsPerDay = 24 * 60 * 60

// DaysSince returns the number of calendar days from other to d.
// Both are anchored at UTC midnight, so the result is exact. Unix seconds are
// used instead of Sub, whose Duration saturates after about 292 years.
func (d Date) DaysSince(other Date) int {
	return int((d.Time().Unix() - other.Time().Unix()) / secondsPerDay)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	Start Date
	End   Date
}

// Validate returns ErrInvalidDate if either bound is unset or End is before Start.
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: date range bounds are required", ErrInvalidDate)
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidDate, r.End, r.Start)
	}
	return nil
}

// DayCount is the calendar-day difference End − Start: 0 for a single-day range.
func (r DateRange) DayCount() int {
	if r.Start.IsZero() || r.End.IsZero() {
		return 0
	}
	return r.End.DaysSince(r.Start)
}

// Overlaps reports whether the two inclusive ranges share at least one date.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.End.Before(other.Start) && !other.End.Before(r.Start)
}

// Days returns every date in the range, ascending.
func (r DateRange) Days() []Date {
	if r.End.Before(r.Start) {
		return nil
	}
	days := make([]Date, 0, r.DayCount()+1)
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// DateSet is an unordered set of calendar dates.
type DateSet map[Date]struct{}

// Add inserts d into the set.
func (s DateSet) Add(d Date) {
	s[d] = struct{}{}
}

// Sorted returns the members ascending. Always non-nil.
func (s DateSet) Sorted() []Date {
	out := make([]Date, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	slices.SortFunc(out, Date.Compare)
	return out
}
