package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a time of day at minute resolution, formatted "HH:MM" (24-hour).
// The zero value means "unset" and is distinct from midnight.
type Clock struct {
	minutes int
	set     bool
}

// NewClock returns the Clock for hour:minute. It does not range-check; use
// ParseClock for untrusted input.
func NewClock(hour, minute int) Clock {
	return Clock{minutes: hour*60 + minute, set: true}
}

// ParseClock parses "HH:MM" (a single-digit hour is accepted).
// An empty string yields the unset Clock and no error.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Clock{}, nil
	}
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 || !isDigits(hh) || !isDigits(mm) {
		return Clock{}, fmt.Errorf("%w: time %q must be HH:MM", ErrValidation, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return Clock{}, fmt.Errorf("%w: time %q has an invalid hour", ErrValidation, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("%w: time %q has an invalid minute", ErrValidation, s)
	}
	return NewClock(h, m), nil
}

// IsZero reports whether c is unset.
func (c Clock) IsZero() bool {
	return !c.set
}

// Minutes returns minutes since midnight.
func (c Clock) Minutes() int {
	return c.minutes
}

// String formats c as "HH:MM", or "" when unset.
func (c Clock) String() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}

// MarshalText implements encoding.TextMarshaler.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clock) UnmarshalText(b []byte) error {
	parsed, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Interval is a time-of-day window that repeats on every day of a booking.
type Interval struct {
	Start Clock
	End   Clock
}

// Hours is (End − Start) in fractional hours, or 0 if either bound is unset.
// It is negative when End is earlier on the clock than Start.
func (iv Interval) Hours() float64 {
	if iv.Start.IsZero() || iv.End.IsZero() {
		return 0
	}
	return float64(iv.End.minutes-iv.Start.minutes) / 60
}

// Validate requires both bounds and End strictly after Start.
func (iv Interval) Validate() error {
	if iv.Start.IsZero() || iv.End.IsZero() {
		return fmt.Errorf("%w: start and end time are required", ErrValidation)
	}
	if iv.End.minutes <= iv.Start.minutes {
		return fmt.Errorf("%w: end time %s must be after start time %s", ErrValidation, iv.End, iv.Start)
	}
	return nil
}

// Overlaps reports whether the two half-open windows [Start, End) intersect.
// Back-to-back windows (one ends at 12:00, the next starts at 12:00) do not.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.minutes < other.End.minutes && other.Start.minutes < iv.End.minutes
}

// isDigits reports whether s holds only ASCII digits. strconv.Atoi alone would
// also accept a leading sign.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
