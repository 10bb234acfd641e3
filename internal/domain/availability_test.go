package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/studiobook/backend/internal/domain"
)

func reservationOn(start, end domain.Date) domain.Reservation {
	return domain.Reservation{
		ID:        uuid.New(),
		StartDate: start,
		EndDate:   end,
		StartTime: domain.NewClock(10, 0),
		EndTime:   domain.NewClock(12, 0),
	}
}

func TestBlockedDates_Empty(t *testing.T) {
	got, err := domain.BlockedDates(nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBlockedDates_SingleDay(t *testing.T) {
	day := domain.NewDate(2025, 7, 4)

	got, err := domain.BlockedDates([]domain.Reservation{reservationOn(day, day)})

	require.NoError(t, err)
	assert.Equal(t, []domain.Date{day}, got.Sorted())
}

func TestBlockedDates_ExpandsInclusiveSpan(t *testing.T) {
	start := domain.NewDate(2025, 6, 29)
	end := domain.NewDate(2025, 7, 2)

	got, err := domain.BlockedDates([]domain.Reservation{reservationOn(start, end)})

	require.NoError(t, err)
	assert.Equal(t, []domain.Date{
		domain.NewDate(2025, 6, 29),
		domain.NewDate(2025, 6, 30),
		domain.NewDate(2025, 7, 1),
		domain.NewDate(2025, 7, 2),
	}, got.Sorted())
	assert.NotContains(t, got, domain.NewDate(2025, 6, 28))
	assert.NotContains(t, got, domain.NewDate(2025, 7, 3))
}

func TestBlockedDates_UnionCollapsesDuplicates(t *testing.T) {
	a := reservationOn(domain.NewDate(2025, 6, 1), domain.NewDate(2025, 6, 3))
	b := reservationOn(domain.NewDate(2025, 6, 3), domain.NewDate(2025, 6, 4))
	c := reservationOn(domain.NewDate(2025, 6, 10), domain.NewDate(2025, 6, 10))

	got, err := domain.BlockedDates([]domain.Reservation{a, b, c})

	require.NoError(t, err)
	assert.Len(t, got, 5)
	for _, d := range []domain.Date{
		domain.NewDate(2025, 6, 1), domain.NewDate(2025, 6, 2), domain.NewDate(2025, 6, 3),
		domain.NewDate(2025, 6, 4), domain.NewDate(2025, 6, 10),
	} {
		assert.Contains(t, got, d, "expected %s to be blocked", d)
	}
}

func TestBlockedDates_SameInputSameResult(t *testing.T) {
	in := []domain.Reservation{
		reservationOn(domain.NewDate(2025, 12, 30), domain.NewDate(2026, 1, 2)),
		reservationOn(domain.NewDate(2025, 12, 24), domain.NewDate(2025, 12, 24)),
	}

	first, err := domain.BlockedDates(in)
	require.NoError(t, err)
	second, err := domain.BlockedDates(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBlockedDates_InvalidSpan(t *testing.T) {
	tests := []struct {
		name string
		res  domain.Reservation
	}{
		{"end before start", reservationOn(domain.NewDate(2025, 6, 5), domain.NewDate(2025, 6, 1))},
		{"unset start", reservationOn(domain.Date{}, domain.NewDate(2025, 6, 1))},
		{"unset end", reservationOn(domain.NewDate(2025, 6, 1), domain.Date{})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.BlockedDates([]domain.Reservation{tc.res})
			assert.ErrorIs(t, err, domain.ErrInvalidDate)
		})
	}
}

func TestListing_FirstConflict(t *testing.T) {
	existing := reservationOn(domain.NewDate(2025, 6, 1), domain.NewDate(2025, 6, 3))
	l := domain.Listing{Reservations: []domain.Reservation{existing}}

	tests := []struct {
		name      string
		candidate domain.Reservation
		conflict  bool
	}{
		{
			name:      "same dates overlapping hours",
			candidate: domain.Reservation{StartDate: domain.NewDate(2025, 6, 3), EndDate: domain.NewDate(2025, 6, 5), StartTime: domain.NewClock(11, 0), EndTime: domain.NewClock(13, 0)},
			conflict:  true,
		},
		{
			name:      "same dates back-to-back hours",
			candidate: domain.Reservation{StartDate: domain.NewDate(2025, 6, 2), EndDate: domain.NewDate(2025, 6, 2), StartTime: domain.NewClock(12, 0), EndTime: domain.NewClock(14, 0)},
			conflict:  false,
		},
		{
			name:      "disjoint dates same hours",
			candidate: domain.Reservation{StartDate: domain.NewDate(2025, 6, 4), EndDate: domain.NewDate(2025, 6, 4), StartTime: domain.NewClock(10, 0), EndTime: domain.NewClock(12, 0)},
			conflict:  false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := l.FirstConflict(tc.candidate)
			assert.Equal(t, tc.conflict, ok)
			if tc.conflict {
				assert.Equal(t, existing.ID, got.ID)
			}
		})
	}
}
