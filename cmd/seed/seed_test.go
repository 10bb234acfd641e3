package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/studiobook/backend/internal/domain"
)

const fixture = `
[[users]]
name = "Alice"
email = "alice@example.com"
token = "alice-token"
session_days = 7

[[users]]
name = "Bob"
email = "bob@example.com"

[[listings]]
owner = "alice@example.com"
title = "Loft"
price = 100.0
minimum_booking_length = 2.5
crew_count = 10
area = 900

  [[listings.reservations]]
  user = "bob@example.com"
  start_date = "2026-07-01"
  end_date = "2026-07-02"
  start_time = "09:00"
  end_time = "12:00"
`

func TestParseSeed(t *testing.T) {
	s, err := parseSeed(strings.NewReader(fixture))
	require.NoError(t, err)

	require.Len(t, s.Users, 2)
	assert.Equal(t, "alice-token", s.Users[0].Token)
	assert.Equal(t, 7, s.Users[0].SessionDays)
	assert.Empty(t, s.Users[1].Token)

	require.Len(t, s.Listings, 1)
	l := s.Listings[0]
	assert.Equal(t, 2.5, l.MinimumBookingLength)
	assert.Equal(t, 900, l.Area)
	require.Len(t, l.Reservations, 1)
	assert.Equal(t, "2026-07-02", l.Reservations[0].EndDate)
}

func TestParseSeed_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "malformed", input: "[[users]\n", wantErr: "decode"},
		{name: "unknown key", input: "[[users]]\nemail = \"a@x\"\nnickname = \"a\"\n", wantErr: "unknown keys"},
		{name: "user without email", input: "[[users]]\nname = \"a\"\n", wantErr: "has no email"},
		{
			name:    "unknown owner",
			input:   "[[listings]]\nowner = \"ghost@example.com\"\ntitle = \"x\"\n",
			wantErr: "unknown owner",
		},
		{
			name: "unknown guest",
			input: "[[users]]\nemail = \"a@x\"\n[[listings]]\nowner = \"a@x\"\ntitle = \"x\"\n" +
				"[[listings.reservations]]\nuser = \"b@x\"\n",
			wantErr: "unknown guest",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseSeed(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

// fakeSeeder records writes in memory.
type fakeSeeder struct {
	users        []domain.User
	sessions     []domain.Session
	listings     []domain.Listing
	reservations []domain.ReservationRequest
	reserveErr   error
}

func (f *fakeSeeder) CreateUser(_ context.Context, u domain.User) (domain.User, error) {
	u.ID = uuid.New()
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeSeeder) CreateSession(_ context.Context, s domain.Session) error {
	f.sessions = append(f.sessions, s)
	return nil
}

func (f *fakeSeeder) CreateListing(_ context.Context, ownerID uuid.UUID, l domain.Listing) (domain.Listing, error) {
	l.ID = uuid.New()
	l.OwnerID = ownerID
	f.listings = append(f.listings, l)
	return l, nil
}

func (f *fakeSeeder) CreateReservation(_ context.Context, req domain.ReservationRequest) (domain.Listing, error) {
	if f.reserveErr != nil {
		return domain.Listing{}, f.reserveErr
	}
	f.reservations = append(f.reservations, req)
	return domain.Listing{Reservations: []domain.Reservation{{ID: uuid.New(), UserID: req.UserID}}}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestApply(t *testing.T) {
	s, err := parseSeed(strings.NewReader(fixture))
	require.NoError(t, err)

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	dst := &fakeSeeder{}
	require.NoError(t, apply(context.Background(), s, dst, now, quietLogger()))

	require.Len(t, dst.users, 2)
	alice, bob := dst.users[0], dst.users[1]

	// Only users with a token get a session.
	require.Len(t, dst.sessions, 1)
	assert.Equal(t, alice.ID, dst.sessions[0].UserID)
	assert.Equal(t, now.AddDate(0, 0, 7), dst.sessions[0].ExpiresAt)

	require.Len(t, dst.listings, 1)
	assert.Equal(t, alice.ID, dst.listings[0].OwnerID)

	require.Len(t, dst.reservations, 1)
	req := dst.reservations[0]
	assert.Equal(t, dst.listings[0].ID.String(), req.ListingID)
	assert.Equal(t, bob.ID, req.UserID)
	require.NotNil(t, req.TotalPrice)
	require.NotNil(t, req.TotalHours)
}

func TestApply_ReservationFailure(t *testing.T) {
	s, err := parseSeed(strings.NewReader(fixture))
	require.NoError(t, err)

	dst := &fakeSeeder{reserveErr: domain.ErrConflict}
	err = apply(context.Background(), s, dst, time.Now(), quietLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Contains(t, err.Error(), `listing "Loft"`)
}
