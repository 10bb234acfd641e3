package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/repo"
	"github.com/pkordes/studiobook/backend/testutil"
)

// testRepos bundles repos that share one rolled-back transaction.
type testRepos struct {
	users        repo.UserRepo
	listings     repo.ListingRepo
	reservations repo.ReservationRepo
}

// newTestRepos opens a single transaction and returns every repo backed by it.
// Tests can create users, listings and reservations within the same
// transaction, which is rolled back automatically when the test finishes.
func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return testRepos{
		users:        repo.NewUserRepo(tx),
		listings:     repo.NewListingRepo(tx),
		reservations: repo.NewReservationRepo(tx),
	}
}

// mustCreateUser inserts a user with a unique email and fails the test on error.
func mustCreateUser(t *testing.T, r repo.UserRepo) domain.User {
	t.Helper()
	u, err := r.Create(context.Background(), domain.User{
		Name:  "Studio Guest",
		Email: uuid.NewString() + "@example.com",
	})
	require.NoError(t, err, "create user")
	return u
}

// mustCreateListing inserts a listing owned by ownerID.
func mustCreateListing(t *testing.T, r repo.ListingRepo, ownerID uuid.UUID) domain.Listing {
	t.Helper()
	l, err := r.Create(context.Background(), domain.Listing{
		OwnerID:              ownerID,
		Title:                "Daylight Loft",
		Price:                100,
		MinimumBookingLength: 2,
		CrewCount:            12,
		Area:                 1800,
	})
	require.NoError(t, err, "create listing")
	return l
}

// reservationFixture returns a 10:00–12:00 reservation over the given dates.
func reservationFixture(userID uuid.UUID, start, end domain.Date) domain.Reservation {
	return domain.Reservation{
		UserID:     userID,
		StartDate:  start,
		EndDate:    end,
		StartTime:  domain.NewClock(10, 0),
		EndTime:    domain.NewClock(12, 0),
		TotalHours: 2,
		TotalPrice: 200,
	}
}

// appendAsIs is a BuildReservation that ignores the listing and returns res.
func appendAsIs(res domain.Reservation) repo.BuildReservation {
	return func(domain.Listing) (domain.Reservation, error) { return res, nil }
}

