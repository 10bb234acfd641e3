package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/repo"
	"github.com/pkordes/studiobook/backend/internal/service"
	"github.com/pkordes/studiobook/backend/testutil"
)

// Two writers racing for the same slot run in separate transactions on a real
// pool, so the listing row lock decides who wins.
func TestReservationService_Create_ConcurrentSameSlot(t *testing.T) {
	pool := testutil.NewPool(t)
	ctx := context.Background()
	require.NoError(t, testutil.MigrateUp(ctx, testutil.NewSQLDB(t)))

	users := repo.NewUserRepo(pool)
	listings := repo.NewListingRepo(pool)

	guest, err := users.Create(ctx, domain.User{Name: "Racing Guest", Email: uuid.NewString() + "@example.com"})
	require.NoError(t, err)
	listing, err := listings.Create(ctx, domain.Listing{
		OwnerID:              guest.ID,
		Title:                "Contended Loft",
		Price:                100,
		MinimumBookingLength: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		// Reservations go with the listing via ON DELETE CASCADE.
		_, _ = pool.Exec(context.Background(), `DELETE FROM listings WHERE id = $1`, listing.ID)
		_, _ = pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, guest.ID)
	})

	svc := service.NewReservationService(repo.NewReservationRepo(pool), nil, nil, discardLogger())
	req := domain.ReservationRequest{
		ListingID:  listing.ID.String(),
		UserID:     guest.ID,
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-01",
		StartTime:  "10:00",
		EndTime:    "12:00",
		TotalPrice: ptr(200.0),
		TotalHours: ptr(2.0),
	}

	const writers = 2
	var (
		start sync.WaitGroup
		done  sync.WaitGroup
		errs  = make([]error, writers)
	)
	start.Add(1)
	for i := range writers {
		done.Add(1)
		go func() {
			defer done.Done()
			start.Wait()
			_, errs[i] = svc.Create(ctx, req)
		}()
	}
	start.Done()
	done.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, domain.ErrConflict):
			conflicted++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one writer books the slot")
	assert.Equal(t, 1, conflicted, "the other sees the committed booking")

	stored, err := listings.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Reservations, 1)
}
