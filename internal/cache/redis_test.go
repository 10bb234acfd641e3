package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/studiobook/backend/internal/cache"
	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/service"
	"github.com/pkordes/studiobook/backend/testutil"
)

var _ service.BlockedDatesCache = (*cache.BlockedDates)(nil)

func TestBlockedDates_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := cache.NewBlockedDates(testutil.NewRedis(t), time.Minute)
	id := uuid.New()

	_, gen, ok, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache is a miss")
	assert.Zero(t, gen)

	want := []domain.Date{domain.NewDate(2026, 7, 1), domain.NewDate(2026, 7, 2)}
	require.NoError(t, c.Set(ctx, id, gen, want))

	got, _, ok, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	require.NoError(t, c.Invalidate(ctx, id))
	_, gen, ok, err = c.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(1), gen)
}

func TestBlockedDates_EmptyListIsAHit(t *testing.T) {
	ctx := context.Background()
	c := cache.NewBlockedDates(testutil.NewRedis(t), time.Minute)
	id := uuid.New()

	require.NoError(t, c.Set(ctx, id, 0, nil))

	got, _, ok, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestBlockedDates_InvalidateMissingKey(t *testing.T) {
	c := cache.NewBlockedDates(testutil.NewRedis(t), time.Minute)

	assert.NoError(t, c.Invalidate(context.Background(), uuid.New()))
}

// A reader that missed, then lost a race with a committed booking, must not
// write its stale dates back.
func TestBlockedDates_SetAfterInvalidateIsSkipped(t *testing.T) {
	ctx := context.Background()
	c := cache.NewBlockedDates(testutil.NewRedis(t), time.Minute)
	id := uuid.New()

	_, readGen, ok, err := c.Get(ctx, id)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Invalidate(ctx, id))
	require.NoError(t, c.Set(ctx, id, readGen, []domain.Date{domain.NewDate(2026, 7, 1)}))

	_, gen, ok, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok, "stale write must be dropped")

	fresh := []domain.Date{domain.NewDate(2026, 7, 1), domain.NewDate(2026, 7, 9)}
	require.NoError(t, c.Set(ctx, id, gen, fresh))
	got, _, ok, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, fresh, got)
}

func TestBlockedDates_Expires(t *testing.T) {
	ctx := context.Background()
	rdb := testutil.NewRedis(t)
	c := cache.NewBlockedDates(rdb, time.Minute)
	id := uuid.New()

	require.NoError(t, c.Set(ctx, id, 0, []domain.Date{domain.NewDate(2026, 7, 1)}))

	ttl, err := rdb.TTL(ctx, "studiobook:blocked-dates:"+id.String()).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestBlockedDates_NoTTLKeepsEntry(t *testing.T) {
	ctx := context.Background()
	rdb := testutil.NewRedis(t)
	c := cache.NewBlockedDates(rdb, 0)
	id := uuid.New()

	require.NoError(t, c.Set(ctx, id, 0, []domain.Date{domain.NewDate(2026, 7, 1)}))

	ttl, err := rdb.TTL(ctx, "studiobook:blocked-dates:"+id.String()).Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl)
}
