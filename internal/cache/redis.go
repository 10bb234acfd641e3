// Package cache holds read-through caches in front of Postgres.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/pkordes/studiobook/backend/internal/domain"
)

const (
	blockedDatesPrefix    = "studiobook:blocked-dates:"
	blockedDatesGenPrefix = "studiobook:blocked-dates-gen:"

	// genTTL bounds how long an untouched generation counter lives. A reader
	// holding a generation across its expiry only loses one cache write.
	genTTL = 24 * time.Hour
)

// setIfGeneration stores ARGV[2] under KEYS[2] only while the counter at
// KEYS[1] still equals ARGV[1]. A missing counter reads as 0.
var setIfGeneration = redis.NewScript(`
local gen = redis.call('GET', KEYS[1]) or '0'
if gen ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// BlockedDates caches each listing's blocked dates as a JSON array of
// YYYY-MM-DD strings under one key per listing. A per-listing generation
// counter, bumped by Invalidate, keeps a reader that loaded reservations before
// a new booking from writing its stale result back.
type BlockedDates struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewBlockedDates returns a cache whose entries expire after ttl.
// A non-positive ttl keeps entries until they are invalidated.
func NewBlockedDates(rdb redis.Cmdable, ttl time.Duration) *BlockedDates {
	if ttl < 0 {
		ttl = 0
	}
	return &BlockedDates{rdb: rdb, ttl: ttl}
}

// Connect parses a redis:// URL and verifies the server answers PING.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache.Connect: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache.Connect: ping: %w", err)
	}
	return client, nil
}

func blockedDatesKey(listingID uuid.UUID) string {
	return blockedDatesPrefix + listingID.String()
}

func generationKey(listingID uuid.UUID) string {
	return blockedDatesGenPrefix + listingID.String()
}

// Get returns the cached dates and true on a hit. On a miss it returns the
// listing's current generation, to be passed back to Set.
func (c *BlockedDates) Get(ctx context.Context, listingID uuid.UUID) ([]domain.Date, int64, bool, error) {
	vals, err := c.rdb.MGet(ctx, generationKey(listingID), blockedDatesKey(listingID)).Result()
	if err != nil {
		return nil, 0, false, fmt.Errorf("cache.BlockedDates.Get: %w", err)
	}

	var gen int64
	if s, ok := vals[0].(string); ok {
		gen, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, 0, false, fmt.Errorf("cache.BlockedDates.Get: generation: %w", err)
		}
	}
	raw, ok := vals[1].(string)
	if !ok {
		return nil, gen, false, nil
	}

	var dates []domain.Date
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		return nil, gen, false, fmt.Errorf("cache.BlockedDates.Get: decode: %w", err)
	}
	if dates == nil {
		dates = []domain.Date{}
	}
	return dates, gen, true, nil
}

// Set stores dates for the listing unless the listing was invalidated after
// gen was read. A skipped write is not an error.
func (c *BlockedDates) Set(ctx context.Context, listingID uuid.UUID, gen int64, dates []domain.Date) error {
	if dates == nil {
		dates = []domain.Date{}
	}
	raw, err := json.Marshal(dates)
	if err != nil {
		return fmt.Errorf("cache.BlockedDates.Set: encode: %w", err)
	}
	keys := []string{generationKey(listingID), blockedDatesKey(listingID)}
	err = setIfGeneration.Run(ctx, c.rdb, keys, strconv.FormatInt(gen, 10), raw, c.ttl.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("cache.BlockedDates.Set: %w", err)
	}
	return nil
}

// Invalidate drops the listing's entry and bumps its generation so in-flight
// reads cannot repopulate it. Dropping a missing entry is not an error.
func (c *BlockedDates) Invalidate(ctx context.Context, listingID uuid.UUID) error {
	gk := generationKey(listingID)
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, gk)
		pipe.Expire(ctx, gk, genTTL)
		pipe.Del(ctx, blockedDatesKey(listingID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache.BlockedDates.Invalidate: %w", err)
	}
	return nil
}
