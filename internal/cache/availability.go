package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/studio-navalha/agenda-api/internal/domain/schedule"
)

// AvailabilityCache keeps the computed slot grid for one barber-day
// under a redis hash, one field per service. The whole hash is dropped
// whenever any booking for that barber-day changes, so staleness can
// only ever last until the next write.
//
// Cached grids are pre-past-time-filter: the "already elapsed today"
// pass depends on the current minute and is applied on every read.
//
// A nil *AvailabilityCache is valid and disables caching.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	if rdb == nil {
		return nil
	}
	return &AvailabilityCache{
		rdb: rdb,
		ttl: 10 * time.Minute,
	}
}

func dayKey(barberID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", barberID, date)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	barberID uint,
	serviceID uint,
	date string,
) ([]schedule.TimeSlot, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.HGet(ctx, dayKey(barberID, date), fmt.Sprint(serviceID)).Result()
	if err != nil {
		return nil, false
	}

	var slots []schedule.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	barberID uint,
	serviceID uint,
	date string,
	slots []schedule.TimeSlot,
) {

	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	key := dayKey(barberID, date)
	pipe := c.rdb.Pipeline()
	pipe.HSet(ctx, key, fmt.Sprint(serviceID), raw)
	pipe.Expire(ctx, key, c.ttl)
	_, _ = pipe.Exec(ctx)
}

// Invalidate drops every cached grid for a barber-day. Called after
// any booking state change on that day.
func (c *AvailabilityCache) Invalidate(ctx context.Context, barberID uint, date string) {
	if c == nil {
		return
	}
	_ = c.rdb.Del(ctx, dayKey(barberID, date)).Err()
}
