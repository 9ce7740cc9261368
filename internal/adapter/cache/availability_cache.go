package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AvailabilityCache stores display-only availability numbers in Redis.
type AvailabilityCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewAvailabilityCache(client redis.Cmdable, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func Key(eventID int64) string {
	return fmt.Sprintf("availability:%d", eventID)
}

func (c *AvailabilityCache) Get(ctx context.Context, eventID int64) (int, bool, error) {
	n, err := c.client.Get(ctx, Key(eventID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get availability: %w", err)
	}
	return n, true, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, eventID int64, available int) error {
	if err := c.client.Set(ctx, Key(eventID), available, c.ttl).Err(); err != nil {
		return fmt.Errorf("set availability: %w", err)
	}
	return nil
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, eventID int64) error {
	if err := c.client.Del(ctx, Key(eventID)).Err(); err != nil {
		return fmt.Errorf("delete availability: %w", err)
	}
	return nil
}
