package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Unbantucniak/FTMS/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache talks to the cache the booking API reads flights through.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}))
}

func NewRedisCacheWithClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// InvalidateFlights drops the cached flight list so the next read goes to
// the database and sees the seeded rows.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	if err := c.client.Del(ctx, flightsKey()).Err(); err != nil {
		return fmt.Errorf("invalidate %s: %w", flightsKey(), err)
	}
	return nil
}

// MarkSeeded records the last seeding run so operators can see when test
// data was loaded.
func (c *RedisCache) MarkSeeded(ctx context.Context, runID string, at time.Time) error {
	err := c.client.HSet(ctx, seedMarkerKey(), map[string]interface{}{
		"run_id":    runID,
		"seeded_at": at.UTC().Format(time.RFC3339),
	}).Err()
	if err != nil {
		return fmt.Errorf("mark seeded: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func flightsKey() string {
	return "cache:flights"
}

func seedMarkerKey() string {
	return "seed:flights:last"
}
