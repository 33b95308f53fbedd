package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Unbantucniak/FTMS/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"})
	assert.NotNil(t, c)
	assert.NoError(t, c.Close())
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedisCacheWithClient(client)
	defer c.Close()

	ctx := context.Background()
	assert.ErrorContains(t, c.InvalidateFlights(ctx), "invalidate cache:flights")
	assert.ErrorContains(t, c.MarkSeeded(ctx, "run-1", time.Now()), "mark seeded")
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "cache:flights", flightsKey())
	assert.Equal(t, "seed:flights:last", seedMarkerKey())
}
