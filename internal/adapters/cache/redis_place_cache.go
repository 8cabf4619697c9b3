package cache

import (
	"context"
	"earth-zone-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPlaceCache is a Redis-backed cache mapping queries to geocoded
// places. Entries expire after TTL; geocoding results drift slowly, so a
// day is plenty.
type RedisPlaceCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlaceCache(client *redis.Client) *RedisPlaceCache {
	return &RedisPlaceCache{Client: client, TTL: 24 * time.Hour}
}

func (c *RedisPlaceCache) key(query string) string {
	return "place:" + query
}

// Fetch the cached place for the given query.
func (c *RedisPlaceCache) Get(ctx context.Context, query string) (ports.Place, bool, error) {
	if c.Client == nil {
		return ports.Place{}, false, errors.New("place cache: redis client is nil")
	}

	b, err := c.Client.Get(ctx, c.key(query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.Place{}, false, nil
	}
	if err != nil {
		return ports.Place{}, false, fmt.Errorf("get place cache: %w", err)
	}

	var place ports.Place
	if err := json.Unmarshal(b, &place); err != nil {
		return ports.Place{}, false, fmt.Errorf("get place cache: decode: %w", err)
	}

	return place, true, nil
}

// Store a query -> place mapping in the cache.
func (c *RedisPlaceCache) Put(ctx context.Context, query string, place ports.Place) error {
	if c.Client == nil {
		return errors.New("place cache: redis client is nil")
	}
	if query == "" {
		return errors.New("insert place cache: empty query key")
	}

	b, err := json.Marshal(place)
	if err != nil {
		return fmt.Errorf("insert place cache: encode: %w", err)
	}

	if err := c.Client.Set(ctx, c.key(query), b, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert place cache query=%q: %w", query, err)
	}

	return nil
}
