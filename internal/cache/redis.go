package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tunehawk/music-recommendation-service/internal/domain"
)

const defaultTTL = 10 * time.Minute

// seedSep joins seed titles into a cache key. Seed order is semantic
// (the content pass depends on it), so keys are not normalized further.
const seedSep = "\x1f"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func buildKey(seeds []string) string {
	return "rec:seeds:" + strings.Join(seeds, seedSep)
}

// Get hybrid recommendations for a seed list from cache
func (c *Cache) Get(ctx context.Context, seeds []string) ([]domain.Recommendation, bool, error) {
	key := buildKey(seeds)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to get recommendations from cache: %w", err)
	}

	var recs []domain.Recommendation
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal recommendations %s: %w", key, err)
	}

	return recs, true, nil
}

// Store hybrid recommendations in cache
func (c *Cache) Set(ctx context.Context, seeds []string, recs []domain.Recommendation) error {
	key := buildKey(seeds)
	val, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set recommendations in cache: %w", err)
	}

	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
