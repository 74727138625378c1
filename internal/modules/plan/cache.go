// README: Plan cache backed by Redis, keyed by a hash of the request.
package plan

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "plan:cache:%s"
	// Generated plans are date-anchored; a day of reuse is plenty.
	cacheTTL = 24 * time.Hour
)

type Cache struct {
	redis *redis.Client
}

func NewCache(redis *redis.Client) *Cache {
	return &Cache{redis: redis}
}

// Get returns the cached plan for an identical request, if any. Errors and
// undecodable entries are reported to the caller, which treats them as a miss.
func (c *Cache) Get(ctx context.Context, req TravelRequest) (Itinerary, bool, error) {
	key, err := cacheKey(req)
	if err != nil {
		return nil, false, err
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		return nil, false, err
	}
	return Itinerary(doc), true, nil
}

func (c *Cache) Set(ctx context.Context, req TravelRequest, plan Itinerary) error {
	key, err := cacheKey(req)
	if err != nil {
		return err
	}
	val, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, key, val, cacheTTL).Err()
}

// cacheKey hashes the canonical JSON encoding of the request. encoding/json
// sorts map keys, so identical requests hash identically regardless of the
// order fields arrived in.
func cacheKey(req TravelRequest) (string, error) {
	canonical, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return fmt.Sprintf(cacheKeyPrefix, hex.EncodeToString(sum[:])), nil
}
