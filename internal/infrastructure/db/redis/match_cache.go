package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matchpoint/dating-api/internal/core/ports"
)

const matchTTL = 5 * time.Minute

// MatchCache stores computed match candidate lists keyed by requester ID.
// Entries expire after matchTTL and are dropped eagerly whenever a profile,
// account, or rating mutation could change a user's candidate list.
type MatchCache struct {
	client *redis.Client
}

// NewMatchCache creates a MatchCache wrapping the given Redis client.
func NewMatchCache(client *redis.Client) *MatchCache {
	return &MatchCache{client: client}
}

// Get returns the cached candidate list for userID. The second return value
// reports whether an entry was present.
func (c *MatchCache) Get(ctx context.Context, userID string) ([]ports.MatchCandidate, bool, error) {
	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("match cache get: %w", err)
	}

	var candidates []ports.MatchCandidate
	if err := json.Unmarshal([]byte(val), &candidates); err != nil {
		return nil, false, fmt.Errorf("match cache decode: %w", err)
	}
	return candidates, true, nil
}

// Set stores the candidate list for userID with the standard TTL.
func (c *MatchCache) Set(ctx context.Context, userID string, candidates []ports.MatchCandidate) error {
	b, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("match cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(userID), b, matchTTL).Err()
}

// Invalidate drops the cached lists for the given users.
func (c *MatchCache) Invalidate(ctx context.Context, userIDs ...string) error {
	if len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = c.key(id)
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *MatchCache) key(userID string) string {
	return "matches:" + userID
}
