// package attemptport caches per-user attempt counts in Redis so hint
// resolution does not hit PostgreSQL on every request.
package attemptport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/codecamp-2025.net/internal/core/ports/primary"
	"gitlab.com/codecamp-2025.net/internal/core/ports/secondary"
)

const (
	attemptKeyPrefix  = "attempts:"
	attemptExpiration = 10 * time.Minute
)

var _ secondary.AttemptCache = (*AttemptCache)(nil)

type AttemptCache struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewAttemptCache creates a new Redis attempt-count cache
func NewAttemptCache(redisClient *redis.Client, logger primary.Logger) *AttemptCache {
	return &AttemptCache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Get returns the cached attempt count, or -1 on cache miss
func (c *AttemptCache) Get(ctx context.Context, exerciseID, userID uuid.UUID) (int, error) {
	count, err := c.redisClient.Get(ctx, attemptKey(exerciseID, userID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		return -1, fmt.Errorf("failed to read attempt count: %w", err)
	}
	return count, nil
}

// Set stores the attempt count with an expiration
func (c *AttemptCache) Set(ctx context.Context, exerciseID, userID uuid.UUID, count int) error {
	if err := c.redisClient.Set(ctx, attemptKey(exerciseID, userID), count, attemptExpiration).Err(); err != nil {
		return fmt.Errorf("failed to cache attempt count: %w", err)
	}
	return nil
}

// Invalidate drops the cached count after a new submission
func (c *AttemptCache) Invalidate(ctx context.Context, exerciseID, userID uuid.UUID) error {
	if err := c.redisClient.Del(ctx, attemptKey(exerciseID, userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate attempt count: %w", err)
	}
	return nil
}

func attemptKey(exerciseID, userID uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", attemptKeyPrefix, exerciseID, userID)
}
