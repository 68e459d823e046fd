package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	statsCacheKey = "stats:dashboard"
	statsCacheTTL = 5 * time.Minute
	prefsCacheKey = "preferences:current"
	prefsCacheTTL = 30 * time.Minute
)

// invalidateCache drops the given keys. Cache failures are logged and
// swallowed; the store remains the source of truth.
func invalidateCache(ctx context.Context, cache *redis.Client, log *logrus.Logger, keys ...string) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, keys...).Err(); err != nil {
		log.WithError(err).WithField("keys", keys).Warn("Failed to invalidate cache")
	}
}
