package guard

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisGuard implements fixed-window throttling over shared Redis counters so
// every portal replica sees the same abuse state.
type RedisGuard struct {
	client *redis.Client
	log    *zap.Logger
	limit  int
	window time.Duration
}

func NewRedisGuard(client *redis.Client, log *zap.Logger, limit int, window time.Duration) *RedisGuard {
	return &RedisGuard{
		client: client,
		log:    log.With(zap.String("guard", "redis")),
		limit:  limit,
		window: window,
	}
}

func (g *RedisGuard) Allow(ctx context.Context, key, route string) error {
	redisKey := "guard:" + route + ":" + key

	count, err := g.client.Incr(ctx, redisKey).Result()
	if err != nil {
		// A guard outage should not take authentication down with it.
		g.log.Error("Guard counter unavailable, allowing request",
			zap.Error(err),
			zap.String("route", route),
		)
		return nil
	}

	if count == 1 {
		if err := g.client.Expire(ctx, redisKey, g.window).Err(); err != nil {
			g.log.Warn("Failed to set guard window expiry",
				zap.Error(err),
				zap.String("route", route),
			)
		}
	}

	if count > int64(g.limit) {
		return ErrTooManyRequests
	}

	return nil
}
