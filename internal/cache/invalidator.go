package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/sonexa-app/sonexa-api/internal/config"
)

// Invalidator tells the presentation layer that cached views of a class or
// quiz are stale. Invalidation is best-effort: a miss here only delays a
// refresh, so failures are logged and swallowed. Every write that matters
// touches a quiz, so the quiz signal carries the class key too.
type Invalidator interface {
	InvalidateQuiz(ctx context.Context, classID, quizID string)
}

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

type redisInvalidator struct {
	client *redis.Client
}

func NewRedisInvalidator(client *redis.Client) Invalidator {
	return &redisInvalidator{client: client}
}

func (i *redisInvalidator) InvalidateQuiz(ctx context.Context, classID, quizID string) {
	i.del(ctx, "views:class:"+classID, "views:quiz:"+classID+":"+quizID)
}

func (i *redisInvalidator) del(ctx context.Context, keys ...string) {
	if err := i.client.Del(ctx, keys...).Err(); err != nil {
		config.WithContext(ctx).WithError(err).WithField("keys", keys).Warn("failed to invalidate cached views")
	}
}

type noopInvalidator struct{}

// NewNoopInvalidator is used when no redis address is configured.
func NewNoopInvalidator() Invalidator {
	return noopInvalidator{}
}

func (noopInvalidator) InvalidateQuiz(ctx context.Context, classID, quizID string) {}
