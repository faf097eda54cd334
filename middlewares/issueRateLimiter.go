package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "karyasetu:issue_limit"

// RateCounter is the counter backend the issue rate limiter increments.
// Production uses Redis; tests use an in-memory double.
type RateCounter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
}

type redisCounter struct {
	client *redis.Client
}

// NewRedisCounter wraps a Redis client as a RateCounter.
func NewRedisCounter(client *redis.Client) RateCounter {
	return &redisCounter{client: client}
}

func (r *redisCounter) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

func (r *redisCounter) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.client.Expire(ctx, key, ttl).Err()
}

func (r *redisCounter) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}

// IssueRateLimiter caps how many issues a user may report per day. The
// counter lives in the backing store with a 24h TTL set on the first report.
func IssueRateLimiter(counter RateCounter, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		userKey := rateLimitKeyPrefix + ":" + user.ID

		count, err := counter.Incr(ctx, userKey)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "counter error incrementing count"})
			c.Abort()
			return
		}

		// Set TTL only for the first increment (when count = 1)
		if count == 1 {
			if err := counter.Expire(ctx, userKey, 24*time.Hour); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "counter error setting TTL"})
				c.Abort()
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := counter.TTL(ctx, userKey)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
