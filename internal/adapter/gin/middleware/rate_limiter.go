package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitConfig configures the token bucket limiter.
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstCapacity     int
}

// tokenBucketScript implements the Token Bucket algorithm in Lua for
// atomicity. Bucket state: {last_refill_time, current_tokens}.
const tokenBucketScript = `
	local key = KEYS[1]
	local rate = tonumber(ARGV[1])         -- tokens per second
	local capacity = tonumber(ARGV[2])     -- max tokens in bucket
	local now = tonumber(ARGV[3])          -- current timestamp
	local requested = tonumber(ARGV[4])    -- tokens requested (always 1)

	local bucket = redis.call('HMGET', key, 'last_refill', 'tokens')
	local last_refill = tonumber(bucket[1]) or now
	local tokens = tonumber(bucket[2]) or capacity

	local elapsed = math.max(0, now - last_refill)
	tokens = math.min(capacity, tokens + elapsed * rate)

	if tokens >= requested then
		tokens = tokens - requested
		redis.call('HMSET', key, 'last_refill', now, 'tokens', tokens)
		redis.call('EXPIRE', key, 60)
		return 1
	else
		redis.call('HMSET', key, 'last_refill', now, 'tokens', tokens)
		redis.call('EXPIRE', key, 60)
		return 0
	end
`

// RateLimiter returns a middleware limiting requests per client IP using
// a Redis-backed token bucket. Redis failures fail open.
func RateLimiter(redisClient *redis.Client, cfg RateLimitConfig, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled || redisClient == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:tb:%s:%s", c.Request.Method, c.ClientIP())
		now := float64(redisClient.Time(c.Request.Context()).Val().Unix())

		allowed, err := redisClient.Eval(c.Request.Context(), tokenBucketScript, []string{key},
			cfg.RequestsPerSecond,
			cfg.BurstCapacity,
			now,
			1,
		).Int64()
		if err != nil {
			log.Warn("rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}

		if allowed == 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": fmt.Sprintf("Rate limit exceeded: %.2f requests/second (burst capacity: %d)", cfg.RequestsPerSecond, cfg.BurstCapacity),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
