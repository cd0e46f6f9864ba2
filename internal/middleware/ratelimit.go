package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

var now = time.Now

// RateLimit allows limit requests per client IP and route in each fixed
// one-minute window. A nil client or a non-positive limit disables it.
// Redis failures let the request through.
func RateLimit(client *redis.Client, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || limit <= 0 {
			c.Next()
			return
		}

		window := now().Unix() / 60
		key := fmt.Sprintf("ratelimit:%s:%s:%d", c.FullPath(), c.ClientIP(), window)

		ctx := c.Request.Context()
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, time.Minute)
		}

		remaining := limit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if int(count) > limit {
			c.Header("Retry-After", strconv.FormatInt(60-now().Unix()%60, 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error_code": "rate_limited",
				"message":    "Too many requests, try again later.",
			})
			return
		}

		c.Next()
	}
}
