package middlewares

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Eswar-Mukku/food-intake-tracker/config"

	"github.com/gin-gonic/gin"
)

// RateLimit applies a fixed-window limit per client IP using Redis.
// When Redis is not configured the middleware is a pass-through.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.Redis == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())
		ctx := c.Request.Context()

		count, err := config.Redis.Incr(ctx, key).Result()
		if err != nil {
			// Fail open on Redis errors.
			c.Next()
			return
		}
		if count == 1 {
			config.Redis.Expire(ctx, key, window)
		}
		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
			return
		}
		c.Next()
	}
}
