package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"siteops/internal/redis"
)

// RateLimitMiddleware ограничивает количество запросов с одного IP в
// пределах фиксированного окна. Счетчики живут в redis; при ошибке redis
// запрос пропускается, чтобы не ронять API из-за недоступного кеша.
func RateLimitMiddleware(client *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()

		count, err := client.IncrWindow(c.Request.Context(), key, window)
		if err != nil {
			log.Printf("⚠️  Rate limiter unavailable: %v", err)
			c.Next()
			return
		}

		if count > int64(limit) {
			log.Printf("⚠️  Rate limit exceeded for %s", c.ClientIP())
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
			c.Abort()
			return
		}

		c.Next()
	}
}
