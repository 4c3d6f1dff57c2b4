package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"localmart/internal/infrastructure/ratelimit"
	"localmart/pkg/logger"
)

// RateLimit throttles a route group with the shared token-bucket limiter.
// Buckets are keyed by credential UID when the caller is authenticated, IP
// otherwise.
func RateLimit(limiter *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if uid, ok := c.Get("uid").(string); ok && uid != "" {
				key = uid
			}

			allowed, wait := limiter.Allow(key)
			if !allowed {
				logger.Warn("Rate limit exceeded for %s", key)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(wait / time.Second),
				})
			}

			return next(c)
		}
	}
}
