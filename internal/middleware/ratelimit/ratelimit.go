package ratelimit

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
)

const (
	defaultWindow = 15 * time.Minute
	defaultLimit  = 100
)

// New returns a per-IP limiter backed by redis INCR/EXPIRE. It fails open:
// a nil client or a redis error lets the request through.
func New(client *redis.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if client == nil {
				return next(c)
			}

			ctx := c.Request().Context()
			key := "rate_limit:" + c.RealIP()

			count, err := client.Incr(ctx, key).Result()
			if err != nil {
				logging.FromContext(ctx).Warn("rate_limit_redis_error", "error", err)
				return next(c)
			}
			if count == 1 {
				client.Expire(ctx, key, defaultWindow)
			}

			if count > defaultLimit {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many requests"})
			}

			return next(c)
		}
	}
}
