package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/sports-ground-booking/internal/config"
)

// RateLimit returns middleware enforcing a fixed-window limit per
// client IP and route, counted in Redis. The first request in a window
// sets the expiry; exceeding the limit yields 429 with a Retry-After
// header. With limiting disabled or no Redis client the middleware
// passes through, and Redis errors fail open.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("%s:%s:%s", cfg.Prefix, c.RealIP(), c.Path())
			ctx := c.Request().Context()

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if count == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			if count > int64(cfg.Limit) {
				retry := cfg.Window
				if ttl, err := rdb.TTL(ctx, key).Result(); err == nil && ttl > 0 {
					retry = ttl
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retry/time.Second)+1))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"message": "Too many requests"})
			}
			return next(c)
		}
	}
}
