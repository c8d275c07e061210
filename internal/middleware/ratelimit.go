package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/clubops/ace-checkin/internal/config"
)

// RateLimit applies a fixed-window counter per client IP and route, stored
// in Redis so several server instances share the same budget. When Redis is
// unavailable or the feature is disabled requests pass through unlimited;
// losing rate limiting is preferable to refusing check-ins.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	windowSecs := int64(cfg.Window / time.Second)
	if windowSecs < 1 {
		windowSecs = 1
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			window := time.Now().Unix() / windowSecs
			key := fmt.Sprintf("%s:%s:%s:%d", cfg.Prefix, c.RealIP(), c.Path(), window)
			ctx := c.Request().Context()

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				slog.Warn("rate limiter unavailable, allowing request", "error", err)
				return next(c)
			}
			if n == 1 {
				rdb.Expire(ctx, key, cfg.Window)
			}
			if n > int64(cfg.Limit) {
				retry, _ := rdb.TTL(ctx, key).Result()
				if retry > 0 {
					c.Response().Header().Set("Retry-After",
						fmt.Sprintf("%d", int(retry/time.Second)+1))
				}
				return c.JSON(http.StatusTooManyRequests,
					map[string]string{"detail": "rate limit exceeded, retry later"})
			}
			return next(c)
		}
	}
}
