// Package middleware holds the echo middleware used by the API: static
// API-key authentication, the Redis response cache and rate limiter, and
// prometheus instrumentation.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HeaderAPIKey is the header the mobile client sends its key in.
const HeaderAPIKey = "X-API-Key"

// APIKey enforces a static API key on the wrapped routes. When key is empty
// authentication is disabled entirely, which is the development default.
// Keys are compared in constant time.
func APIKey(key string) echo.MiddlewareFunc {
	if key == "" {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	want := []byte(key)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := c.Request().Header.Get(HeaderAPIKey)
			if got == "" {
				return c.JSON(http.StatusUnauthorized,
					map[string]string{"detail": "missing API key, include the X-API-Key header"})
			}
			if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				return c.JSON(http.StatusUnauthorized,
					map[string]string{"detail": "invalid API key"})
			}
			return next(c)
		}
	}
}
