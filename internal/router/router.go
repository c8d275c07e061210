// Package router maps HTTP routes to handlers and attaches per-group
// middleware. The scanner check-in GETs are writes, so the response cache is
// attached only to the member lookup and listing routes, never group-wide.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/clubops/ace-checkin/internal/config"
	"github.com/clubops/ace-checkin/internal/handler"
	"github.com/clubops/ace-checkin/internal/middleware"
)

// Register wires all routes on the provided Echo instance. rdb may be nil,
// in which case the cache and rate-limit middleware become no-ops.
func Register(e *echo.Echo, h *handler.CheckinHandler, cfg config.Config, rdb *redis.Client) {
	e.GET("/health", handler.Health(cfg.Env))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.Use(middleware.APIKey(cfg.APIKey))
	api.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	// Member records change only on registration, so their lookup and
	// listing routes take the short-TTL cache. History listings reflect
	// fresh check-ins and stay uncached, as do the check-in GETs, which
	// insert rows.
	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	api.POST("/members", h.CreateMember)
	api.GET("/members", h.ListMembers, cache)
	api.GET("/members/:id", h.GetMember, cache)
	api.GET("/members/:id/summary", h.MemberSummary)

	api.POST("/entry", h.LogEntry)
	api.GET("/entry/checkin/:id", h.ScanEntry)
	api.GET("/entry/:id", h.ListEntries)

	api.POST("/payment", h.LogPayment)
	api.GET("/payment/checkin/:id", h.ScanPayment)
	api.GET("/payment/summary/:id", h.PaymentSummary)
	api.GET("/payment/:id", h.ListPayments)
}
