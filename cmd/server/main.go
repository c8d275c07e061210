package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/clubops/ace-checkin/internal/config"
	"github.com/clubops/ace-checkin/internal/database"
	"github.com/clubops/ace-checkin/internal/handler"
	"github.com/clubops/ace-checkin/internal/middleware"
	"github.com/clubops/ace-checkin/internal/queue"
	"github.com/clubops/ace-checkin/internal/repository"
	"github.com/clubops/ace-checkin/internal/router"
	"github.com/clubops/ace-checkin/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	db, err := openDB(cfg)
	if err != nil {
		slog.Error("database open failed", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := database.Migrate(db, cfg.DBDriver); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready", "driver", cfg.DBDriver)

	rdb := config.NewRedisClient()
	if rdb == nil {
		slog.Warn("redis unavailable, response cache and rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	h := handler.NewCheckinHandler(
		repository.NewMemberRepo(db),
		repository.NewEntryRepo(db),
		repository.NewPaymentRepo(db),
		cfg.EventsEnabled,
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Use(echomw.Recover())
	e.Use(middleware.Metrics())
	router.Register(e, h, cfg, rdb)

	if cfg.EventsEnabled {
		go func() {
			if err := queue.StartCheckinConsumer(); err != nil {
				slog.Error("checkin consumer stopped", "error", err)
			}
		}()
	}

	go func() {
		addr := ":" + cfg.Port
		slog.Info("listening", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Block until the process is asked to stop, then drain in-flight
	// requests before the deferred closes tear down the DB and redis.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

func openDB(cfg config.Config) (*sql.DB, error) {
	if cfg.DBDriver == database.DriverMySQL {
		return database.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	}
	return database.OpenSQLite(cfg.SQLitePath)
}
