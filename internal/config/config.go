// Package config loads application configuration from environment
// variables. A .env file in the working directory is honored when present
// so local development does not need exported variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/clubops/ace-checkin/internal/database"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable.
type Config struct {
	Env  string // application environment ("development", "production")
	Port string // HTTP port to listen on

	DBDriver   string // "mysql" or "sqlite"
	DBUser     string // MySQL username (mysql driver only)
	DBPass     string // MySQL password (optional)
	DBHost     string // MySQL host
	DBPort     string // MySQL port
	DBName     string // MySQL database name
	SQLitePath string // SQLite database file (sqlite driver only)

	// APIKey protects the /api routes when set. An empty value disables
	// authentication, which is the development default.
	APIKey string

	// EventsEnabled turns on broker publishing of check-in events and the
	// background consumer that mirrors them to the check-in log file.
	EventsEnabled bool
}

// Load reads configuration from the environment, falling back to defaults
// suitable for a local single-binary install (SQLite, no auth). MySQL
// connection variables are required only when DB_DRIVER=mysql; missing ones
// cause the process to exit with a fatal log message.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:           getenv("APP_ENV", "development"),
		Port:          getenv("APP_PORT", "8080"),
		DBDriver:      getenv("DB_DRIVER", database.DriverSQLite),
		SQLitePath:    getenv("SQLITE_PATH", "./data/checkin.db"),
		APIKey:        os.Getenv("API_KEY"),
		EventsEnabled: envBool("EVENTS_ENABLED", false),
	}
	if cfg.DBDriver == database.DriverMySQL {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS")
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
