package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_PORT", "DB_DRIVER", "SQLITE_PATH", "API_KEY", "EVENTS_ENABLED"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q, want sqlite", cfg.DBDriver)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty (auth disabled)", cfg.APIKey)
	}
	if cfg.EventsEnabled {
		t.Error("EventsEnabled should default to false")
	}
}

func TestLoadMySQLVariables(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_USER", "club")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "checkin")

	cfg := Load()
	if cfg.DBDriver != "mysql" || cfg.DBUser != "club" || cfg.DBHost != "db.internal" {
		t.Errorf("mysql config not loaded: %+v", cfg)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "true")
	if !envBool("X_BOOL", false) {
		t.Error("envBool(true) = false")
	}
	t.Setenv("X_BOOL", "off")
	if envBool("X_BOOL", true) {
		t.Error("envBool(off) = true")
	}
	t.Setenv("X_INT", "42")
	if got := envInt("X_INT", 1); got != 42 {
		t.Errorf("envInt = %d, want 42", got)
	}
	t.Setenv("X_DUR", "90s")
	if got := envDur("X_DUR", time.Second); got != 90*time.Second {
		t.Errorf("envDur = %v, want 90s", got)
	}
	if got := envDur("X_MISSING", time.Minute); got != time.Minute {
		t.Errorf("envDur default = %v, want 1m", got)
	}
}
