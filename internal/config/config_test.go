package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with secret set", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("PORT", "")
		t.Setenv("DB_PATH", "")
		t.Setenv("TOKEN_TTL_HOURS", "")
		t.Setenv("APP_ENV", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("Port = %q, want 8080", cfg.Port)
		}
		if cfg.DBPath != "./data/paysheet.db" {
			t.Errorf("DBPath = %q", cfg.DBPath)
		}
		if cfg.TokenTTL != 24*time.Hour {
			t.Errorf("TokenTTL = %v, want 24h", cfg.TokenTTL)
		}
		if cfg.AppEnv != "development" {
			t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
		}
	})

	t.Run("missing secret fails", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		if _, err := Load(); err == nil {
			t.Error("expected error for missing JWT_SECRET, got nil")
		}
	})

	t.Run("overrides applied", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("PORT", "9090")
		t.Setenv("TOKEN_TTL_HOURS", "2")
		t.Setenv("APP_ENV", "production")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Port != "9090" {
			t.Errorf("Port = %q, want 9090", cfg.Port)
		}
		if cfg.TokenTTL != 2*time.Hour {
			t.Errorf("TokenTTL = %v, want 2h", cfg.TokenTTL)
		}
		if cfg.AppEnv != "production" {
			t.Errorf("AppEnv = %q, want production", cfg.AppEnv)
		}
	})

	t.Run("bad ttl rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("TOKEN_TTL_HOURS", "soon")

		if _, err := Load(); err == nil {
			t.Error("expected error for bad TOKEN_TTL_HOURS, got nil")
		}
	})
}
