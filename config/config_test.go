package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("CHECKIN_MODE", "")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	if cfg.AppPort != "8080" {
		t.Errorf("AppPort = %q", cfg.AppPort)
	}
	if cfg.CheckinMode != CheckinUpdate {
		t.Errorf("CheckinMode = %q, want update default", cfg.CheckinMode)
	}
	if cfg.JWTSecret != "dev-secret" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
}

func TestLoadCheckinMode(t *testing.T) {
	t.Setenv("CHECKIN_MODE", "insert")
	if cfg := Load(); cfg.CheckinMode != CheckinInsert {
		t.Errorf("CheckinMode = %q, want insert", cfg.CheckinMode)
	}

	// anything unrecognized falls back to update
	t.Setenv("CHECKIN_MODE", "upsert")
	if cfg := Load(); cfg.CheckinMode != CheckinUpdate {
		t.Errorf("CheckinMode = %q, want update fallback", cfg.CheckinMode)
	}
}

func TestLoadBackendSelection(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_KEY", "anon")

	cfg := Load()
	if cfg.DatabaseURL == "" || cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		t.Fatalf("env not picked up: %+v", cfg)
	}
}
