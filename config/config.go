package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Check-in modes. The two deployments of this service diverged here and both
// behaviors are kept, selected per deployment via CHECKIN_MODE.
const (
	CheckinUpdate = "update" // flip checked_in on an existing attendee row
	CheckinInsert = "insert" // append a checkins row, duplicates allowed
)

type Config struct {
	AppPort string
	AppEnv  string

	// Direct Postgres connection (production). When set it wins over the
	// REST client.
	DatabaseURL string

	// Supabase PostgREST access (local dev, avoids firewalled 5432).
	SupabaseURL string
	SupabaseKey string

	CheckinMode string

	JWTSecret string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	mode := get("CHECKIN_MODE", CheckinUpdate)
	if mode != CheckinInsert {
		mode = CheckinUpdate
	}

	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),

		CheckinMode: mode,

		JWTSecret: get("JWT_SECRET", "dev-secret"),
	}
}
