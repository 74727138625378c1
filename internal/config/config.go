// README: Config loader with env defaults for HTTP, DB, Redis, and AI settings.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN empty means plans are not persisted.
		DSN string
	}
	Redis struct {
		// Addr empty means plans are not cached.
		Addr string
	}
	AI struct {
		// GeminiKey empty selects the deterministic fallback generator.
		GeminiKey string
		Model     string
	}
	Affiliate struct {
		// MapsKey empty means enrichment only adds the marker field.
		MapsKey string
	}
}

func Load() (Config, error) {
	// Local development convenience; a missing .env file is fine.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("FERNWEH_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("FERNWEH_DB_DSN")
	cfg.Redis.Addr = os.Getenv("FERNWEH_REDIS_ADDR")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.Model = envOrDefault("GEMINI_MODEL", "gemini-2.0-flash")
	cfg.Affiliate.MapsKey = os.Getenv("MAPS_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
