package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment-derived settings for the server.
type Config struct {
	Port        string
	DBPath      string
	JWTSecret   string
	RequireAuth bool
	StaticDir   string
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to development defaults.
func Load() *Config {
	// Missing .env is fine; env vars may come from the shell or container.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "3000"),
		DBPath:      getEnv("DB_PATH", "task-manager.db"),
		JWTSecret:   getEnv("JWT_SECRET", "development-insecure-secret-change-me"),
		RequireAuth: getEnv("REQUIRE_AUTH", "false") == "true",
		StaticDir:   getEnv("STATIC_DIR", "web/static"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
