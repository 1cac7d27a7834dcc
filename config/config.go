// config.go - Handles configuration for the project

package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration values, read once at startup.
type Config struct {
	Port      string // HTTP listen port
	Env       string // "development" or "production"
	DBDriver  string // "postgres" or "sqlite"
	DBDSN     string // postgres DSN or sqlite file path
	JWTSecret string // secret key for signing session tokens

	// Optional default admin seeding.
	CreateAdmin   bool
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from a .env file (if present) and the
// environment. Missing values fall back to development defaults;
// JWT_SECRET deliberately has no default and is checked at startup.
func Load() *Config {
	_ = godotenv.Load() // .env is optional, env vars always win

	return &Config{
		Port:          getEnv("PORT", "8000"),
		Env:           getEnv("APP_ENV", "development"),
		DBDriver:      getEnv("DB_DRIVER", "postgres"),
		DBDSN:         getEnv("DATABASE_URL", "host=localhost user=postgres dbname=ecommerce_db port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CreateAdmin:   getEnv("CREATE_ADMIN", "false") == "true",
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
