package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, read from the environment
// (optionally seeded from a .env file).
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// DBPath is the Badger database directory.
	DBPath string
	// AdminPasswordHash is the bcrypt hash admin logins are checked
	// against. The admin area is disabled when empty.
	AdminPasswordHash string
	// JWTSecret signs admin session cookies.
	JWTSecret string
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:              getEnv("NETBLOG_ADDR", ":8080"),
		DBPath:            getEnv("NETBLOG_DB_PATH", "data/badger"),
		AdminPasswordHash: os.Getenv("NETBLOG_ADMIN_PASSWORD_HASH"),
		JWTSecret:         getEnv("NETBLOG_JWT_SECRET", "netblog-dev-secret"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
