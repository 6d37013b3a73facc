package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string

	// JWTSigningKey is the base64url-decoded JWT_SECRET. It is decoded once here
	// and handed to the token codec only; nothing else reads it.
	JWTSigningKey []byte
	JWTExpiry     time.Duration

	LogLevel string
}

// Load reads configuration from the environment (.env file first, if present)
// and validates the security-sensitive fields before the server starts.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	key, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(secret, "="))
	if err != nil {
		return nil, fmt.Errorf("JWT_SECRET must be base64url: %w", err)
	}
	cfg.JWTSigningKey = key

	expiry := os.Getenv("JWT_EXPIRATION")
	if expiry == "" {
		return nil, fmt.Errorf("JWT_EXPIRATION is required")
	}
	d, err := time.ParseDuration(expiry)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION: %w", err)
	}
	if d <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRATION must be positive")
	}
	cfg.JWTExpiry = d

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
