package config

import (
	"os"
	"time"

	"account-service/internal/auth"
)

type Config struct {
	AppPort string

	// Empty DSN/addr select the in-process backends, for local runs
	// and tests.
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string

	SessionTTL time.Duration
}

func Load() Config {
	cfg := Config{
		AppPort: os.Getenv("APP_PORT"),

		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionTTL: auth.DefaultSessionTTL,
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil && ttl > 0 {
			cfg.SessionTTL = ttl
		}
	}

	return cfg
}
