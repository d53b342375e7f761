package config

import (
	"fmt"
	"os"
)

// Config holds the process configuration, loaded once at startup. The
// required keys have no implicit defaults: a missing store URL, signing
// secret, or oracle endpoint is a startup error, never a silent fallback.
type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	JWTSecret   string
	PDPURL      string
	PDPAPIKey   string
	CORSOrigins string
	TablePrefix string
}

// Load reads configuration from the environment. Only the listening port
// has a default.
func Load() (*Config, error) {
	env := getEnv("ENVIRONMENT", "dev")

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		PDPURL:      os.Getenv("PDP_URL"),
		PDPAPIKey:   os.Getenv("PDP_API_KEY"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix: getTablePrefix(env),
	}

	for key, value := range map[string]string{
		"DATABASE_URL": cfg.DatabaseURL,
		"JWT_SECRET":   cfg.JWTSecret,
		"PDP_URL":      cfg.PDPURL,
		"PDP_API_KEY":  cfg.PDPAPIKey,
	} {
		if value == "" {
			return nil, fmt.Errorf("required configuration %s is not set", key)
		}
	}

	return cfg, nil
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
