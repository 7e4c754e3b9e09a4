package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// Store selects the storage backend: "postgres" or "memory".
	Store string

	PGHost string
	PGPort int
	PGUser string
	PGPass string
	PGDB   string

	// AuthTokens holds the static token table as comma separated
	// "token:user" pairs. Token issuance lives outside this service.
	AuthTokens string

	// PriceConcurrency bounds the catalog fan-out when pricing a cart view.
	PriceConcurrency int
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		Store: getEnv("STORE", "memory"),

		PGHost: getEnv("POSTGRES_HOST", "localhost"),
		PGPort: getEnvInt("POSTGRES_PORT", 5432),
		PGUser: getEnv("POSTGRES_USER", "marketplace"),
		PGPass: getEnv("POSTGRES_PASSWORD", "marketplacepassword"),
		PGDB:   getEnv("POSTGRES_DB", "marketplace_db"),

		AuthTokens: getEnv("AUTH_TOKENS", ""),

		PriceConcurrency: getEnvInt("PRICE_CONCURRENCY", 10),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
