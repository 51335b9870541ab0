package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment names recognized in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is honored when present (local development); real
// environment variables always win.
func Load() *Config {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", EnvDevelopment)
	return &Config{
		Env:         env,
		Port:        getEnv("PORT", "5000"),
		DatabaseURL: databaseURL(env),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

// databaseURL resolves the store location for the given environment:
// development uses a local SQLite file, testing an in-memory SQLite database,
// and production a PostgreSQL URL composed from the DB_* variables. An
// explicit DATABASE_URL overrides all of that.
func databaseURL(env string) string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}

	switch env {
	case EnvTesting:
		return "sqlite://:memory:"
	case EnvProduction:
		user := getEnv("DB_USERNAME", "appuser")
		password := getEnv("DB_PASSWORD", "defaultpass")
		host := getEnv("DB_HOST", "localhost")
		port := getEnv("DB_PORT", "5432")
		name := getEnv("DB_NAME", "appdb")
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name)
	default:
		return "sqlite://app.db"
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
