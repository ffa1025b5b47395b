package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Port string
	}
	DB struct {
		Path           string
		MigrationsPath string
	}
}

// Load reads configuration from the environment, optionally preloading a .env
// file. Every key has a default, so a bare process comes up on a local
// database file.
func Load(path string) (*Config, error) {
	if path != "" {
		err := godotenv.Load(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	cfg.App.Port = getEnv("APP_PORT", "8080")
	cfg.DB.Path = getEnv("DB_PATH", "database.db")
	cfg.DB.MigrationsPath = getEnv("MIGRATIONS_PATH", "migrations")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
