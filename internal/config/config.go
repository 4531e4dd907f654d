package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration, loaded from the environment.
type Config struct {
	AppPort     string
	DatabaseURL string
	Logger      LoggerConfig
}

// LoggerConfig controls how the zap logger is built.
type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	port := getEnv("APP_PORT", "8080")
	if _, err := strconv.Atoi(port); err != nil {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		user := getEnv("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		name := getEnv("DB_NAME", "pharmapos")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, dbPort, name)
	}

	return Config{
		AppPort:     port,
		DatabaseURL: dsn,
		Logger: LoggerConfig{
			Level:    getEnv("LOGGER_LEVEL", "info"),
			Encoding: getEnv("LOGGER_ENCODING", "console"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
