package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL        string
	HTTPAddr           string
	MetricsAddr        string
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	LogLevel           string
	AutoMigrate        bool
	EnableSeedEndpoint bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := readSecret("database_url")
	if dbURL == "" {
		dbURL = envString("DATABASE_URL", "sqlite://profile_matcher.db")
	}

	cfg := &Config{
		DatabaseURL:        dbURL,
		HTTPAddr:           envString("HTTP_ADDR", ":8000"),
		MetricsAddr:        envString("METRICS_ADDR", ":9090"),
		RequestTimeout:     envDuration("REQUEST_TIMEOUT", 5*time.Second),
		ShutdownTimeout:    envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:           strings.ToLower(envString("LOG_LEVEL", "info")),
		AutoMigrate:        envBool("AUTO_MIGRATE", true),
		EnableSeedEndpoint: envBool("ENABLE_SEED_ENDPOINT", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var secretsDir = "/run/secrets/"

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
