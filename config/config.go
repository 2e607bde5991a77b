// Package config loads process configuration from the environment, with an
// optional Docker-secrets directory override for sensitive values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application. It is read-only after
// Load returns.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (optional; enables the login rate limiter)
	RedisURL        string
	LoginRateLimit  int
	LoginRateWindow time.Duration

	// Token configuration
	JWTSecret      string
	JWTAlgorithm   string
	AccessTokenTTL time.Duration

	// CORS
	AllowedOrigins []string
}

// Load builds a Config from environment variables, consulting SECRETS_DIR for
// values mounted as files.
func Load() (*Config, error) {
	cfg := &Config{
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort: getEnv("SERVER_PORT", "8000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getSecret("DB_USER", "db_user", "postgres"),
		DBPassword: getSecret("DB_PASSWORD", "db_password", ""),
		DBName:     getEnv("DB_NAME", "tastebook"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisURL: getEnv("REDIS_URL", ""),

		JWTSecret:    getSecret("JWT_SECRET", "jwt_secret", ""),
		JWTAlgorithm: getEnv("JWT_ALGORITHM", "HS256"),
	}

	minutes, err := intEnv("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	cfg.AccessTokenTTL = time.Duration(minutes) * time.Minute

	cfg.LoginRateLimit, err = intEnv("LOGIN_RATE_LIMIT", 10)
	if err != nil {
		return nil, err
	}
	windowSeconds, err := intEnv("LOGIN_RATE_WINDOW_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.LoginRateWindow = time.Duration(windowSeconds) * time.Second

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	switch cfg.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("unsupported JWT_ALGORITHM %q", cfg.JWTAlgorithm)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// getSecret prefers the environment variable, then a Docker secret file,
// then the fallback.
func getSecret(envKey, secretName, fallback string) string {
	if value := os.Getenv(envKey); value != "" {
		return value
	}
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, secretName)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return fallback
}
