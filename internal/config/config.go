package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the full application configuration, populated from
// environment variables with development-friendly defaults.
type Config struct {
	App      AppConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Comments CommentsConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// AuthConfig governs the token-exchange endpoint. The exchange secret
// authenticates the upstream identity gateway, not end users.
type AuthConfig struct {
	ExchangeSecret string
}

// CommentsConfig selects how comment parent references are validated
// at the write boundary. "strict" (default) requires exactly one of
// post_id/video_id; "permissive" stores whatever the caller supplied.
type CommentsConfig struct {
	ParentPolicy string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "ContentHub API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTTL:  time.Duration(getEnvInt("JWT_ACCESS_EXPIRY_MINUTES", 15)) * time.Minute,
			RefreshTTL: time.Duration(getEnvInt("JWT_REFRESH_EXPIRY_HOURS", 72)) * time.Hour,
		},
		Auth: AuthConfig{
			ExchangeSecret: getEnv("AUTH_EXCHANGE_SECRET", ""),
		},
		Comments: CommentsConfig{
			ParentPolicy: getEnv("COMMENT_PARENT_POLICY", "strict"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach production.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Auth.ExchangeSecret == "" {
			return fmt.Errorf("AUTH_EXCHANGE_SECRET must be set in production")
		}
	}

	if p := c.Comments.ParentPolicy; p != "strict" && p != "permissive" {
		return fmt.Errorf("COMMENT_PARENT_POLICY must be strict or permissive, got %q", p)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
