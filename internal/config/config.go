// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	AirportAPI AirportAPIConfig
	Search     SearchConfig
	Cache      CacheConfig
	Alerts     AlertsConfig
	Logging    LoggingConfig
	App        AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
}

// AirportAPIConfig holds settings of the upstream airport search API.
type AirportAPIConfig struct {
	BaseURL string        `env:"AIRPORT_API_BASE_URL" envDefault:"https://staging.flight.lascade.com"`
	Timeout time.Duration `env:"AIRPORT_API_TIMEOUT" envDefault:"10s"`
}

// SearchConfig holds settings of the per-session search pipeline.
type SearchConfig struct {
	Debounce time.Duration `env:"SEARCH_DEBOUNCE" envDefault:"300ms"`
	Limit    int           `env:"SEARCH_LIMIT" envDefault:"10"`
}

// CacheConfig holds settings of the optional Redis search cache.
// The cache is disabled when RedisAddr is empty.
type CacheConfig struct {
	RedisAddr     string        `env:"CACHE_REDIS_ADDR"`
	RedisPassword string        `env:"CACHE_REDIS_PASSWORD"`
	RedisDB       int           `env:"CACHE_REDIS_DB" envDefault:"0"`
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

// AlertsConfig holds settings of the price alert list.
type AlertsConfig struct {
	MinDropPercent float64 `env:"ALERTS_MIN_DROP_PERCENT" envDefault:"30"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.AirportAPI.Timeout <= 0 {
		return fmt.Errorf("AIRPORT_API_TIMEOUT must be positive")
	}

	// Validate upstream base URL
	u, err := url.Parse(cfg.AirportAPI.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("AIRPORT_API_BASE_URL must be an absolute http(s) URL, got %q", cfg.AirportAPI.BaseURL)
	}

	// Validate search pipeline
	if cfg.Search.Debounce <= 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE must be positive")
	}
	if cfg.Search.Limit < 1 || cfg.Search.Limit > 100 {
		return fmt.Errorf("SEARCH_LIMIT must be between 1 and 100, got %d", cfg.Search.Limit)
	}

	// Validate cache
	if cfg.Cache.RedisDB < 0 {
		return fmt.Errorf("CACHE_REDIS_DB must not be negative, got %d", cfg.Cache.RedisDB)
	}
	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	// Validate alert threshold
	if cfg.Alerts.MinDropPercent < 0 || cfg.Alerts.MinDropPercent > 100 {
		return fmt.Errorf("ALERTS_MIN_DROP_PERCENT must be between 0 and 100, got %v", cfg.Alerts.MinDropPercent)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// CacheEnabled returns true if a Redis address is configured.
func (c *Config) CacheEnabled() bool {
	return c.Cache.RedisAddr != ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
