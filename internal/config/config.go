// Package config provides application configuration loaded from
// environment variables, with sensible defaults for local development.
package config

import (
	"fmt"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	// Server
	Port         string `conf:"default:8080,env:PORT"`
	ReadTimeout  int    `conf:"default:15,env:SERVER_READ_TIMEOUT"`
	WriteTimeout int    `conf:"default:15,env:SERVER_WRITE_TIMEOUT"`
	IdleTimeout  int    `conf:"default:60,env:SERVER_IDLE_TIMEOUT"`

	// Logging
	LogLevel  string `conf:"default:info,env:LOG_LEVEL"`
	LogFormat string `conf:"default:console,env:LOG_FORMAT"`

	// Invoice rendering: digit convention for formatted amounts
	DigitStyle string `conf:"default:western,enum:western|localized,env:DIGIT_STYLE"`

	// Optional JSON file overriding the built-in quick-add catalog
	CatalogPath string `conf:"env:CATALOG_PATH"`
}

// Load reads configuration from the environment (and a .env file when
// present).
func Load() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
