// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. An optional '.env'
file in the working directory is loaded first via 'joho/godotenv'; variables
already present in the process environment always win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (store, Redis, token service) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/artcine/internal/platform/constants"
)

// Supported values for STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the ArtCine API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"PORT"        envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"production"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// Store selection. CONNECTION_URI is a mongodb:// or postgres:// URL
	// depending on StoreDriver.
	StoreDriver   string `env:"STORE_DRIVER"           envDefault:"mongo"`
	ConnectionURI string `env:"CONNECTION_URI,required"`
	MongoDatabase string `env:"MONGO_DATABASE"         envDefault:"artcine"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Credentials
	JWTSecret  string `env:"JWT_SECRET,required"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`

	// Failed-login throttling. Disabled when RedisURL is empty.
	RedisURL           string        `env:"REDIS_URL"`
	LoginMaxAttempts   int           `env:"LOGIN_MAX_ATTEMPTS"   envDefault:"5"`
	LoginLockoutWindow time.Duration `env:"LOGIN_LOCKOUT_WINDOW" envDefault:"15m"`

	// Cross-Origin Resource Sharing
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:8080,http://localhost:1234,http://localhost:4200,http://testsite.com,https://artcine.netlify.app,https://4ndrew-42.github.io"`

	// AccessLogPath, when set, receives a copy of the JSON log stream.
	AccessLogPath string `env:"ACCESS_LOG_PATH"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {

	// A missing .env file is the normal case in containers.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo, DriverPostgres:
	default:
		return fmt.Errorf("config: unsupported STORE_DRIVER %q (want %q or %q)", c.StoreDriver, DriverMongo, DriverPostgres)
	}

	if len(c.JWTSecret) < constants.MinSecretLength {
		return fmt.Errorf("config: JWT_SECRET must be at least %d characters", constants.MinSecretLength)
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("config: BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if c.RedisURL != "" && (c.LoginMaxAttempts <= 0 || c.LoginLockoutWindow <= 0) {
		return errors.New("config: LOGIN_MAX_ATTEMPTS and LOGIN_LOCKOUT_WINDOW must be positive")
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigin reports whether origin is on the CORS allow-list.
func (c *Config) AllowedOrigin(origin string) bool {
	return slices.Contains(c.AllowedOrigins, origin)
}

// ThrottleEnabled reports whether failed-login throttling is configured.
func (c *Config) ThrottleEnabled() bool {
	return c.RedisURL != ""
}
