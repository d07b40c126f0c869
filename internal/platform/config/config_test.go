// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artcine/internal/platform/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("CONNECTION_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "a-very-long-test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.DriverMongo, cfg.StoreDriver)
	assert.Equal(t, "artcine", cfg.MongoDatabase)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 5, cfg.LoginMaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.LoginLockoutWindow)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.ThrottleEnabled())
	assert.True(t, cfg.AllowedOrigin("https://artcine.netlify.app"))
	assert.False(t, cfg.AllowedOrigin("https://evil.example"))
}

func TestLoad_DevelopmentOptIn(t *testing.T) {
	setRequired(t)
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("CONNECTION_URI", "")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_AllowedOriginsOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			StoreDriver: config.DriverPostgres,
			JWTSecret:   "0123456789abcdef",
			BcryptCost:  10,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"valid", func(*config.Config) {}, false},
		{"unknown_driver", func(c *config.Config) { c.StoreDriver = "sqlite" }, true},
		{"short_secret", func(c *config.Config) { c.JWTSecret = "short" }, true},
		{"cost_too_low", func(c *config.Config) { c.BcryptCost = 2 }, true},
		{"cost_too_high", func(c *config.Config) { c.BcryptCost = 40 }, true},
		{"throttle_without_limit", func(c *config.Config) {
			c.RedisURL = "redis://localhost:6379"
			c.LoginMaxAttempts = 0
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
