package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "relative base url", mutate: func(c *Config) { c.API.BaseURL = "/api/v3" }, wantKey: "api.base_url"},
		{name: "zero retries", mutate: func(c *Config) { c.API.MaxRetries = 0 }, wantKey: "api.max_retries"},
		{name: "too many retries", mutate: func(c *Config) { c.API.MaxRetries = MaxAPIRetries + 1 }, wantKey: "api.max_retries"},
		{name: "zero cache duration", mutate: func(c *Config) { c.Cache.Duration = 0 }, wantKey: "cache.duration"},
		{name: "evict fraction above one", mutate: func(c *Config) { c.Cache.EvictFraction = 1.5 }, wantKey: "cache.evict_fraction"},
		{name: "unknown policy", mutate: func(c *Config) { c.Scheduler.Policy = "random" }, wantKey: "scheduler.policy"},
		{name: "per page too large", mutate: func(c *Config) { c.Dashboard.CategoryCoins = 500 }, wantKey: "dashboard.category_coins"},
		{name: "bad timeframe", mutate: func(c *Config) { c.Dashboard.DefaultTimeframe = "1y" }, wantKey: "dashboard.default_timeframe"},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "bad palette color", mutate: func(c *Config) { c.Appearance.DarkPalette.Accent = "blue" }, wantKey: "appearance.dark_palette.accent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestValidateConfig_AccumulatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.MaxRetries = 0
	cfg.Cache.Duration = 0

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.max_retries")
	assert.Contains(t, err.Error(), "cache.duration")
}
