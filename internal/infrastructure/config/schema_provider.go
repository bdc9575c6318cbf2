package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/onramp/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionAPI        = "API"
	SectionCache      = "Cache"
	SectionScheduler  = "Scheduler"
	SectionDashboard  = "Dashboard"
	SectionLogging    = "Logging"
	SectionAppearance = "Appearance"
	SectionDatabase   = "Database"
)

// SchemaProvider documents the configuration keys and their defaults.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// JSONSchema reflects Config into a JSON Schema document for editor tooling.
func (*SchemaProvider) JSONSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/onramp/config.schema.json"
	schema.Title = "onramp configuration"
	schema.Description = "Configuration schema for onramp, a terminal crypto market dashboard"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 32)
	keys = append(keys, p.getAPIKeys(defaults)...)
	keys = append(keys, p.getCacheKeys(defaults)...)
	keys = append(keys, p.getSchedulerKeys(defaults)...)
	keys = append(keys, p.getDashboardKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys()...)
	keys = append(keys, entity.ConfigKeyInfo{
		Key:         "database.path",
		Type:        "string",
		Default:     "$XDG_DATA_HOME/onramp/onramp.sqlite",
		Description: "SQLite database holding the response cache and theme",
		Section:     SectionDatabase,
	})
	return keys
}

func (*SchemaProvider) getAPIKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "api.base_url",
			Type:        "string",
			Default:     defaults.API.BaseURL,
			Description: "CoinGecko REST API root",
			Section:     SectionAPI,
		},
		{
			Key:         "api.vs_currency",
			Type:        "string",
			Default:     defaults.API.VsCurrency,
			Description: "Quote currency for prices and market caps",
			Section:     SectionAPI,
		},
		{
			Key:         "api.timeout",
			Type:        "duration",
			Default:     defaults.API.Timeout.String(),
			Description: "Timeout for a single HTTP attempt",
			Section:     SectionAPI,
		},
		{
			Key:         "api.max_retries",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.API.MaxRetries),
			Description: "Attempts per request before giving up",
			Range:       fmt.Sprintf("1-%d", MaxAPIRetries),
			Section:     SectionAPI,
		},
		{
			Key:         "api.base_delay",
			Type:        "duration",
			Default:     defaults.API.BaseDelay.String(),
			Description: "First backoff delay, doubled after each failed attempt",
			Section:     SectionAPI,
		},
		{
			Key:         "api.fallback_on_rate_limit",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.API.FallbackOnRateLimit),
			Description: "Serve cached data of any age when the API answers 429",
			Section:     SectionAPI,
		},
		{
			Key:         "api.single_flight",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.API.SingleFlight),
			Description: "Share one in-flight request between concurrent loads of the same URL",
			Section:     SectionAPI,
		},
	}
}

func (*SchemaProvider) getCacheKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "cache.duration",
			Type:        "duration",
			Default:     defaults.Cache.Duration.String(),
			Description: "How long a cached response counts as fresh",
			Section:     SectionCache,
		},
		{
			Key:         "cache.max_bytes",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Cache.MaxBytes),
			Description: "Maximum serialized cache size (0 = unlimited)",
			Range:       ">=0",
			Section:     SectionCache,
		},
		{
			Key:         "cache.evict_fraction",
			Type:        "float64",
			Default:     fmt.Sprintf("%.2f", defaults.Cache.EvictFraction),
			Description: "Share of oldest entries dropped when a write fails",
			Range:       "0-1",
			Section:     SectionCache,
		},
		{
			Key:         "cache.aggressive_evict_fraction",
			Type:        "float64",
			Default:     fmt.Sprintf("%.2f", defaults.Cache.AggressiveEvictFraction),
			Description: "Share dropped when the previous write also needed eviction",
			Range:       "0-1",
			Section:     SectionCache,
		},
		{
			Key:         "rate_limit.cooldown",
			Type:        "duration",
			Default:     defaults.RateLimit.Cooldown.String(),
			Description: "How long expired cache is preferred after a 429",
			Section:     SectionCache,
		},
	}
}

func (*SchemaProvider) getSchedulerKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "scheduler.policy",
			Type:        "string",
			Default:     string(defaults.Scheduler.Policy),
			Description: "How the home view spreads its requests",
			Values:      []string{string(SchedulerPolicyStagger), string(SchedulerPolicySerial)},
			Section:     SectionScheduler,
		},
		{
			Key:         "scheduler.delay",
			Type:        "duration",
			Default:     defaults.Scheduler.Delay.String(),
			Description: "Gap between scheduled requests",
			Section:     SectionScheduler,
		},
	}
}

func (*SchemaProvider) getDashboardKeys(defaults *Config) []entity.ConfigKeyInfo {
	d := defaults.Dashboard
	return []entity.ConfigKeyInfo{
		{
			Key:         "dashboard.home_coins_per_category",
			Type:        "int",
			Default:     fmt.Sprintf("%d", d.HomeCoinsPerCategory),
			Description: "Coins listed per category card on the home view",
			Range:       "1-250",
			Section:     SectionDashboard,
		},
		{
			Key:         "dashboard.category_coins",
			Type:        "int",
			Default:     fmt.Sprintf("%d", d.CategoryCoins),
			Description: "Coins listed on a category page",
			Range:       "1-250",
			Section:     SectionDashboard,
		},
		{
			Key:         "dashboard.recently_added",
			Type:        "int",
			Default:     fmt.Sprintf("%d", d.RecentlyAdded),
			Description: "Newest listings shown on the home view",
			Range:       "1-250",
			Section:     SectionDashboard,
		},
		{
			Key:         "dashboard.trending_limit",
			Type:        "int",
			Default:     fmt.Sprintf("%d", d.TrendingLimit),
			Description: "Trending coins shown on the home view",
			Range:       "1-250",
			Section:     SectionDashboard,
		},
		{
			Key:         "dashboard.default_timeframe",
			Type:        "string",
			Default:     d.DefaultTimeframe,
			Description: "Initial price chart range",
			Values:      []string{"1d", "7d", "30d", "90d"},
			Section:     SectionDashboard,
		},
		{
			Key:         "dashboard.chart_coins",
			Type:        "int",
			Default:     fmt.Sprintf("%d", d.ChartCoins),
			Description: "Top coins drawn on a category price chart",
			Range:       ">=0",
			Section:     SectionDashboard,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"json", "console"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxAge),
			Description: "Maximum age of log files in days",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "$XDG_STATE_HOME/onramp/logs",
			Description: "Directory for rotated log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.EnableFileLog),
			Description: "Write logs to file (the TUI owns the terminal)",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "appearance.light_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Light theme palette (background, surface, surface_variant, text, muted, accent, border, up, down)",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.dark_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Dark theme palette (background, surface, surface_variant, text, muted, accent, border, up, down)",
			Section:     SectionAppearance,
		},
	}
}
