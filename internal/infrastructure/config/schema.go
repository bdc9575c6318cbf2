package config

import "time"

// Config represents the complete configuration for onramp.
type Config struct {
	// API controls how the CoinGecko REST API is reached.
	API       APIConfig       `mapstructure:"api" yaml:"api" toml:"api" json:"api"`
	Cache     CacheConfig     `mapstructure:"cache" yaml:"cache" toml:"cache" json:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit" toml:"rate_limit" json:"rate_limit"`
	// Scheduler controls how the home view spreads its requests over time.
	Scheduler  SchedulerConfig  `mapstructure:"scheduler" yaml:"scheduler" toml:"scheduler" json:"scheduler"`
	Dashboard  DashboardConfig  `mapstructure:"dashboard" yaml:"dashboard" toml:"dashboard" json:"dashboard"`
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
}

// APIConfig holds upstream API settings.
type APIConfig struct {
	BaseURL    string `mapstructure:"base_url" yaml:"base_url" toml:"base_url" json:"base_url"`
	VsCurrency string `mapstructure:"vs_currency" yaml:"vs_currency" toml:"vs_currency" json:"vs_currency"`
	// Timeout bounds a single HTTP attempt.
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout" toml:"timeout" json:"timeout" jsonschema:"type=string"`
	MaxRetries int           `mapstructure:"max_retries" yaml:"max_retries" toml:"max_retries" json:"max_retries"`
	// BaseDelay is the first backoff delay; attempt i waits BaseDelay * 2^i.
	BaseDelay time.Duration `mapstructure:"base_delay" yaml:"base_delay" toml:"base_delay" json:"base_delay" jsonschema:"type=string"`
	// FallbackOnRateLimit serves any cached value, however old, when the API answers 429.
	FallbackOnRateLimit bool `mapstructure:"fallback_on_rate_limit" yaml:"fallback_on_rate_limit" toml:"fallback_on_rate_limit" json:"fallback_on_rate_limit"` //nolint:lll // struct tags exceed lll limit
	// SingleFlight collapses concurrent fetches of the same URL into one network sequence.
	SingleFlight bool `mapstructure:"single_flight" yaml:"single_flight" toml:"single_flight" json:"single_flight"`
}

// CacheConfig controls the persisted response cache.
type CacheConfig struct {
	// Duration is how long an entry counts as fresh.
	Duration time.Duration `mapstructure:"duration" yaml:"duration" toml:"duration" json:"duration" jsonschema:"type=string"`
	// MaxBytes caps the serialized size of the whole cache.
	MaxBytes                int     `mapstructure:"max_bytes" yaml:"max_bytes" toml:"max_bytes" json:"max_bytes"`
	EvictFraction           float64 `mapstructure:"evict_fraction" yaml:"evict_fraction" toml:"evict_fraction" json:"evict_fraction"`
	AggressiveEvictFraction float64 `mapstructure:"aggressive_evict_fraction" yaml:"aggressive_evict_fraction" toml:"aggressive_evict_fraction" json:"aggressive_evict_fraction"` //nolint:lll // struct tags exceed lll limit
}

// RateLimitConfig controls the cooldown after the API answers 429.
type RateLimitConfig struct {
	Cooldown time.Duration `mapstructure:"cooldown" yaml:"cooldown" toml:"cooldown" json:"cooldown" jsonschema:"type=string"`
}

// SchedulerPolicy selects how batched loads are spread over time.
type SchedulerPolicy string

const (
	// SchedulerPolicyStagger starts job i at i*delay without waiting for earlier jobs.
	SchedulerPolicyStagger SchedulerPolicy = "stagger"
	// SchedulerPolicySerial runs one job at a time with delay between them.
	SchedulerPolicySerial SchedulerPolicy = "serial"
)

// SchedulerConfig controls the request scheduler.
type SchedulerConfig struct {
	Policy SchedulerPolicy `mapstructure:"policy" yaml:"policy" toml:"policy" json:"policy"`
	Delay  time.Duration   `mapstructure:"delay" yaml:"delay" toml:"delay" json:"delay" jsonschema:"type=string"`
}

// DashboardConfig controls how much data each view asks for.
type DashboardConfig struct {
	HomeCoinsPerCategory int    `mapstructure:"home_coins_per_category" yaml:"home_coins_per_category" toml:"home_coins_per_category" json:"home_coins_per_category"` //nolint:lll // struct tags exceed lll limit
	CategoryCoins        int    `mapstructure:"category_coins" yaml:"category_coins" toml:"category_coins" json:"category_coins"`
	RecentlyAdded        int    `mapstructure:"recently_added" yaml:"recently_added" toml:"recently_added" json:"recently_added"`
	TrendingLimit        int    `mapstructure:"trending_limit" yaml:"trending_limit" toml:"trending_limit" json:"trending_limit"`
	DefaultTimeframe     string `mapstructure:"default_timeframe" yaml:"default_timeframe" toml:"default_timeframe" json:"default_timeframe"`
	// ChartCoins is how many of a category's top coins get a price history line.
	ChartCoins int `mapstructure:"chart_coins" yaml:"chart_coins" toml:"chart_coins" json:"chart_coins"`
}

// DatabaseConfig holds the SQLite database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Format        string `mapstructure:"format" yaml:"format" toml:"format" json:"format"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
}

// AppearanceConfig holds the TUI palettes.
type AppearanceConfig struct {
	LightPalette ColorPalette `mapstructure:"light_palette" yaml:"light_palette" toml:"light_palette" json:"light_palette"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" toml:"dark_palette" json:"dark_palette"`
}

// ColorPalette contains semantic color tokens for light/dark themes.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
	// Up and Down color price moves.
	Up   string `mapstructure:"up" yaml:"up" toml:"up" json:"up"`
	Down string `mapstructure:"down" yaml:"down" toml:"down" json:"down"`
}
