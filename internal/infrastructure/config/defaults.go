package config

import "time"

// Default configuration constants
const (
	// API defaults
	defaultBaseURL    = "https://api.coingecko.com/api/v3"
	defaultVsCurrency = "usd"
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 3
	defaultBaseDelay  = time.Second

	// Cache defaults
	defaultCacheDuration           = 15 * time.Minute
	defaultCacheMaxBytes           = 5 * 1024 * 1024 // roughly a browser's localStorage quota
	defaultEvictFraction           = 0.25
	defaultAggressiveEvictFraction = 0.5

	defaultRateLimitCooldown = 60 * time.Second

	defaultSchedulerDelay = 1500 * time.Millisecond

	// Dashboard defaults
	defaultHomeCoinsPerCategory = 5
	defaultCategoryCoins        = 50
	defaultRecentlyAdded        = 6
	defaultTrendingLimit        = 6
	defaultTimeframe            = "7d"
	defaultChartCoins           = 5

	// Logging defaults
	defaultMaxLogAgeDays = 7 // days
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for onramp.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:             defaultBaseURL,
			VsCurrency:          defaultVsCurrency,
			Timeout:             defaultTimeout,
			MaxRetries:          defaultMaxRetries,
			BaseDelay:           defaultBaseDelay,
			FallbackOnRateLimit: true,
			SingleFlight:        true,
		},
		Cache: CacheConfig{
			Duration:                defaultCacheDuration,
			MaxBytes:                defaultCacheMaxBytes,
			EvictFraction:           defaultEvictFraction,
			AggressiveEvictFraction: defaultAggressiveEvictFraction,
		},
		RateLimit: RateLimitConfig{
			Cooldown: defaultRateLimitCooldown,
		},
		Scheduler: SchedulerConfig{
			Policy: SchedulerPolicyStagger,
			Delay:  defaultSchedulerDelay,
		},
		Dashboard: DashboardConfig{
			HomeCoinsPerCategory: defaultHomeCoinsPerCategory,
			CategoryCoins:        defaultCategoryCoins,
			RecentlyAdded:        defaultRecentlyAdded,
			TrendingLimit:        defaultTrendingLimit,
			DefaultTimeframe:     defaultTimeframe,
			ChartCoins:           defaultChartCoins,
		},
		Database: DatabaseConfig{
			// Path is set dynamically in config.Load()
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			MaxAge:        defaultMaxLogAgeDays,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
		},
		Appearance: AppearanceConfig{
			LightPalette: ColorPalette{
				Background:     "#fafafa",
				Surface:        "#f4f4f5",
				SurfaceVariant: "#e4e4e7",
				Text:           "#18181b",
				Muted:          "#71717a",
				Accent:         "#2563eb",
				Border:         "#d4d4d8",
				Up:             "#16a34a",
				Down:           "#dc2626",
			},
			DarkPalette: ColorPalette{
				Background:     "#0a0a0b",
				Surface:        "#18181b",
				SurfaceVariant: "#27272a",
				Text:           "#fafafa",
				Muted:          "#a1a1aa",
				Accent:         "#60a5fa",
				Border:         "#3f3f46",
				Up:             "#4ade80",
				Down:           "#f87171",
			},
		},
	}
}
