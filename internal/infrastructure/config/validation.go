package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validTimeframes are the chart ranges the category and coin views understand.
var validTimeframes = map[string]struct{}{"1d": {}, "7d": {}, "30d": {}, "90d": {}}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateAPI(config)...)
	validationErrors = append(validationErrors, validateCache(config)...)
	validationErrors = append(validationErrors, validateScheduler(config)...)
	validationErrors = append(validationErrors, validateDashboard(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// MaxAPIRetries bounds api.max_retries.
const MaxAPIRetries = 10

func validateAPI(config *Config) []string {
	var validationErrors []string
	u, err := url.Parse(config.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		validationErrors = append(validationErrors, fmt.Sprintf("api.base_url must be an absolute http(s) URL (got: %s)", config.API.BaseURL))
	}
	if config.API.MaxRetries < 1 || config.API.MaxRetries > MaxAPIRetries {
		validationErrors = append(validationErrors,
			fmt.Sprintf("api.max_retries must be between 1 and %d (got: %d)", MaxAPIRetries, config.API.MaxRetries))
	}
	if config.API.BaseDelay < 0 {
		validationErrors = append(validationErrors, "api.base_delay must be non-negative")
	}
	if config.API.Timeout < 0 {
		validationErrors = append(validationErrors, "api.timeout must be non-negative")
	}
	return validationErrors
}

func validateCache(config *Config) []string {
	var validationErrors []string
	if config.Cache.Duration <= 0 {
		validationErrors = append(validationErrors, "cache.duration must be positive")
	}
	if config.Cache.MaxBytes < 0 {
		validationErrors = append(validationErrors, "cache.max_bytes must be non-negative")
	}
	if config.Cache.EvictFraction <= 0 || config.Cache.EvictFraction > 1 {
		validationErrors = append(validationErrors, "cache.evict_fraction must be in (0, 1]")
	}
	if config.Cache.AggressiveEvictFraction <= 0 || config.Cache.AggressiveEvictFraction > 1 {
		validationErrors = append(validationErrors, "cache.aggressive_evict_fraction must be in (0, 1]")
	}
	if config.RateLimit.Cooldown < 0 {
		validationErrors = append(validationErrors, "rate_limit.cooldown must be non-negative")
	}
	return validationErrors
}

func validateScheduler(config *Config) []string {
	var validationErrors []string
	switch config.Scheduler.Policy {
	case SchedulerPolicyStagger, SchedulerPolicySerial:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"scheduler.policy must be one of: stagger, serial (got: %s)",
			config.Scheduler.Policy,
		))
	}
	if config.Scheduler.Delay < 0 {
		validationErrors = append(validationErrors, "scheduler.delay must be non-negative")
	}
	return validationErrors
}

func validateDashboard(config *Config) []string {
	var validationErrors []string
	d := config.Dashboard
	counts := []struct {
		key   string
		value int
	}{
		{"dashboard.home_coins_per_category", d.HomeCoinsPerCategory},
		{"dashboard.category_coins", d.CategoryCoins},
		{"dashboard.recently_added", d.RecentlyAdded},
		{"dashboard.trending_limit", d.TrendingLimit},
	}
	for _, c := range counts {
		// CoinGecko caps per_page at 250.
		if c.value < 1 || c.value > 250 {
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be between 1 and 250", c.key))
		}
	}
	if d.ChartCoins < 0 {
		validationErrors = append(validationErrors, "dashboard.chart_coins must be non-negative")
	}
	if _, ok := validTimeframes[d.DefaultTimeframe]; !ok {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"dashboard.default_timeframe must be one of: 1d, 7d, 30d, 90d (got: %s)",
			d.DefaultTimeframe,
		))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors, validatePalette("appearance.light_palette", config.Appearance.LightPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.dark_palette", config.Appearance.DarkPalette)...)
	return validationErrors
}

func validatePalette(prefix string, p ColorPalette) []string {
	var validationErrors []string
	tokens := map[string]string{
		"background":      p.Background,
		"surface":         p.Surface,
		"surface_variant": p.SurfaceVariant,
		"text":            p.Text,
		"muted":           p.Muted,
		"accent":          p.Accent,
		"border":          p.Border,
		"up":              p.Up,
		"down":            p.Down,
	}
	for name, value := range tokens {
		if value != "" && !hexColorPattern.MatchString(value) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.%s must be a hex color like #1a2b3c (got: %s)", prefix, name, value))
		}
	}
	return validationErrors
}
