package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// ONRAMP_API_BASE_URL, ONRAMP_CACHE_DURATION, ...
	v.SetEnvPrefix("ONRAMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "ONRAMP_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind ONRAMP_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "ONRAMP_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind ONRAMP_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			if createErr := m.createDefaultConfig(); createErr != nil {
				configDir, _ := GetConfigDir()
				return fmt.Errorf(
					"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
					configDir,
					createErr,
				)
			}
			if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
				return fmt.Errorf(
					"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
					rereadErr,
				)
			}
		} else {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configDir, _ := GetConfigDir()
				configFile = filepath.Join(configDir, "config.toml")
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	defaults := DefaultConfig()

	config.API.BaseURL = strings.TrimRight(strings.TrimSpace(config.API.BaseURL), "/")
	if config.API.BaseURL == "" {
		config.API.BaseURL = defaults.API.BaseURL
	}
	config.API.VsCurrency = strings.ToLower(strings.TrimSpace(config.API.VsCurrency))
	if config.API.VsCurrency == "" {
		config.API.VsCurrency = defaults.API.VsCurrency
	}

	switch strings.ToLower(string(config.Scheduler.Policy)) {
	case string(SchedulerPolicySerial):
		config.Scheduler.Policy = SchedulerPolicySerial
	default:
		config.Scheduler.Policy = SchedulerPolicyStagger
	}

	config.Dashboard.DefaultTimeframe = strings.ToLower(strings.TrimSpace(config.Dashboard.DefaultTimeframe))
	if config.Dashboard.DefaultTimeframe == "" {
		config.Dashboard.DefaultTimeframe = defaults.Dashboard.DefaultTimeframe
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = defaults.Logging.LogDir
	}

	normalizePalette(&config.Appearance.LightPalette, defaults.Appearance.LightPalette)
	normalizePalette(&config.Appearance.DarkPalette, defaults.Appearance.DarkPalette)
}

// normalizePalette fills empty tokens from the default palette.
func normalizePalette(p *ColorPalette, fallback ColorPalette) {
	fill := func(dst *string, src string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = src
		}
	}
	fill(&p.Background, fallback.Background)
	fill(&p.Surface, fallback.Surface)
	fill(&p.SurfaceVariant, fallback.SurfaceVariant)
	fill(&p.Text, fallback.Text)
	fill(&p.Muted, fallback.Muted)
	fill(&p.Accent, fallback.Accent)
	fill(&p.Border, fallback.Border)
	fill(&p.Up, fallback.Up)
	fill(&p.Down, fallback.Down)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg, writes it to the config file and reloads.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			return err
		}
	}
	if err := WriteConfigOrdered(cfg, path); err != nil {
		return err
	}

	// the watcher picks the write up on its own
	if m.watching {
		return nil
	}
	next, err := m.readFromDisk()
	if err != nil {
		return err
	}
	m.config = next
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setAPIDefaults(defaults)
	m.setCacheDefaults(defaults)
	m.setSchedulerDefaults(defaults)
	m.setDashboardDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)

	// Note: Database.Path is set dynamically in Load(), no defaults needed
}

func (m *Manager) setAPIDefaults(defaults *Config) {
	m.viper.SetDefault("api.base_url", defaults.API.BaseURL)
	m.viper.SetDefault("api.vs_currency", defaults.API.VsCurrency)
	m.viper.SetDefault("api.timeout", defaults.API.Timeout.String())
	m.viper.SetDefault("api.max_retries", defaults.API.MaxRetries)
	m.viper.SetDefault("api.base_delay", defaults.API.BaseDelay.String())
	m.viper.SetDefault("api.fallback_on_rate_limit", defaults.API.FallbackOnRateLimit)
	m.viper.SetDefault("api.single_flight", defaults.API.SingleFlight)
}

func (m *Manager) setCacheDefaults(defaults *Config) {
	m.viper.SetDefault("cache.duration", defaults.Cache.Duration.String())
	m.viper.SetDefault("cache.max_bytes", defaults.Cache.MaxBytes)
	m.viper.SetDefault("cache.evict_fraction", defaults.Cache.EvictFraction)
	m.viper.SetDefault("cache.aggressive_evict_fraction", defaults.Cache.AggressiveEvictFraction)
	m.viper.SetDefault("rate_limit.cooldown", defaults.RateLimit.Cooldown.String())
}

func (m *Manager) setSchedulerDefaults(defaults *Config) {
	m.viper.SetDefault("scheduler.policy", string(defaults.Scheduler.Policy))
	m.viper.SetDefault("scheduler.delay", defaults.Scheduler.Delay.String())
}

func (m *Manager) setDashboardDefaults(defaults *Config) {
	m.viper.SetDefault("dashboard.home_coins_per_category", defaults.Dashboard.HomeCoinsPerCategory)
	m.viper.SetDefault("dashboard.category_coins", defaults.Dashboard.CategoryCoins)
	m.viper.SetDefault("dashboard.recently_added", defaults.Dashboard.RecentlyAdded)
	m.viper.SetDefault("dashboard.trending_limit", defaults.Dashboard.TrendingLimit)
	m.viper.SetDefault("dashboard.default_timeframe", defaults.Dashboard.DefaultTimeframe)
	m.viper.SetDefault("dashboard.chart_coins", defaults.Dashboard.ChartCoins)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.light_palette", defaults.Appearance.LightPalette)
	m.viper.SetDefault("appearance.dark_palette", defaults.Appearance.DarkPalette)
}
