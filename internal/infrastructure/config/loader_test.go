package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setXDGEnv(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "https://api.coingecko.com/api/v3", mgr.viper.GetString("api.base_url"))
	assert.Equal(t, 15*time.Minute, mgr.viper.GetDuration("cache.duration"))
	assert.Equal(t, time.Minute, mgr.viper.GetDuration("rate_limit.cooldown"))
	assert.Equal(t, "stagger", mgr.viper.GetString("scheduler.policy"))
	assert.True(t, mgr.viper.GetBool("api.single_flight"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.BaseURL = " https://example.test/api/v3/ "
	cfg.API.VsCurrency = "EUR"
	cfg.Scheduler.Policy = SchedulerPolicy("SERIAL")
	cfg.Dashboard.DefaultTimeframe = ""
	cfg.Appearance.DarkPalette.Up = ""

	normalizeConfig(cfg)

	assert.Equal(t, "https://example.test/api/v3", cfg.API.BaseURL)
	assert.Equal(t, "eur", cfg.API.VsCurrency)
	assert.Equal(t, SchedulerPolicySerial, cfg.Scheduler.Policy)
	assert.Equal(t, "7d", cfg.Dashboard.DefaultTimeframe)
	assert.Equal(t, DefaultConfig().Appearance.DarkPalette.Up, cfg.Appearance.DarkPalette.Up)
}

func TestNormalizeConfig_UnknownPolicyFallsBackToStagger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scheduler.Policy = SchedulerPolicy("round-robin")

	normalizeConfig(cfg)

	assert.Equal(t, SchedulerPolicyStagger, cfg.Scheduler.Policy)
}

func TestManagerLoad_CreatesDefaultConfig(t *testing.T) {
	root := setXDGEnv(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", "onramp", "config.toml")
	_, err = os.Stat(configFile)
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, 15*time.Minute, cfg.Cache.Duration)
	assert.Equal(t, time.Second, cfg.API.BaseDelay)
	assert.Equal(t, 3, cfg.API.MaxRetries)
	assert.Equal(t, filepath.Join(root, "data", "onramp", "onramp.sqlite"), cfg.Database.Path)
}

func TestManagerLoad_ReadsUserValues(t *testing.T) {
	root := setXDGEnv(t)
	dir := filepath.Join(root, "config", "onramp")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := `
[cache]
duration = "5m"

[scheduler]
policy = "serial"
delay = "250ms"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 5*time.Minute, cfg.Cache.Duration)
	assert.Equal(t, SchedulerPolicySerial, cfg.Scheduler.Policy)
	assert.Equal(t, 250*time.Millisecond, cfg.Scheduler.Delay)
	// Untouched sections keep their defaults.
	assert.Equal(t, 50, cfg.Dashboard.CategoryCoins)
}

func TestManagerLoad_EnvOverride(t *testing.T) {
	setXDGEnv(t)
	t.Setenv("ONRAMP_API_MAX_RETRIES", "5")
	t.Setenv("ONRAMP_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 5, cfg.API.MaxRetries)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManagerSave_ReloadsWithoutWatch(t *testing.T) {
	setXDGEnv(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Cache.Duration = 10 * time.Minute
	require.NoError(t, mgr.Save(cfg))

	assert.Equal(t, 10*time.Minute, mgr.Get().Cache.Duration)
}

func TestManagerSave_RejectsInvalid(t *testing.T) {
	setXDGEnv(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.API.MaxRetries = 0
	err = mgr.Save(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.max_retries")
}
