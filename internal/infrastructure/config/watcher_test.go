package config

import (
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleFileEvent_ReloadsAndNotifies(t *testing.T) {
	setXDGEnv(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []*Config
	mgr.OnConfigChange(func(cfg *Config) { got = append(got, cfg) })

	cfg := mgr.Get()
	cfg.RateLimit.Cooldown = 2 * time.Minute
	require.NoError(t, WriteConfigOrdered(cfg, mgr.GetConfigFile()))

	mgr.handleFileEvent(fsnotify.Event{Name: mgr.GetConfigFile(), Op: fsnotify.Write})

	require.Len(t, got, 1)
	assert.Equal(t, 2*time.Minute, got[0].RateLimit.Cooldown)
	assert.Equal(t, 2*time.Minute, mgr.Get().RateLimit.Cooldown)
}

func TestHandleFileEvent_IgnoresChmod(t *testing.T) {
	setXDGEnv(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	mgr.handleFileEvent(fsnotify.Event{Name: mgr.GetConfigFile(), Op: fsnotify.Chmod})
	assert.False(t, called)
}

func TestHandleFileEvent_InvalidFileKeepsPrevious(t *testing.T) {
	setXDGEnv(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	cfg := mgr.Get()
	cfg.API.MaxRetries = 0
	require.NoError(t, WriteConfigOrdered(cfg, mgr.GetConfigFile()))

	mgr.handleFileEvent(fsnotify.Event{Name: mgr.GetConfigFile(), Op: fsnotify.Write})

	assert.False(t, called)
	assert.Equal(t, DefaultConfig().API.MaxRetries, mgr.Get().API.MaxRetries)
}
