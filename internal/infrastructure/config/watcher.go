package config

import (
	"fmt"
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/onramp/internal/logging"
)

// Watch reloads the config file whenever it is written and passes the new
// settings to every OnConfigChange callback. A second call is a no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.handleFileEvent)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

func (m *Manager) handleFileEvent(e fsnotify.Event) {
	log := logging.NewFromEnv().With().Str("file", e.Name).Logger()

	// chmod and rename events carry no new content
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		log.Trace().Str("op", e.Op.String()).Msg("ignoring config event")
		return
	}

	m.mu.Lock()
	next, err := m.readFromDisk()
	if err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("config reload failed, keeping previous settings")
		return
	}
	m.config = next
	callbacks := slices.Clone(m.callbacks)
	m.mu.Unlock()

	log.Info().Int("listeners", len(callbacks)).Msg("config reloaded")
	for _, cb := range callbacks {
		cb(next)
	}
}

// OnConfigChange registers a callback run after each successful reload.
// Callbacks run on the watcher goroutine without the manager lock held.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// readFromDisk parses, normalizes and validates the file viper points at.
// Caller holds m.mu.
func (m *Manager) readFromDisk() (*Config, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	if err := ensureDatabasePath(cfg); err != nil {
		return nil, err
	}
	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}
