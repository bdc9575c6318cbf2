package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileConfig controls where log output goes besides (or instead of) stderr.
type FileConfig struct {
	Enabled       bool
	Dir           string
	MaxAgeDays    int
	WriteToStderr bool
}

// NewWithFile builds a logger that writes JSON lines to a rotating file and/or
// formatted output to stderr. The TUI owns the terminal, so interactive commands
// log to file only. The returned cleanup func is always non-nil.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	cleanup := func() {}
	var writers []io.Writer
	var openErr error

	if fileCfg.Enabled {
		rotator, err := NewLogRotator(RotatorConfig{
			Dir:        fileCfg.Dir,
			MaxAgeDays: fileCfg.MaxAgeDays,
			MaxBackups: 5,
			Compress:   true,
		})
		if err != nil {
			openErr = err
		} else {
			cleanup = func() { _ = rotator.Close() }
			writers = append(writers, rotator)
		}
	}

	if fileCfg.WriteToStderr {
		var stderr io.Writer = os.Stderr
		if cfg.Format == "console" {
			stderr = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
		}
		writers = append(writers, stderr)
	}

	if len(writers) == 0 {
		return zerolog.Nop(), cleanup, openErr
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, cleanup, openErr
}
