package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: zerolog.InfoLevel, Format: "json"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("url", "https://example.com").Msg("fetched")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"url":"https://example.com"`)
	assert.Contains(t, out, `"message":"fetched"`)
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "cache")
	ctx = WithResource(ctx, "global")
	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"cache"`)
	assert.Contains(t, buf.String(), `"resource":"global"`)
}

func TestFromContext_WithoutLogger(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	// Must not panic.
	logger.Info().Msg("dropped")
}

func TestNewWithFile_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()

	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "console"},
		FileConfig{Enabled: true, Dir: dir},
	)
	require.NoError(t, err)

	logger.Info().Str("k", "v").Msg("to file")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "onramp.log"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
	assert.Contains(t, string(data), `"message":"to file"`)
}

func TestNewWithFile_Disabled(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()

	r, err := NewLogRotator(RotatorConfig{Dir: dir, BaseName: "test.log", MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	for i := 0; i < 4; i++ {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	info, err := os.Stat(r.Path())
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}
