package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/onramp/internal/cli/styles"
	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/infrastructure/config"
)

func writeLog(t *testing.T, dir, name string, age time.Duration) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("line\n"), 0o600))
	mod := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mod, mod))
}

func TestGetLogFiles_ActiveFirstThenNewest(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "onramp.log.2025-01-01-00-00-00.000.gz", 48*time.Hour)
	writeLog(t, dir, "onramp.log.2025-01-02-00-00-00.000.gz", 24*time.Hour)
	writeLog(t, dir, "onramp.log", time.Hour)
	writeLog(t, dir, "unrelated.txt", 0)

	files, err := getLogFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.True(t, files[0].Active)
	assert.Equal(t, "onramp.log.2025-01-02-00-00-00.000.gz", files[1].Name)
}

func TestGetLogFiles_MissingDir(t *testing.T) {
	files, err := getLogFiles(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindLogFile(t *testing.T) {
	files := []LogFile{
		{Name: "onramp.log", Active: true},
		{Name: "onramp.log.2025-01-01-00-00-00.000.gz"},
		{Name: "onramp.log.2025-01-02-00-00-00.000.gz"},
	}

	f, err := findLogFile(files, "onramp.log")
	require.NoError(t, err)
	assert.True(t, f.Active, "exact match wins over prefix matches")

	f, err = findLogFile(files, "onramp.log.2025-01-02")
	require.NoError(t, err)
	assert.Equal(t, files[2].Name, f.Name)

	_, err = findLogFile(files, "onramp.log.2025")
	assert.ErrorContains(t, err, "multiple log files")

	_, err = findLogFile(files, "other")
	assert.ErrorContains(t, err, "no log file")
}

func TestClearLogFiles_KeepsActiveAndRecent(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "onramp.log", 30*24*time.Hour)
	writeLog(t, dir, "onramp.log.old", 10*24*time.Hour)
	writeLog(t, dir, "onramp.log.new", time.Hour)

	files, err := getLogFiles(dir)
	require.NoError(t, err)

	var reported []string
	removed := clearLogFiles(files, false, time.Now().AddDate(0, 0, -7), func(f LogFile, err error) {
		require.NoError(t, err)
		reported = append(reported, f.Name)
	})
	assert.Equal(t, 1, removed)
	assert.Equal(t, []string{"onramp.log.old"}, reported)
	assert.FileExists(t, filepath.Join(dir, "onramp.log"))

	files, err = getLogFiles(dir)
	require.NoError(t, err)
	removed = clearLogFiles(files, true, time.Now(), func(LogFile, error) {})
	assert.Equal(t, 1, removed)
	assert.FileExists(t, filepath.Join(dir, "onramp.log"))
}

func TestLastLines(t *testing.T) {
	lines, err := lastLines(strings.NewReader("a\nb\nc\nd\n"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, lines)

	lines, err = lastLines(strings.NewReader("a\n"), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, lines)
}

func TestColorizeLogLine_JSON(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig(), entity.ThemeDark)
	line := `{"level":"warn","time":"2025-01-01T10:11:12Z","resource":"trending","message":"serving stale cache"}`

	out := colorizeLogLine(line, theme)
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "[trending]")
	assert.Contains(t, out, "serving stale cache")
}
