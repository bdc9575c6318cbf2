package cmd

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/onramp/internal/cli/styles"
	"github.com/bnema/onramp/internal/infrastructure/config"
	"github.com/bnema/onramp/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const defaultLogsLines = 50

var logsCmd = &cobra.Command{
	Use:   "logs [file]",
	Short: "View application logs",
	Long: `View onramp log files.

File logging is enabled with logging.enable_file_log. The active file is
onramp.log; rotated backups carry a timestamp suffix and may be gzipped.

Examples:
  onramp logs                  # Last 50 lines of the active log
  onramp logs -f               # Follow the active log
  onramp logs -n 200           # Last 200 lines
  onramp logs list             # List the active log and its backups
  onramp logs onramp.log.2025  # Read a backup (prefix match)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List log files",
	RunE:  runLogsList,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove old log backups",
	Long: `Remove rotated log backups older than logging.max_age days.
Use --all to remove every backup. The active log is never removed.`,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsListCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all log backups")
}

// LogFile describes one log file on disk.
type LogFile struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Active  bool
}

func runLogs(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	theme := app.Styles()
	logDir := getLogDir(app.Config)

	files, err := getLogFiles(logDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println(theme.Subtle.Render("No logs found. Set logging.enable_file_log = true to write them."))
		return nil
	}

	file := files[0]
	if len(args) == 1 {
		match, err := findLogFile(files, args[0])
		if err != nil {
			return err
		}
		file = *match
	}

	if logsFollow {
		if !file.Active {
			return fmt.Errorf("only the active log can be followed")
		}
		return tailLog(file.Path, theme)
	}
	return showLog(file.Path, logsLines, theme)
}

func runLogsList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	theme := app.Styles()
	logDir := getLogDir(app.Config)

	files, err := getLogFiles(logDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println(theme.Subtle.Render("No logs found in " + logDir))
		return nil
	}

	fmt.Println(theme.Title.Render("Log files (newest first):"))
	fmt.Println()
	for _, f := range files {
		status := ""
		if f.Active {
			status = theme.SuccessStyle.Render("active")
		}
		fmt.Printf("  %s  %s  %s  %s\n",
			theme.Highlight.Render(f.Name),
			theme.Subtle.Render(f.ModTime.Format("2006-01-02 15:04:05")),
			status,
			theme.Subtle.Render(fmt.Sprintf("(%s)", formatSize(f.Size))),
		)
	}
	return nil
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	theme := app.Styles()

	files, err := getLogFiles(getLogDir(app.Config))
	if err != nil {
		return err
	}

	maxAge := 7
	if app.Config != nil && app.Config.Logging.MaxAge > 0 {
		maxAge = app.Config.Logging.MaxAge
	}
	removed := clearLogFiles(files, logsClearAll, time.Now().AddDate(0, 0, -maxAge), func(f LogFile, err error) {
		if err != nil {
			fmt.Printf("%s %s: %v\n", theme.ErrorStyle.Render(styles.IconX), f.Name, err)
			return
		}
		fmt.Printf("%s %s (%s)\n", theme.SuccessStyle.Render(styles.IconCheck), f.Name, formatSize(f.Size))
	})

	if removed == 0 {
		fmt.Println(theme.Subtle.Render(fmt.Sprintf("No backups older than %d days", maxAge)))
	} else {
		fmt.Printf("\n%s\n", theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d backup(s)", removed)))
	}
	return nil
}

// clearLogFiles removes backups modified before cutoff, or all backups when
// all is set, and reports each attempt.
func clearLogFiles(files []LogFile, all bool, cutoff time.Time, report func(LogFile, error)) int {
	var removed int
	for _, f := range files {
		if f.Active || (!all && !f.ModTime.Before(cutoff)) {
			continue
		}
		err := os.Remove(f.Path)
		report(f, err)
		if err == nil {
			removed++
		}
	}
	return removed
}

// getLogDir returns the configured log directory or the XDG default.
func getLogDir(cfg *config.Config) string {
	if cfg != nil && cfg.Logging.LogDir != "" {
		return cfg.Logging.LogDir
	}
	logDir, err := config.GetLogDir()
	if err != nil {
		stateDir := os.Getenv("XDG_STATE_HOME")
		if stateDir == "" {
			home, _ := os.UserHomeDir()
			stateDir = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(stateDir, "onramp", "logs")
	}
	return logDir
}

// getLogFiles returns the active log and its backups, active first, then
// backups newest first.
func getLogFiles(logDir string) ([]LogFile, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var files []LogFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, logging.LogFileName) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, LogFile{
			Name:    name,
			Path:    filepath.Join(logDir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Active:  name == logging.LogFileName,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Active != files[j].Active {
			return files[i].Active
		}
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

// findLogFile matches query against file names, exact match first.
func findLogFile(files []LogFile, query string) (*LogFile, error) {
	for i := range files {
		if files[i].Name == query {
			return &files[i], nil
		}
	}

	var matches []LogFile
	for _, f := range files {
		if strings.HasPrefix(f.Name, query) {
			matches = append(matches, f)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no log file matching '%s' found", query)
	case 1:
		return &matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Name)
		}
		return nil, fmt.Errorf("multiple log files match '%s': %s", query, strings.Join(names, ", "))
	}
}

// showLog prints the last n lines of a log file, decompressing backups.
func showLog(path string, n int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var r io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(file)
		if err != nil {
			return fmt.Errorf("open compressed log: %w", err)
		}
		defer func() { _ = zr.Close() }()
		r = zr
	}

	lines, err := lastLines(r, n)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(colorizeLogLine(line, theme))
	}
	return nil
}

// lastLines keeps a window of the last n lines.
func lastLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	window := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(window) == n {
			window = window[1:]
		}
		window = append(window, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return window, nil
}

// tailLog follows a log file in real-time.
func tailLog(path string, theme *styles.Theme) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, _ = file.Seek(0, io.SeekEnd)

	fmt.Println(theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Println()

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// No full line yet; keep partial data.
				pending += chunk
				time.Sleep(100 * time.Millisecond)
				continue
			}
			return fmt.Errorf("read log file: %w", err)
		}

		pending += chunk
		for {
			idx := strings.IndexByte(pending, '\n')
			if idx == -1 {
				break
			}
			line := pending[:idx]
			pending = pending[idx+1:]
			fmt.Println(colorizeLogLine(line, theme))
		}
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
	Resource  string `json:"resource"`
	URL       string `json:"url"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil {
		return formatJSONLogLine(entry, theme)
	}

	// Fallback to pattern matching for console-format logs
	switch {
	case containsAny(line, "ERR", "ERROR"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, "WRN", "WARN"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, "DBG", "DEBUG"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := ""
	if entry.Time != "" {
		if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
			timeStr = t.Format("15:04:05")
		} else {
			timeStr = entry.Time
		}
	}

	var levelStr string
	switch entry.Level {
	case "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Resource != "" {
		msg = theme.Subtle.Render("["+entry.Resource+"]") + " " + msg
	}
	if entry.Component != "" {
		msg = theme.Subtle.Render("["+entry.Component+"]") + " " + msg
	}
	if entry.URL != "" {
		msg += " " + theme.Subtle.Render(entry.URL)
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

// containsAny checks if s contains any of the substrings.
func containsAny(s string, substrs ...string) bool {
	sLower := strings.ToLower(s)
	for _, substr := range substrs {
		if strings.Contains(sLower, strings.ToLower(substr)) {
			return true
		}
	}
	return false
}

func formatSize(size int64) string {
	v := float64(size)
	return styles.FormatNumber(&v) + "B"
}
