package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/onramp/internal/domain/build"
)

// AboutPaths lists where onramp keeps its files.
type AboutPaths struct {
	Config   string
	Database string
	Logs     string
}

// AboutRenderer renders build info next to the logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

type aboutRow struct {
	icon, label, value string
}

// Render shows the logo beside build info, file locations and credits.
func (r *AboutRenderer) Render(info build.Info, paths AboutPaths) string {
	logo := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render(" ▄████▄   ▗▟\n██    ██ ▟█\n██    ███▀\n██    ██\n ▀████▀")

	buildRows := r.rows([]aboutRow{
		{IconVersion, "Version", orUnknown(info.Version)},
		{IconGitBranch, "Commit", orUnknown(info.Commit)},
		{IconCalendar, "Built", orUnknown(info.BuildDate)},
		{IconGo, "Go", orUnknown(info.GoVersion)},
	})
	files := r.rows([]aboutRow{
		{IconConfig, "Config", orUnknown(paths.Config)},
		{IconDatabase, "Cache", orUnknown(paths.Database)},
		{IconFile, "Logs", orUnknown(paths.Logs)},
	})

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	credits := strings.Join([]string{
		icon.Render(IconGithub) + " " + r.theme.Subtle.Render(build.RepoURL()),
		icon.Render(IconChart) + " " + r.theme.Subtle.Render(build.DataAttribution()),
		icon.Render(IconHeart) + " " + r.theme.Subtle.Render("Made by ") +
			r.theme.Highlight.Render(strings.Join(build.Contributors(), ", ")),
	}, "\n")

	body := strings.Join([]string{buildRows, "", files, "", credits}, "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", body)
}

func (r *AboutRenderer) rows(rows []aboutRow) string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row.label))
	}
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			icon.Render(row.icon),
			r.theme.Subtle.Render(fmt.Sprintf("%-*s", width, row.label)),
			r.theme.Highlight.Render(row.value),
		))
	}
	return strings.Join(lines, "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
