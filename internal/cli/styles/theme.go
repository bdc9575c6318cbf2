// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Mode entity.Theme

	// Base colors (from config.ColorPalette)
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Up             lipgloss.Color
	Down           lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	UpStyle      lipgloss.Style
	DownStyle    lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style
	BadgeStale lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box        lipgloss.Style
	BoxFocused lipgloss.Style
	BoxHeader  lipgloss.Style
}

// NewTheme creates a Theme for mode from the configured palettes, falling back
// to the built-in defaults when a palette is missing.
func NewTheme(cfg *config.Config, mode entity.Theme) *Theme {
	defaults := config.DefaultConfig().Appearance

	p := defaults.DarkPalette
	if mode == entity.ThemeLight {
		p = defaults.LightPalette
	}
	if cfg != nil {
		configured := cfg.Appearance.DarkPalette
		if mode == entity.ThemeLight {
			configured = cfg.Appearance.LightPalette
		}
		if configured.Background != "" {
			p = configured
		}
	}

	t := NewThemeFromPalette(p)
	t.Mode = mode
	return t
}

// NewThemeFromPalette creates a Theme from a ColorPalette.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Mode:           entity.DefaultTheme,
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Up:             lipgloss.Color(p.Up),
		Down:           lipgloss.Color(p.Down),

		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color(p.Up),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.UpStyle = lipgloss.NewStyle().
		Foreground(t.Up)

	t.DownStyle = lipgloss.NewStyle().
		Foreground(t.Down)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	t.BadgeStale = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Warning).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.BoxFocused = t.Box.
		BorderForeground(t.Accent)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}

// Change colors a percentage move: up, down or muted when unknown.
func (t *Theme) Change(v *float64) string {
	text := FormatPercentage(v)
	switch {
	case v == nil:
		return t.Subtle.Render(text)
	case *v < 0:
		return t.DownStyle.Render(text)
	default:
		return t.UpStyle.Render(text)
	}
}
