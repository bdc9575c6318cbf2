package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/onramp/internal/domain/entity"
)

// ConfigRenderer renders config command messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	status := r.theme.SuccessStyle.Render("exists")
	if !exists {
		status = r.theme.WarningStyle.Render("not created yet")
	}
	return fmt.Sprintf("\n  %s Config %s (%s)\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path), status)
}

// RenderInitialized renders the success message after writing defaults.
func (r *ConfigRenderer) RenderInitialized(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Wrote default config to %s\n", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderExists renders the refusal to overwrite an existing config.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf(
		"\n  %s Config %s already exists\n  %s\n",
		iconStyle.Render(IconWarning),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Use --force to overwrite it with defaults."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderTheme renders the active theme, noting whether it just changed.
func (r *ConfigRenderer) RenderTheme(theme entity.Theme, changed bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	verb := "Theme is"
	if changed {
		verb = "Theme set to"
	}
	return fmt.Sprintf("\n  %s %s %s\n", iconStyle.Render(IconTheme), verb, r.theme.Highlight.Render(string(theme)))
}
