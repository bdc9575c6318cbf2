package styles

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// NewDefaultSpinner creates the themed spinner shown while a section loads.
func NewDefaultSpinner(theme *Theme) spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(SpinnerStyle(theme)),
	)
}

// SpinnerStyle colors spinner frames with the theme accent. Re-theming an
// existing spinner swaps only its style so pending ticks keep their id.
func SpinnerStyle(theme *Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Accent)
}

// Loading renders the current spinner frame followed by a dimmed message.
func Loading(s spinner.Model, theme *Theme, message string) string {
	return s.View() + " " + theme.Subtle.Render(message)
}
