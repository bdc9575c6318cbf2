package styles

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/infrastructure/config"
)

// sectionOrder follows the layout of config.toml.
var sectionOrder = []string{
	config.SectionAPI,
	config.SectionCache,
	config.SectionScheduler,
	config.SectionDashboard,
	config.SectionDatabase,
	config.SectionLogging,
	config.SectionAppearance,
}

// ConfigSchemaRenderer renders the list of configuration keys.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render groups keys by section, each in a box with aligned key names and the
// environment variable that overrides the key.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	bySection := make(map[string][]entity.ConfigKeyInfo)
	var extra []string
	for _, k := range keys {
		if _, seen := bySection[k.Section]; !seen && !slices.Contains(sectionOrder, k.Section) {
			extra = append(extra, k.Section)
		}
		bySection[k.Section] = append(bySection[k.Section], k)
	}
	slices.Sort(extra)

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig)
	parts := []string{icon + " " + r.theme.Title.Render("Configuration keys"), ""}
	for _, section := range append(slices.Clone(sectionOrder), extra...) {
		if sectionKeys, ok := bySection[section]; ok {
			parts = append(parts, r.section(section, sectionKeys), "")
		}
	}
	parts = append(parts, r.theme.Subtle.Render("Any key can be overridden with its ONRAMP_* variable."))
	return strings.Join(parts, "\n")
}

// RenderJSON renders keys as an indented JSON array.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) section(name string, keys []entity.ConfigKeyInfo) string {
	width := 0
	for _, k := range keys {
		width = max(width, lipgloss.Width(k.Key))
	}

	lines := []string{r.theme.Highlight.Render(fmt.Sprintf("%s (%d)", name, len(keys)))}
	for _, k := range keys {
		lines = append(lines, r.key(k, width))
	}
	return r.theme.Box.Render(strings.Join(lines, "\n"))
}

func (r *ConfigSchemaRenderer) key(k entity.ConfigKeyInfo, width int) string {
	name := r.theme.Normal.Bold(true).Render(fmt.Sprintf("%-*s", width, k.Key))
	def := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(k.Default)
	lines := []string{
		fmt.Sprintf("%s  %s  %s", name, r.theme.Subtle.Render(k.Type), def),
		"  " + r.theme.Subtle.Render(k.Description),
	}

	switch {
	case len(k.Values) > 0:
		lines = append(lines, "  "+r.theme.Normal.Render("Values: "+strings.Join(k.Values, ", ")))
	case k.Range != "":
		lines = append(lines, "  "+r.theme.Normal.Render("Range: "+k.Range))
	}
	lines = append(lines, "  "+r.theme.Subtle.Render("env "+EnvVarName(k.Key)))
	return strings.Join(lines, "\n")
}

// EnvVarName maps a dotted config key to its environment override,
// e.g. cache.duration to ONRAMP_CACHE_DURATION.
func EnvVarName(key string) string {
	return "ONRAMP_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
