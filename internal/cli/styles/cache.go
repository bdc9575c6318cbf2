package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/onramp/internal/domain/entity"
)

// CacheRenderer renders `onramp cache` output.
type CacheRenderer struct {
	theme *Theme
	now   func() time.Time
}

// NewCacheRenderer creates a new cache renderer with the given theme.
func NewCacheRenderer(theme *Theme) *CacheRenderer {
	return &CacheRenderer{theme: theme, now: time.Now}
}

// RenderStats renders entry counts, size against the quota and entry ages.
func (r *CacheRenderer) RenderStats(stats entity.CacheStats, ttl time.Duration, maxBytes int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle.Width(10)
	valStyle := r.theme.Highlight

	size := float64(stats.Bytes)
	quota := float64(maxBytes)
	lines := []string{
		fmt.Sprintf("%s %s", iconStyle.Render(IconCache), r.theme.Title.Render("Response cache")),
		"",
		fmt.Sprintf("%s %s", keyStyle.Render("Entries"), valStyle.Render(fmt.Sprintf("%d", stats.Entries))),
		fmt.Sprintf("%s %s", keyStyle.Render("Expired"), valStyle.Render(fmt.Sprintf("%d", stats.Expired))),
		fmt.Sprintf("%s %s / %s", keyStyle.Render("Size"),
			valStyle.Render(FormatNumber(&size)+"B"), r.theme.Subtle.Render(FormatNumber(&quota)+"B")),
		fmt.Sprintf("%s %s", keyStyle.Render("TTL"), valStyle.Render(ttl.String())),
	}
	if stats.Entries > 0 {
		now := r.now()
		lines = append(lines,
			fmt.Sprintf("%s %s", keyStyle.Render("Oldest"), valStyle.Render(RelativeTimeFrom(stats.Oldest, now))),
			fmt.Sprintf("%s %s", keyStyle.Render("Newest"), valStyle.Render(RelativeTimeFrom(stats.Newest, now))),
		)
	}
	return r.theme.Box.Render(strings.Join(lines, "\n"))
}

// RenderCleared renders the confirmation after clearing the cache.
func (r *CacheRenderer) RenderCleared(removed int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Removed %d cached responses\n", iconStyle.Render(IconTrash), removed)
}

// RenderError renders a cache command failure.
func (r *CacheRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s Cache error: %v\n", iconStyle.Render(IconX), err)
}
