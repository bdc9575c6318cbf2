package styles

import (
	"fmt"
	"time"

	"github.com/bnema/onramp/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// FreshnessBadge tells where a section's data came from. Stale values get a
// warning badge with their age.
func (t *Theme) FreshnessBadge(f entity.Freshness, now time.Time) string {
	switch f.Source {
	case entity.SourceNetwork:
		return t.Badge.Render("live")
	case entity.SourceStaleCache:
		return t.BadgeStale.Render("stale · " + RelativeTimeFrom(f.StoredAt, now))
	case entity.SourceCache:
		return t.BadgeMuted.Render("cached · " + RelativeTimeFrom(f.StoredAt, now))
	default:
		return ""
	}
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return RelativeTimeFrom(tm, time.Now())
}

// RelativeTimeFrom formats tm relative to now.
func RelativeTimeFrom(tm, now time.Time) string {
	if tm.IsZero() {
		return "unknown"
	}
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}
