package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/onramp/internal/domain/entity"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws values as a single row of block characters, width cells
// wide. Longer series are averaged into buckets; shorter ones keep their length.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	samples := downsample(values, width)

	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	var b strings.Builder
	top := len(sparkBlocks) - 1
	for _, v := range samples {
		level := top / 2
		if hi > lo {
			level = int((v - lo) / (hi - lo) * float64(top))
		}
		b.WriteRune(sparkBlocks[level])
	}
	return b.String()
}

func downsample(values []float64, width int) []float64 {
	if len(values) <= width {
		return values
	}
	out := make([]float64, width)
	for i := range width {
		start := i * len(values) / width
		end := (i + 1) * len(values) / width
		var sum float64
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

// ChartRenderer draws price history as labelled sparklines.
type ChartRenderer struct {
	theme *Theme
	width int
}

// NewChartRenderer creates a chart renderer with sparklines width cells wide.
func NewChartRenderer(theme *Theme, width int) *ChartRenderer {
	if width <= 0 {
		width = 40
	}
	return &ChartRenderer{theme: theme, width: width}
}

// Render draws one line per series: label, sparkline, period change. labels
// maps coin ids to display names; missing ids fall back to the id.
func (r *ChartRenderer) Render(series []entity.PriceHistory, timeframe entity.Timeframe, labels map[string]string) string {
	if len(series) == 0 {
		return r.theme.Subtle.Render("No price history")
	}

	labelWidth := 0
	for _, h := range series {
		labelWidth = max(labelWidth, lipgloss.Width(seriesLabel(h.CoinID, labels)))
	}

	lines := []string{r.theme.Subtitle.Render(fmt.Sprintf("%s Price history (%s)", IconChart, timeframe))}
	for _, h := range series {
		prices := make([]float64, len(h.Prices))
		for i, p := range h.Prices {
			prices[i] = p.Price
		}

		change := h.Change()
		lineStyle := r.theme.UpStyle
		if change != nil && *change < 0 {
			lineStyle = r.theme.DownStyle
		}

		label := lipgloss.NewStyle().Width(labelWidth).Render(seriesLabel(h.CoinID, labels))
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			r.theme.Normal.Render(label),
			lineStyle.Render(Sparkline(prices, r.width)),
			r.theme.Change(change),
		))
	}
	return strings.Join(lines, "\n")
}

func seriesLabel(id string, labels map[string]string) string {
	if name, ok := labels[id]; ok && name != "" {
		return name
	}
	return id
}
