package styles_test

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/onramp/internal/cli/styles"
	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/infrastructure/config"
)

func TestSparkline(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, styles.Sparkline(nil, 10))
		assert.Empty(t, styles.Sparkline([]float64{1, 2}, 0))
	})

	t.Run("maps min and max to the outer blocks", func(t *testing.T) {
		assert.Equal(t, "▁▄█", styles.Sparkline([]float64{1, 1.5, 2}, 10))
	})

	t.Run("flat series sits in the middle", func(t *testing.T) {
		assert.Equal(t, "▄▄▄", styles.Sparkline([]float64{5, 5, 5}, 10))
	})

	t.Run("long series is averaged to width", func(t *testing.T) {
		values := make([]float64, 100)
		for i := range values {
			values[i] = float64(i)
		}
		line := styles.Sparkline(values, 20)
		assert.Equal(t, 20, utf8.RuneCountInString(line))
		runes := []rune(line)
		assert.Equal(t, '▁', runes[0])
		assert.Equal(t, '█', runes[len(runes)-1])
	})
}

func TestChartRenderer_Render(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig(), entity.ThemeDark)
	r := styles.NewChartRenderer(theme, 10)

	assert.Contains(t, r.Render(nil, entity.Timeframe7D, nil), "No price history")

	start := time.UnixMilli(1700000000000)
	series := []entity.PriceHistory{
		{CoinID: "bitcoin", Prices: []entity.PricePoint{{Time: start, Price: 100}, {Time: start.Add(time.Hour), Price: 110}}},
		{CoinID: "ethereum", Prices: []entity.PricePoint{{Time: start, Price: 100}, {Time: start.Add(time.Hour), Price: 90}}},
	}
	out := r.Render(series, entity.Timeframe7D, map[string]string{"bitcoin": "Bitcoin"})

	assert.Contains(t, out, "Price history (7d)")
	assert.Contains(t, out, "Bitcoin")
	assert.Contains(t, out, "ethereum")
	assert.Contains(t, out, "▲ 10.00%")
	assert.Contains(t, out, "▼ -10.00%")
}
