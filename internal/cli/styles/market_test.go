package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/onramp/internal/cli/styles"
	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/infrastructure/config"
)

func newPanels() *styles.PanelRenderer {
	return styles.NewPanelRenderer(styles.NewTheme(config.DefaultConfig(), entity.ThemeDark), "usd")
}

func TestPanelRenderer_Global(t *testing.T) {
	r := newPanels()
	out := r.Global(&entity.GlobalStats{
		ActiveCryptocurrencies: 17000,
		TotalMarketCap:         entity.CurrencyAmounts{"usd": 2.5e12},
		TotalVolume:            entity.CurrencyAmounts{"usd": 9.1e10},
		MarketCapPercentage:    entity.CurrencyAmounts{"btc": 52.34},
		MarketCapChange24hUSD:  -1.25,
	})

	assert.Contains(t, out, "2.5T")
	assert.Contains(t, out, "91B")
	assert.Contains(t, out, "52.3%")
	assert.Contains(t, out, "17,000")
	assert.Contains(t, out, "▼ -1.25%")
	assert.Contains(t, r.Global(nil), "No market data")
}

func TestPanelRenderer_CoinList(t *testing.T) {
	r := newPanels()
	coins := []entity.Coin{
		{Name: "Bitcoin", Symbol: "btc", CurrentPrice: ptr(65000.0), PriceChangePercentage24h: ptr(2.0)},
		{Name: "Ethereum", Symbol: "eth", CurrentPrice: ptr(3200.5)},
	}
	out := r.CoinList(coins, 1)

	assert.Contains(t, out, "BTC")
	assert.Contains(t, out, "$65,000.00")
	assert.Contains(t, out, "▲ 2.00%")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, styles.IconCursor+" Ethereum")
	assert.Contains(t, r.CoinList(nil, -1), "No coins")
}

func TestPanelRenderer_Panel(t *testing.T) {
	r := newPanels()
	f := entity.Freshness{Source: entity.SourceStaleCache, StoredAt: time.Now().Add(-20 * time.Minute)}

	out := r.Panel("Trending", &f, "body", false, 0)
	assert.Contains(t, out, "Trending")
	assert.Contains(t, out, "stale")
	assert.Contains(t, out, "20m ago")
	assert.Contains(t, out, "body")

	live := r.Panel("Global", &entity.Freshness{Source: entity.SourceNetwork}, "", true, 40)
	assert.Contains(t, live, "live")

	assert.Contains(t, r.Failure(errors.New("HTTP error! status 500")), "status 500")
}

func TestPanelRenderer_CategoryStats(t *testing.T) {
	r := newPanels()
	stats := entity.ComputeCategoryStats([]entity.Coin{
		{Name: "Doge", MarketCap: ptr(2e10), TotalVolume: ptr(1e9), PriceChangePercentage24h: ptr(5.0)},
		{Name: "Pepe", MarketCap: ptr(3e9), PriceChangePercentage24h: ptr(-3.0)},
	})
	out := r.CategoryStats(stats)

	assert.Contains(t, out, "23B")
	assert.Contains(t, out, "1B")
	assert.Contains(t, out, "▲ 1.00%")
	assert.Contains(t, out, "Doge")
}

func TestPanelRenderer_CoinDetail(t *testing.T) {
	r := newPanels()
	d := &entity.CoinDetail{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", MarketCapRank: ptr(1)}
	d.MarketData.CurrentPrice = entity.CurrencyAmounts{"usd": 65000}
	d.MarketData.CirculatingSupply = ptr(19.7e6)
	d.Description.EN = `<a href="x">Bitcoin</a> is digital money.`
	d.Links.Homepage = []string{"", "https://bitcoin.org"}
	d.Tickers = []entity.CoinTicker{{Base: "BTC", Target: "USDT", Last: 65001, Volume: 1000, TrustScore: ptr("green")}}

	out := r.CoinDetail(d, 100)
	assert.Contains(t, out, "Rank #1")
	assert.Contains(t, out, "$65,000.00")
	assert.Contains(t, out, "19.7M BTC")
	assert.Contains(t, out, "Bitcoin is digital money.")
	assert.Contains(t, out, "https://bitcoin.org")
	assert.Contains(t, out, "BTC/USDT")
	assert.Contains(t, out, "Green")
	assert.Contains(t, r.CoinDetail(nil, 80), "No coin data")
}

func TestPanelRenderer_RecentList(t *testing.T) {
	r := newPanels()
	assert.Contains(t, r.RecentList(nil), "No coins viewed yet")

	out := r.RecentList([]entity.RecentCoin{{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", Price: ptr(1.5), ViewedAt: time.Now()}})
	assert.Contains(t, out, "Bitcoin")
	assert.Contains(t, out, "$1.50")
	assert.Contains(t, out, "just now")
}
