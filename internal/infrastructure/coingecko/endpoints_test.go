package coingecko

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/onramp/internal/application/port"
)

var _ port.MarketEndpoints = (*Endpoints)(nil)
var _ port.MarketFetcher = (*Client)(nil)

func TestEndpoints(t *testing.T) {
	e := NewEndpoints(DefaultBaseURL+"/", "USD")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"global", e.GlobalURL(), "https://api.coingecko.com/api/v3/global"},
		{
			"all coins, home",
			e.MarketsURL("", 5, false),
			"https://api.coingecko.com/api/v3/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=5&page=1&sparkline=false&price_change_percentage=24h",
		},
		{
			"category page",
			e.MarketsURL("decentralized-finance-defi", 50, true),
			"https://api.coingecko.com/api/v3/coins/markets?vs_currency=usd&category=decentralized-finance-defi&order=market_cap_desc&per_page=50&page=1&sparkline=false&price_change_percentage=24h,7d",
		},
		{"trending", e.TrendingURL(), "https://api.coingecko.com/api/v3/search/trending"},
		{
			"recently added",
			e.RecentlyAddedURL(6),
			"https://api.coingecko.com/api/v3/coins/markets?vs_currency=usd&order=created_desc&per_page=6&page=1&sparkline=false",
		},
		{
			"coin detail",
			e.CoinURL("bitcoin"),
			"https://api.coingecko.com/api/v3/coins/bitcoin?localization=false&tickers=true&market_data=true&community_data=true&developer_data=false&sparkline=false",
		},
		{
			"market chart",
			e.MarketChartURL("ethereum", 30),
			"https://api.coingecko.com/api/v3/coins/ethereum/market_chart?vs_currency=usd&days=30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestNewEndpoints_Defaults(t *testing.T) {
	e := NewEndpoints("  ", "")
	assert.Equal(t, DefaultBaseURL+"/global", e.GlobalURL())
	assert.Equal(t, "usd", e.VsCurrency())
}

func TestEndpoints_EscapesPathSegments(t *testing.T) {
	e := NewEndpoints("http://localhost:8080", "eur")
	assert.Equal(t, "http://localhost:8080/coins/a%2Fb/market_chart?vs_currency=eur&days=1", e.MarketChartURL("a/b", 1))
}
