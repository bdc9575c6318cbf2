package coingecko

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the public CoinGecko v3 API.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Endpoints builds request URLs. The URLs double as cache keys, so query
// parameters are always emitted in the same order.
type Endpoints struct {
	baseURL    string
	vsCurrency string
}

// NewEndpoints returns URL builders for baseURL, quoting prices in vsCurrency.
func NewEndpoints(baseURL, vsCurrency string) *Endpoints {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	vsCurrency = strings.ToLower(strings.TrimSpace(vsCurrency))
	if vsCurrency == "" {
		vsCurrency = "usd"
	}
	return &Endpoints{baseURL: baseURL, vsCurrency: vsCurrency}
}

// VsCurrency returns the quote currency.
func (e *Endpoints) VsCurrency() string {
	return e.vsCurrency
}

func (e *Endpoints) GlobalURL() string {
	return e.baseURL + "/global"
}

func (e *Endpoints) MarketsURL(categoryID string, perPage int, withWeeklyChange bool) string {
	var b strings.Builder
	b.WriteString(e.baseURL)
	b.WriteString("/coins/markets?vs_currency=")
	b.WriteString(url.QueryEscape(e.vsCurrency))
	if categoryID != "" {
		b.WriteString("&category=")
		b.WriteString(url.QueryEscape(categoryID))
	}
	b.WriteString("&order=market_cap_desc&per_page=")
	b.WriteString(strconv.Itoa(perPage))
	b.WriteString("&page=1&sparkline=false")
	if withWeeklyChange {
		b.WriteString("&price_change_percentage=24h,7d")
	} else {
		b.WriteString("&price_change_percentage=24h")
	}
	return b.String()
}

func (e *Endpoints) TrendingURL() string {
	return e.baseURL + "/search/trending"
}

func (e *Endpoints) RecentlyAddedURL(perPage int) string {
	return fmt.Sprintf("%s/coins/markets?vs_currency=%s&order=created_desc&per_page=%d&page=1&sparkline=false",
		e.baseURL, url.QueryEscape(e.vsCurrency), perPage)
}

func (e *Endpoints) CoinURL(id string) string {
	return fmt.Sprintf("%s/coins/%s?localization=false&tickers=true&market_data=true&community_data=true&developer_data=false&sparkline=false",
		e.baseURL, url.PathEscape(id))
}

func (e *Endpoints) MarketChartURL(id string, days int) string {
	return fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=%s&days=%d",
		e.baseURL, url.PathEscape(id), url.QueryEscape(e.vsCurrency), days)
}
