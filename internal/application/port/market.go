package port

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bnema/onramp/internal/domain/entity"
)

// FetchResponse is a response body and where it came from.
type FetchResponse struct {
	Body     json.RawMessage
	Source   entity.DataSource
	StoredAt time.Time
}

// Freshness describes the response for renderers.
func (r *FetchResponse) Freshness() entity.Freshness {
	return entity.Freshness{Source: r.Source, StoredAt: r.StoredAt}
}

// MarketFetcher fetches an API URL through the cache with retries.
type MarketFetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResponse, error)
}

// MarketEndpoints builds the API URLs used as fetch and cache keys.
type MarketEndpoints interface {
	GlobalURL() string
	// MarketsURL lists a category's coins by market cap; an empty categoryID means all coins.
	MarketsURL(categoryID string, perPage int, withWeeklyChange bool) string
	TrendingURL() string
	RecentlyAddedURL(perPage int) string
	CoinURL(id string) string
	MarketChartURL(id string, days int) string
}

// MarketRenderer receives loaded market data. Each method may be called twice
// per load: first with cached data, then with the refreshed value.
type MarketRenderer interface {
	RenderGlobal(stats *entity.GlobalStats, freshness entity.Freshness)
	RenderCategory(category entity.Category, coins []entity.Coin, freshness entity.Freshness)
	RenderTrending(coins []entity.TrendingCoin, freshness entity.Freshness)
	RenderRecentlyAdded(coins []entity.Coin, freshness entity.Freshness)
	RenderCoinDetail(detail *entity.CoinDetail, freshness entity.Freshness)
	RenderPriceHistory(series []entity.PriceHistory, timeframe entity.Timeframe, freshness entity.Freshness)

	// RenderFailure reports that one resource could not be loaded. id is the
	// category slug or coin id when the kind has one.
	RenderFailure(kind entity.ResourceKind, id string, err error)
}
