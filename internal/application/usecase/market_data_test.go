package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/onramp/internal/application/port"
	"github.com/bnema/onramp/internal/application/port/mocks"
	"github.com/bnema/onramp/internal/application/usecase"
	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/infrastructure/cache"
)

type fakeEndpoints struct{}

func (fakeEndpoints) GlobalURL() string { return "global" }
func (fakeEndpoints) MarketsURL(categoryID string, perPage int, weekly bool) string {
	return fmt.Sprintf("markets?category=%s&per_page=%d&weekly=%t", categoryID, perPage, weekly)
}
func (fakeEndpoints) TrendingURL() string { return "trending" }
func (fakeEndpoints) RecentlyAddedURL(n int) string { return fmt.Sprintf("recent?n=%d", n) }
func (fakeEndpoints) CoinURL(id string) string { return "coins/" + id }
func (fakeEndpoints) MarketChartURL(id string, days int) string {
	return fmt.Sprintf("chart/%s?days=%d", id, days)
}

const (
	globalBody   = `{"data":{"active_cryptocurrencies":10,"market_cap_percentage":{"btc":52.1}}}`
	coinsBody    = `[{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":65000}]`
	trendingBody = `{"coins":[{"item":{"id":"pepe","name":"Pepe","symbol":"PEPE","score":0}}]}`
	detailBody   = `{"id":"bitcoin","symbol":"btc","name":"Bitcoin","market_data":{"current_price":{"usd":65000},"price_change_percentage_24h":1.5}}`
)

var storedAt = time.UnixMilli(1_700_000_000_000)

type harness struct {
	fetcher  *mocks.MockMarketFetcher
	cache    *mocks.MockResponseCache
	renderer *mocks.MockMarketRenderer
	recent   *cache.LRU[string, entity.RecentCoin]
	uc       *usecase.MarketDataUseCase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		fetcher:  mocks.NewMockMarketFetcher(t),
		cache:    mocks.NewMockResponseCache(t),
		renderer: mocks.NewMockMarketRenderer(t),
		recent:   cache.NewLRU[string, entity.RecentCoin](5),
	}
	h.uc = usecase.NewMarketDataUseCase(
		h.fetcher, h.cache, fakeEndpoints{}, h.renderer,
		usecase.NewScheduler(usecase.ScheduleSerial, 0),
		h.recent,
		usecase.DefaultMarketDataConfig(),
	)
	return h
}

func (h *harness) cacheMiss(url string) {
	h.cache.EXPECT().Lookup(url).Return(entity.CacheEntry{}, false, false)
}

func (h *harness) cached(url, body string, fresh bool) {
	h.cache.EXPECT().Lookup(url).Return(entity.CacheEntry{Key: url, Timestamp: storedAt, Data: json.RawMessage(body)}, fresh, true)
}

func network(body string) *port.FetchResponse {
	return &port.FetchResponse{Body: json.RawMessage(body), Source: entity.SourceNetwork, StoredAt: storedAt.Add(time.Hour)}
}

func TestLoadGlobal_FetchesOnCacheMiss(t *testing.T) {
	h := newHarness(t)
	h.cacheMiss("global")
	h.fetcher.EXPECT().Fetch(mock.Anything, "global").Return(network(globalBody), nil).Once()
	h.renderer.EXPECT().RenderGlobal(mock.Anything, mock.Anything).
		Run(func(stats *entity.GlobalStats, f entity.Freshness) {
			assert.Equal(t, 10, stats.ActiveCryptocurrencies)
			assert.Equal(t, entity.SourceNetwork, f.Source)
		}).Once()

	stats, err := h.uc.LoadGlobal(context.Background())

	require.NoError(t, err)
	require.NotNil(t, stats.BTCDominance())
	assert.InDelta(t, 52.1, *stats.BTCDominance(), 0.001)
}

func TestLoadGlobal_FreshCacheSkipsFetch(t *testing.T) {
	h := newHarness(t)
	h.cached("global", globalBody, true)
	h.renderer.EXPECT().RenderGlobal(mock.Anything, entity.Freshness{Source: entity.SourceCache, StoredAt: storedAt}).Once()

	_, err := h.uc.LoadGlobal(context.Background())

	require.NoError(t, err)
}

func TestLoadGlobal_StaleCacheRendersThenRefreshes(t *testing.T) {
	h := newHarness(t)
	h.cached("global", globalBody, false)
	h.fetcher.EXPECT().Fetch(mock.Anything, "global").Return(network(globalBody), nil).Once()

	var sources []entity.DataSource
	h.renderer.EXPECT().RenderGlobal(mock.Anything, mock.Anything).
		Run(func(_ *entity.GlobalStats, f entity.Freshness) { sources = append(sources, f.Source) }).
		Times(2)

	_, err := h.uc.LoadGlobal(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []entity.DataSource{entity.SourceStaleCache, entity.SourceNetwork}, sources)
}

func TestLoadTrending_FailureIsReportedForThatResource(t *testing.T) {
	h := newHarness(t)
	boom := errors.New("fetch failed: HTTP error! status 503")
	h.cached("trending", trendingBody, false)
	h.fetcher.EXPECT().Fetch(mock.Anything, "trending").Return(nil, boom).Once()
	h.renderer.EXPECT().RenderTrending(mock.Anything, mock.Anything).Once()
	h.renderer.EXPECT().RenderFailure(entity.ResourceTrending, "", boom).Once()

	_, err := h.uc.LoadTrending(context.Background())

	require.ErrorIs(t, err, boom)
}

func TestLoadRecentlyAdded_DecodeFailure(t *testing.T) {
	h := newHarness(t)
	h.cacheMiss("recent?n=6")
	h.fetcher.EXPECT().Fetch(mock.Anything, "recent?n=6").Return(network(`{"not":"a list"}`), nil).Once()
	h.renderer.EXPECT().RenderFailure(entity.ResourceRecentlyAdded, "", mock.Anything).Once()

	_, err := h.uc.LoadRecentlyAdded(context.Background())

	require.Error(t, err)
}

func TestLoadCategory_UsesCategoryID(t *testing.T) {
	h := newHarness(t)
	meme, err := entity.LookupCategory("meme")
	require.NoError(t, err)

	url := "markets?category=meme-token&per_page=50&weekly=true"
	h.cacheMiss(url)
	h.fetcher.EXPECT().Fetch(mock.Anything, url).Return(network(coinsBody), nil).Once()
	h.renderer.EXPECT().RenderCategory(meme, mock.Anything, mock.Anything).
		Run(func(_ entity.Category, coins []entity.Coin, _ entity.Freshness) {
			require.Len(t, coins, 1)
			assert.Equal(t, "BTC", coins[0].Ticker())
		}).Once()

	coins, err := h.uc.LoadCategoryPage(context.Background(), meme)

	require.NoError(t, err)
	assert.Len(t, coins, 1)
}

func TestLoadCoinDetail_RecordsRecentlyViewed(t *testing.T) {
	h := newHarness(t)
	h.cacheMiss("coins/bitcoin")
	h.fetcher.EXPECT().Fetch(mock.Anything, "coins/bitcoin").Return(network(detailBody), nil).Once()
	h.renderer.EXPECT().RenderCoinDetail(mock.Anything, mock.Anything).Once()

	_, err := h.uc.LoadCoinDetail(context.Background(), "bitcoin")
	require.NoError(t, err)

	recent := h.uc.RecentlyViewed()
	require.Len(t, recent, 1)
	assert.Equal(t, "bitcoin", recent[0].ID)
	require.NotNil(t, recent[0].Price)
	assert.InDelta(t, 65000, *recent[0].Price, 0.001)
}

func TestLoadCoinDetail_FailureNotRecorded(t *testing.T) {
	h := newHarness(t)
	h.cacheMiss("coins/nope")
	h.fetcher.EXPECT().Fetch(mock.Anything, "coins/nope").Return(nil, errors.New("404")).Once()
	h.renderer.EXPECT().RenderFailure(entity.ResourceCoinDetail, "nope", mock.Anything).Once()

	_, err := h.uc.LoadCoinDetail(context.Background(), "nope")

	require.Error(t, err)
	assert.Empty(t, h.uc.RecentlyViewed())
}

func chartBody(prices ...float64) string {
	parts := make([]string, 0, len(prices))
	for i, p := range prices {
		parts = append(parts, fmt.Sprintf("[%d,%g]", 1_700_000_000_000+int64(i)*3_600_000, p))
	}
	return `{"prices":[` + strings.Join(parts, ",") + `]}`
}

func TestLoadPriceHistory_MergesCachedAndFetched(t *testing.T) {
	h := newHarness(t)
	h.cached("chart/bitcoin?days=7", chartBody(100, 110), true)
	h.cached("chart/ethereum?days=7", chartBody(10, 9), false)
	h.cacheMiss("chart/solana?days=7")

	h.fetcher.EXPECT().Fetch(mock.Anything, "chart/ethereum?days=7").Return(network(chartBody(10, 12)), nil).Once()
	h.fetcher.EXPECT().Fetch(mock.Anything, "chart/solana?days=7").Return(nil, errors.New("429")).Once()

	var renders [][]string
	h.renderer.EXPECT().RenderPriceHistory(mock.Anything, entity.Timeframe7D, mock.Anything).
		Run(func(series []entity.PriceHistory, _ entity.Timeframe, f entity.Freshness) {
			ids := make([]string, 0, len(series))
			for _, s := range series {
				ids = append(ids, s.CoinID)
			}
			renders = append(renders, ids)
			if len(renders) == 1 {
				assert.True(t, f.Stale(), "cached render carries the stalest freshness")
			}
		}).Times(2)

	series, err := h.uc.LoadPriceHistory(context.Background(), []string{"bitcoin", "ethereum", "solana"}, entity.Timeframe7D)

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"bitcoin", "ethereum"}, {"bitcoin", "ethereum"}}, renders)
	require.Len(t, series, 2)
	change := series[1].Change()
	require.NotNil(t, change)
	assert.InDelta(t, 20.0, *change, 0.001, "ethereum series comes from the refetch")
}

func TestLoadPriceHistory_AllFreshNeedsNoFetch(t *testing.T) {
	h := newHarness(t)
	h.cached("chart/bitcoin?days=1", chartBody(1, 2), true)
	h.renderer.EXPECT().RenderPriceHistory(mock.Anything, entity.Timeframe1D, mock.Anything).Once()

	series, err := h.uc.LoadPriceHistory(context.Background(), []string{"bitcoin"}, entity.Timeframe1D)

	require.NoError(t, err)
	assert.Len(t, series, 1)
}

func TestLoadPriceHistory_NothingLoaded(t *testing.T) {
	h := newHarness(t)
	h.cacheMiss("chart/bitcoin?days=90")
	h.fetcher.EXPECT().Fetch(mock.Anything, "chart/bitcoin?days=90").Return(nil, errors.New("down")).Once()
	h.renderer.EXPECT().RenderFailure(entity.ResourcePriceHistory, "", mock.Anything).Once()

	_, err := h.uc.LoadPriceHistory(context.Background(), []string{"bitcoin"}, entity.Timeframe90D)

	require.ErrorIs(t, err, usecase.ErrNoPriceHistory)
}

func TestLoadHome_OneFailureDoesNotStopTheRest(t *testing.T) {
	h := newHarness(t)
	h.cache.EXPECT().Lookup(mock.Anything).Return(entity.CacheEntry{}, false, false)
	h.fetcher.EXPECT().Fetch(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, url string) (*port.FetchResponse, error) {
			switch {
			case url == "global":
				return network(globalBody), nil
			case url == "trending":
				return network(trendingBody), nil
			case strings.Contains(url, "meme-token"):
				return nil, errors.New("fetch failed")
			default:
				return network(coinsBody), nil
			}
		})

	h.renderer.EXPECT().RenderGlobal(mock.Anything, mock.Anything).Once()
	h.renderer.EXPECT().RenderCategory(mock.Anything, mock.Anything, mock.Anything).Times(len(entity.Categories()) - 1)
	h.renderer.EXPECT().RenderTrending(mock.Anything, mock.Anything).Once()
	h.renderer.EXPECT().RenderRecentlyAdded(mock.Anything, mock.Anything).Once()
	h.renderer.EXPECT().RenderFailure(entity.ResourceCategory, "meme", mock.Anything).Once()

	err := h.uc.LoadHome(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "category:meme")
}
