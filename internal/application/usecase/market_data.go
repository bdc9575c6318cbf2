package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/onramp/internal/application/port"
	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/logging"
)

// ErrNoPriceHistory is returned when no requested series could be loaded.
var ErrNoPriceHistory = errors.New("no price history available")

// MarketDataConfig sizes the dashboard requests.
type MarketDataConfig struct {
	VsCurrency           string
	HomeCoinsPerCategory int
	CategoryCoins        int
	RecentlyAdded        int
}

// DefaultMarketDataConfig mirrors the dashboard defaults.
func DefaultMarketDataConfig() MarketDataConfig {
	return MarketDataConfig{
		VsCurrency:           "usd",
		HomeCoinsPerCategory: 5,
		CategoryCoins:        50,
		RecentlyAdded:        6,
	}
}

// MarketDataUseCase loads dashboard resources. Each load renders the cached
// value first (marked stale when expired), then refreshes it through the
// fetcher. A failure is reported for that resource only.
type MarketDataUseCase struct {
	fetcher   port.MarketFetcher
	cache     port.ResponseCache
	endpoints port.MarketEndpoints
	renderer  port.MarketRenderer
	scheduler *Scheduler
	recent    port.Cache[string, entity.RecentCoin]
	cfg       MarketDataConfig
	now       func() time.Time
}

// NewMarketDataUseCase wires the loaders. recent may be nil.
func NewMarketDataUseCase(
	fetcher port.MarketFetcher,
	cache port.ResponseCache,
	endpoints port.MarketEndpoints,
	renderer port.MarketRenderer,
	scheduler *Scheduler,
	recent port.Cache[string, entity.RecentCoin],
	cfg MarketDataConfig,
) *MarketDataUseCase {
	if scheduler == nil {
		scheduler = NewScheduler(ScheduleStagger, DefaultScheduleDelay)
	}
	def := DefaultMarketDataConfig()
	if cfg.VsCurrency == "" {
		cfg.VsCurrency = def.VsCurrency
	}
	if cfg.HomeCoinsPerCategory <= 0 {
		cfg.HomeCoinsPerCategory = def.HomeCoinsPerCategory
	}
	if cfg.CategoryCoins <= 0 {
		cfg.CategoryCoins = def.CategoryCoins
	}
	if cfg.RecentlyAdded <= 0 {
		cfg.RecentlyAdded = def.RecentlyAdded
	}
	return &MarketDataUseCase{
		fetcher:   fetcher,
		cache:     cache,
		endpoints: endpoints,
		renderer:  renderer,
		scheduler: scheduler,
		recent:    recent,
		cfg:       cfg,
		now:       time.Now,
	}
}

// LoadGlobal loads market-wide totals.
func (uc *MarketDataUseCase) LoadGlobal(ctx context.Context) (*entity.GlobalStats, error) {
	return load(ctx, uc, entity.ResourceGlobal, "", uc.endpoints.GlobalURL(),
		entity.DecodeGlobalStats, uc.renderer.RenderGlobal)
}

// LoadCategory loads the top perPage coins of a category. The category page
// passes withWeeklyChange to also get 7d changes.
func (uc *MarketDataUseCase) LoadCategory(
	ctx context.Context, category entity.Category, perPage int, withWeeklyChange bool,
) ([]entity.Coin, error) {
	url := uc.endpoints.MarketsURL(category.APIID, perPage, withWeeklyChange)
	render := func(coins []entity.Coin, f entity.Freshness) {
		uc.renderer.RenderCategory(category, coins, f)
	}
	return load(ctx, uc, entity.ResourceCategory, category.Slug, url, entity.DecodeCoins, render)
}

// LoadCategoryPage loads a category with the category view's size and 7d changes.
func (uc *MarketDataUseCase) LoadCategoryPage(ctx context.Context, category entity.Category) ([]entity.Coin, error) {
	return uc.LoadCategory(ctx, category, uc.cfg.CategoryCoins, true)
}

// LoadTrending loads the trending search list.
func (uc *MarketDataUseCase) LoadTrending(ctx context.Context) ([]entity.TrendingCoin, error) {
	return load(ctx, uc, entity.ResourceTrending, "", uc.endpoints.TrendingURL(),
		entity.DecodeTrending, uc.renderer.RenderTrending)
}

// LoadRecentlyAdded loads the newest listed coins.
func (uc *MarketDataUseCase) LoadRecentlyAdded(ctx context.Context) ([]entity.Coin, error) {
	return load(ctx, uc, entity.ResourceRecentlyAdded, "", uc.endpoints.RecentlyAddedURL(uc.cfg.RecentlyAdded),
		entity.DecodeCoins, uc.renderer.RenderRecentlyAdded)
}

// LoadCoinDetail loads one coin and records it as recently viewed.
func (uc *MarketDataUseCase) LoadCoinDetail(ctx context.Context, id string) (*entity.CoinDetail, error) {
	detail, err := load(ctx, uc, entity.ResourceCoinDetail, id, uc.endpoints.CoinURL(id),
		entity.DecodeCoinDetail, uc.renderer.RenderCoinDetail)
	if err == nil && uc.recent != nil {
		uc.recent.Set(detail.ID, entity.RecentFromDetail(detail, uc.cfg.VsCurrency, uc.now()))
	}
	return detail, err
}

// RecentlyViewed lists coins opened this session, most recent first.
func (uc *MarketDataUseCase) RecentlyViewed() []entity.RecentCoin {
	if uc.recent == nil {
		return nil
	}
	return uc.recent.Values()
}

// LoadHome loads every home section through the scheduler.
func (uc *MarketDataUseCase) LoadHome(ctx context.Context) error {
	jobs := []Job{{
		Name: string(entity.ResourceGlobal),
		Run: func(ctx context.Context) error {
			_, err := uc.LoadGlobal(ctx)
			return err
		},
	}}
	for _, category := range entity.Categories() {
		jobs = append(jobs, Job{
			Name: string(entity.ResourceCategory) + ":" + category.Slug,
			Run: func(ctx context.Context) error {
				_, err := uc.LoadCategory(ctx, category, uc.cfg.HomeCoinsPerCategory, false)
				return err
			},
		})
	}
	jobs = append(jobs,
		Job{
			Name: string(entity.ResourceTrending),
			Run: func(ctx context.Context) error {
				_, err := uc.LoadTrending(ctx)
				return err
			},
		},
		Job{
			Name: string(entity.ResourceRecentlyAdded),
			Run: func(ctx context.Context) error {
				_, err := uc.LoadRecentlyAdded(ctx)
				return err
			},
		},
	)
	return uc.scheduler.Run(ctx, jobs...)
}

// LoadPriceHistory loads one series per coin for the timeframe. Cached series
// are rendered first; missing or expired ones are fetched concurrently.
// Coins that fail are dropped. The merged result is rendered once more.
func (uc *MarketDataUseCase) LoadPriceHistory(
	ctx context.Context, ids []string, timeframe entity.Timeframe,
) ([]entity.PriceHistory, error) {
	ctx = logging.WithResource(ctx, string(entity.ResourcePriceHistory))
	log := logging.FromContext(ctx)
	days := timeframe.Days()

	series := make([]*entity.PriceHistory, len(ids))
	freshness := make([]entity.Freshness, len(ids))
	var toFetch []int

	for i, id := range ids {
		entry, fresh, ok := uc.cache.Lookup(uc.endpoints.MarketChartURL(id, days))
		if ok {
			if h, err := entity.DecodePriceHistory(id, entry.Data); err == nil {
				series[i] = h
				freshness[i] = cachedFreshness(entry, fresh)
			} else {
				log.Warn().Err(err).Str("coin", id).Msg("ignoring undecodable cached series")
			}
		}
		if !ok || !fresh || series[i] == nil {
			toFetch = append(toFetch, i)
		}
	}

	if cached, f := collectSeries(series, freshness); len(cached) > 0 {
		uc.renderer.RenderPriceHistory(cached, timeframe, f)
	}
	if len(toFetch) == 0 {
		cached, _ := collectSeries(series, freshness)
		return cached, nil
	}

	var g errgroup.Group
	for _, i := range toFetch {
		g.Go(func() error {
			id := ids[i]
			resp, err := uc.fetcher.Fetch(ctx, uc.endpoints.MarketChartURL(id, days))
			if err != nil {
				log.Warn().Err(err).Str("coin", id).Msg("dropping price history")
				return nil
			}
			h, err := entity.DecodePriceHistory(id, resp.Body)
			if err != nil {
				log.Warn().Err(err).Str("coin", id).Msg("dropping price history")
				return nil
			}
			series[i] = h
			freshness[i] = resp.Freshness()
			return nil
		})
	}
	_ = g.Wait()

	merged, f := collectSeries(series, freshness)
	if len(merged) == 0 {
		err := fmt.Errorf("%w for %d coins", ErrNoPriceHistory, len(ids))
		uc.renderer.RenderFailure(entity.ResourcePriceHistory, "", err)
		return nil, err
	}
	uc.renderer.RenderPriceHistory(merged, timeframe, f)
	return merged, nil
}

// collectSeries keeps loaded series in input order and returns the least
// fresh of their freshness values.
func collectSeries(series []*entity.PriceHistory, freshness []entity.Freshness) ([]entity.PriceHistory, entity.Freshness) {
	out := make([]entity.PriceHistory, 0, len(series))
	var worst entity.Freshness
	for i, h := range series {
		if h == nil {
			continue
		}
		out = append(out, *h)
		if len(out) == 1 || lessFresh(freshness[i], worst) {
			worst = freshness[i]
		}
	}
	return out, worst
}

func lessFresh(a, b entity.Freshness) bool {
	rank := func(s entity.DataSource) int {
		switch s {
		case entity.SourceStaleCache:
			return 2
		case entity.SourceCache:
			return 1
		default:
			return 0
		}
	}
	if rank(a.Source) != rank(b.Source) {
		return rank(a.Source) > rank(b.Source)
	}
	return a.StoredAt.Before(b.StoredAt)
}

func cachedFreshness(entry entity.CacheEntry, fresh bool) entity.Freshness {
	source := entity.SourceCache
	if !fresh {
		source = entity.SourceStaleCache
	}
	return entity.Freshness{Source: source, StoredAt: entry.Timestamp}
}

// load renders any cached value for url, then fetches and renders the
// refreshed value. A fresh cached value ends the load without a fetch.
func load[T any](
	ctx context.Context,
	uc *MarketDataUseCase,
	kind entity.ResourceKind,
	id string,
	url string,
	decode func([]byte) (T, error),
	render func(T, entity.Freshness),
) (T, error) {
	ctx = logging.WithResource(ctx, string(kind))
	log := logging.FromContext(ctx)
	var zero T

	if entry, fresh, ok := uc.cache.Lookup(url); ok {
		value, err := decode(entry.Data)
		if err == nil {
			render(value, cachedFreshness(entry, fresh))
			if fresh {
				return value, nil
			}
		} else {
			log.Warn().Err(err).Msg("ignoring undecodable cached value")
		}
	}

	resp, err := uc.fetcher.Fetch(ctx, url)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to load resource")
		uc.renderer.RenderFailure(kind, id, err)
		return zero, err
	}

	value, err := decode(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to decode resource")
		uc.renderer.RenderFailure(kind, id, err)
		return zero, err
	}
	render(value, resp.Freshness())
	return value, nil
}
