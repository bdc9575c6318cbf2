// Package cli wires the onramp application for the Cobra commands.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/onramp/internal/application/port"
	"github.com/bnema/onramp/internal/application/usecase"
	"github.com/bnema/onramp/internal/cache"
	"github.com/bnema/onramp/internal/cli/styles"
	"github.com/bnema/onramp/internal/domain/build"
	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/domain/repository"
	infracache "github.com/bnema/onramp/internal/infrastructure/cache"
	"github.com/bnema/onramp/internal/infrastructure/coingecko"
	"github.com/bnema/onramp/internal/infrastructure/config"
	"github.com/bnema/onramp/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/onramp/internal/infrastructure/ratelimit"
	"github.com/bnema/onramp/internal/logging"
)

// recentCapacity bounds the recently viewed list.
const recentCapacity = 8

// App holds CLI dependencies. The database and the market stack are opened on
// first use so commands like `config path` never touch them.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	BuildInfo build.Info

	db    *sqlite.LazyDB
	slots repository.SlotRepository

	// Use cases
	ThemeUC        *usecase.ThemeUseCase
	ConfigSchemaUC *usecase.GetConfigSchemaUseCase

	marketOnce sync.Once
	store      *cache.Store
	client     *coingecko.Client
	endpoints  *coingecko.Endpoints
	scheduler  *usecase.Scheduler
	recent     *infracache.LRU[string, entity.RecentCoin]

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg, cfgErr := loadConfig()

	logDir := cfg.Logging.LogDir
	if logDir == "" {
		logDir, _ = config.GetLogDir()
	}
	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog && logDir != "",
			Dir:        logDir,
			MaxAgeDays: cfg.Logging.MaxAge,
			// The TUI owns the terminal.
			WriteToStderr: false,
		},
	)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default config")
	}

	dbFile := cfg.Database.Path
	if dbFile == "" {
		var err error
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			logCleanup()
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	db := sqlite.NewLazyDB(dbFile)
	slots := sqlite.NewLazySlotRepository(db)

	return &App{
		Config:         cfg,
		Manager:        mgr,
		db:             db,
		slots:          slots,
		ThemeUC:        usecase.NewThemeUseCase(slots),
		ConfigSchemaUC: usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		recent:         infracache.NewLRU[string, entity.RecentCoin](recentCapacity),
		ctx:            ctx,
		logCleanup:     logCleanup,
	}, nil
}

// initMarket builds the cache, rate-limit guard and API client.
func (a *App) initMarket() {
	a.marketOnce.Do(func() {
		cfg := a.Config
		a.store = cache.NewStore(a.ctx, a.slots,
			cache.WithTTL(cfg.Cache.Duration),
			cache.WithMaxBytes(cfg.Cache.MaxBytes),
			cache.WithEvictFractions(cfg.Cache.EvictFraction, cfg.Cache.AggressiveEvictFraction),
		)
		guard := ratelimit.NewGuard(ratelimit.WithCooldown(cfg.RateLimit.Cooldown))
		a.endpoints = coingecko.NewEndpoints(cfg.API.BaseURL, cfg.API.VsCurrency)
		a.client = coingecko.NewClient(a.store, guard,
			coingecko.WithTimeout(cfg.API.Timeout),
			coingecko.WithUserAgent(a.BuildInfo.UserAgent()),
			coingecko.WithRetry(cfg.API.MaxRetries, cfg.API.BaseDelay),
			coingecko.WithRateLimitFallback(cfg.API.FallbackOnRateLimit),
			coingecko.WithSingleFlight(cfg.API.SingleFlight),
		)
		a.scheduler = usecase.NewScheduler(usecase.SchedulePolicy(cfg.Scheduler.Policy), cfg.Scheduler.Delay)
		logging.FromContext(a.ctx).Debug().
			Str("db_path", a.db.Path()).
			Int("cached_entries", a.store.Len()).
			Msg("market stack ready")
	})
}

// NewMarketData returns a market data use case reporting to renderer. Every
// instance shares the cache, the rate-limit guard and the recently viewed list.
func (a *App) NewMarketData(renderer port.MarketRenderer) *usecase.MarketDataUseCase {
	a.initMarket()
	return usecase.NewMarketDataUseCase(a.client, a.store, a.endpoints, renderer, a.scheduler, a.recent,
		usecase.MarketDataConfig{
			VsCurrency:           a.Config.API.VsCurrency,
			HomeCoinsPerCategory: a.Config.Dashboard.HomeCoinsPerCategory,
			CategoryCoins:        a.Config.Dashboard.CategoryCoins,
			RecentlyAdded:        a.Config.Dashboard.RecentlyAdded,
		})
}

// Cache returns the persisted response cache.
func (a *App) Cache() *cache.Store {
	a.initMarket()
	return a.store
}

// CurrentTheme returns the persisted theme, or the default when none is
// stored or the database is unavailable.
func (a *App) CurrentTheme() entity.Theme {
	theme, err := a.ThemeUC.Current(a.ctx)
	if err != nil {
		logging.FromContext(a.ctx).Warn().Err(err).Msg("reading theme")
	}
	return theme
}

// Styles returns the palette for the current theme.
func (a *App) Styles() *styles.Theme {
	return styles.NewTheme(a.Config, a.CurrentTheme())
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be read.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
