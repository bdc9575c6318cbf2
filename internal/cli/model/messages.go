package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/onramp/internal/application/port"
	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/infrastructure/config"
)

// MarketLoader is the subset of the market data usecase the views drive.
type MarketLoader interface {
	LoadHome(ctx context.Context) error
	LoadCategoryPage(ctx context.Context, category entity.Category) ([]entity.Coin, error)
	LoadCoinDetail(ctx context.Context, id string) (*entity.CoinDetail, error)
	LoadPriceHistory(ctx context.Context, ids []string, timeframe entity.Timeframe) ([]entity.PriceHistory, error)
	RecentlyViewed() []entity.RecentCoin
}

// ThemeSwitcher persists the theme choice.
type ThemeSwitcher interface {
	Toggle(ctx context.Context) (entity.Theme, error)
}

// Deps wires the views to the application.
type Deps struct {
	Ctx    context.Context
	Config *config.Config
	Theme  entity.Theme
	Themes ThemeSwitcher
	Bridge *Bridge
	// NewLoader builds a loader that reports through r.
	NewLoader func(r port.MarketRenderer) MarketLoader
}

func (d Deps) loader(scope string) MarketLoader {
	return d.NewLoader(d.Bridge.Renderer(scope))
}

// ConfigChangedMsg is sent when the config file is reloaded.
type ConfigChangedMsg struct {
	Config *config.Config
}

type globalLoadedMsg struct {
	scope     string
	stats     *entity.GlobalStats
	freshness entity.Freshness
}

type categoryLoadedMsg struct {
	scope     string
	category  entity.Category
	coins     []entity.Coin
	freshness entity.Freshness
}

type trendingLoadedMsg struct {
	scope     string
	coins     []entity.TrendingCoin
	freshness entity.Freshness
}

type recentlyAddedLoadedMsg struct {
	scope     string
	coins     []entity.Coin
	freshness entity.Freshness
}

type coinDetailLoadedMsg struct {
	scope     string
	detail    *entity.CoinDetail
	freshness entity.Freshness
}

type priceHistoryLoadedMsg struct {
	scope     string
	series    []entity.PriceHistory
	timeframe entity.Timeframe
	freshness entity.Freshness
}

type loadFailedMsg struct {
	scope string
	kind  entity.ResourceKind
	id    string
	err   error
}

// loadDoneMsg ends a load started by a view; err is informational since
// failures were already reported per resource.
type loadDoneMsg struct {
	scope string
	kind  entity.ResourceKind
	err   error
}

type themeToggledMsg struct {
	theme entity.Theme
	err   error
}

// backMsg returns from a detail view to the dashboard.
type backMsg struct{}

// section tracks one independently loaded panel.
type section struct {
	loaded    bool
	loading   bool
	freshness entity.Freshness
	err       error
}

func (s section) freshnessPtr() *entity.Freshness {
	if !s.loaded {
		return nil
	}
	f := s.freshness
	return &f
}

func (s *section) start() {
	s.loading = true
}

func (s *section) done(f entity.Freshness) {
	s.loaded = true
	s.err = nil
	s.freshness = f
	if f.Source == entity.SourceNetwork {
		s.loading = false
	}
}

func (s *section) fail(err error) {
	s.loading = false
	s.err = err
}

func (s *section) finish() {
	s.loading = false
}

func toggleThemeCmd(d Deps) tea.Cmd {
	return func() tea.Msg {
		theme, err := d.Themes.Toggle(d.Ctx)
		return themeToggledMsg{theme: theme, err: err}
	}
}

// loadCmd runs load in a command goroutine and reports completion.
func loadCmd(scope string, kind entity.ResourceKind, load func() error) tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{scope: scope, kind: kind, err: load()}
	}
}
