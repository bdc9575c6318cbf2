package model

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/onramp/internal/application/port"
	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/infrastructure/config"
)

type fakeSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (s *fakeSender) Send(msg tea.Msg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

type fakeLoader struct {
	renderer port.MarketRenderer
	calls    []string
	recent   []entity.RecentCoin
}

func (l *fakeLoader) LoadHome(context.Context) error {
	l.calls = append(l.calls, "home")
	return nil
}

func (l *fakeLoader) LoadCategoryPage(_ context.Context, c entity.Category) ([]entity.Coin, error) {
	l.calls = append(l.calls, "category:"+c.Slug)
	return nil, nil
}

func (l *fakeLoader) LoadCoinDetail(_ context.Context, id string) (*entity.CoinDetail, error) {
	l.calls = append(l.calls, "coin:"+id)
	return nil, nil
}

func (l *fakeLoader) LoadPriceHistory(_ context.Context, ids []string, tf entity.Timeframe) ([]entity.PriceHistory, error) {
	l.calls = append(l.calls, "history:"+string(tf))
	return nil, nil
}

func (l *fakeLoader) RecentlyViewed() []entity.RecentCoin {
	return l.recent
}

func testDeps() (Deps, map[string]*fakeLoader) {
	loaders := map[string]*fakeLoader{}
	bridge := NewBridge()
	return Deps{
		Ctx:    context.Background(),
		Config: config.DefaultConfig(),
		Theme:  entity.ThemeDark,
		Bridge: bridge,
		NewLoader: func(r port.MarketRenderer) MarketLoader {
			l := &fakeLoader{renderer: r}
			loaders[r.(*TeaRenderer).scope] = l
			return l
		},
	}, loaders
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func coin(id string, mcap, volume, change float64) entity.Coin {
	return entity.Coin{
		ID:                       id,
		Name:                     id,
		Symbol:                   id,
		MarketCap:                &mcap,
		TotalVolume:              &volume,
		PriceChangePercentage24h: &change,
	}
}

// runCmd executes cmd and any batched commands it expands to.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

var networkFresh = entity.Freshness{Source: entity.SourceNetwork, StoredAt: time.Now()}

func TestBridge_DropsUntilAttached(t *testing.T) {
	b := NewBridge()
	r := b.Renderer("home")
	r.RenderTrending(nil, networkFresh)

	s := &fakeSender{}
	b.Attach(s)
	r.RenderFailure(entity.ResourceGlobal, "", errors.New("boom"))

	require.Len(t, s.msgs, 1)
	msg, ok := s.msgs[0].(loadFailedMsg)
	require.True(t, ok)
	assert.Equal(t, "home", msg.scope)
	assert.Equal(t, entity.ResourceGlobal, msg.kind)
}

func TestBridge_RendererTagsScope(t *testing.T) {
	b := NewBridge()
	s := &fakeSender{}
	b.Attach(s)

	b.Renderer("coin:bitcoin").RenderCoinDetail(&entity.CoinDetail{ID: "bitcoin"}, networkFresh)
	b.Renderer("home").RenderGlobal(&entity.GlobalStats{}, networkFresh)

	require.Len(t, s.msgs, 2)
	assert.Equal(t, "coin:bitcoin", s.msgs[0].(coinDetailLoadedMsg).scope)
	assert.Equal(t, "home", s.msgs[1].(globalLoadedMsg).scope)
}

func TestSection_CachedValueKeepsLoading(t *testing.T) {
	var s section
	s.start()

	s.done(entity.Freshness{Source: entity.SourceStaleCache})
	assert.True(t, s.loaded)
	assert.True(t, s.loading)
	require.NotNil(t, s.freshnessPtr())

	s.done(networkFresh)
	assert.False(t, s.loading)

	s.fail(errors.New("offline"))
	assert.True(t, s.loaded, "a failed refresh keeps the last value")
	assert.Error(t, s.err)
}

func TestCoinModel_IgnoresOtherScopes(t *testing.T) {
	deps, _ := testDeps()
	m := NewCoinModel(deps, "bitcoin", entity.Timeframe7D)

	updated, _ := m.Update(coinDetailLoadedMsg{scope: "coin:ethereum", detail: &entity.CoinDetail{ID: "ethereum"}, freshness: networkFresh})
	m = updated.(CoinModel)
	assert.Nil(t, m.detail)

	updated, _ = m.Update(coinDetailLoadedMsg{scope: "coin:bitcoin", detail: &entity.CoinDetail{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc"}, freshness: networkFresh})
	m = updated.(CoinModel)
	require.NotNil(t, m.detail)
	assert.False(t, m.detailSec.loading)
	assert.Contains(t, m.View(), "Bitcoin BTC")
}

func TestCoinModel_HistoryForOtherTimeframeIgnored(t *testing.T) {
	deps, _ := testDeps()
	m := NewCoinModel(deps, "bitcoin", entity.Timeframe7D)

	series := []entity.PriceHistory{{CoinID: "bitcoin"}}
	updated, _ := m.Update(priceHistoryLoadedMsg{scope: "coin:bitcoin", series: series, timeframe: entity.Timeframe30D, freshness: networkFresh})
	m = updated.(CoinModel)
	assert.Empty(t, m.history)

	updated, _ = m.Update(priceHistoryLoadedMsg{scope: "coin:bitcoin", series: series, timeframe: entity.Timeframe7D, freshness: networkFresh})
	m = updated.(CoinModel)
	assert.Len(t, m.history, 1)
}

func TestCoinModel_TimeframeKeyReloadsHistory(t *testing.T) {
	deps, loaders := testDeps()
	m := NewCoinModel(deps, "bitcoin", entity.Timeframe7D)

	updated, cmd := m.Update(runes("f"))
	m = updated.(CoinModel)
	assert.Equal(t, entity.Timeframe30D, m.timeframe)
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(loadDoneMsg)
	require.True(t, ok)
	assert.Equal(t, entity.ResourcePriceHistory, done.kind)
	assert.Equal(t, []string{"history:30d"}, loaders["coin:bitcoin"].calls)
}

func TestCoinModel_FailureShownInPanel(t *testing.T) {
	deps, _ := testDeps()
	m := NewCoinModel(deps, "bitcoin", entity.Timeframe7D)

	updated, _ := m.Update(loadFailedMsg{scope: "coin:bitcoin", kind: entity.ResourceCoinDetail, id: "bitcoin", err: errors.New("rate limited")})
	m = updated.(CoinModel)
	assert.Contains(t, m.View(), "Failed to load: rate limited")
}

func TestCoinModel_EmbeddedBackSendsBackMsg(t *testing.T) {
	deps, _ := testDeps()
	c := newChrome(deps.Config, deps.Theme)
	m := newEmbeddedCoinModel(deps, c, "bitcoin")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, backMsg{}, cmd())
}

func TestCategoryModel_SortCycles(t *testing.T) {
	deps, _ := testDeps()
	category, err := entity.LookupCategory("meme")
	require.NoError(t, err)
	m := NewCategoryModel(deps, category, entity.SortByMarketCap, entity.Timeframe7D)

	coins := []entity.Coin{coin("doge", 30, 1, -5), coin("pepe", 10, 9, 12), coin("shib", 20, 5, 1)}
	updated, cmd := m.Update(categoryLoadedMsg{scope: "category:meme", category: category, coins: coins, freshness: networkFresh})
	m = updated.(CategoryModel)
	assert.Nil(t, cmd)
	assert.Equal(t, "doge", m.sorted[0].ID)

	updated, _ = m.Update(runes("s"))
	m = updated.(CategoryModel)
	assert.Equal(t, entity.SortByVolume, m.sortKey)
	assert.Equal(t, "pepe", m.sorted[0].ID)

	updated, _ = m.Update(runes("s"))
	m = updated.(CategoryModel)
	assert.Equal(t, entity.SortByPriceChange, m.sortKey)
	assert.Equal(t, "pepe", m.sorted[0].ID)
	assert.Equal(t, "doge", m.sorted[2].ID)

	updated, _ = m.Update(runes("s"))
	m = updated.(CategoryModel)
	assert.Equal(t, entity.SortByMarketCap, m.sortKey)
}

func TestCategoryModel_LoadDoneChartsTopCoins(t *testing.T) {
	deps, loaders := testDeps()
	category, err := entity.LookupCategory("ai")
	require.NoError(t, err)
	m := NewCategoryModel(deps, category, "", entity.Timeframe7D)

	coins := []entity.Coin{coin("fet", 30, 1, 0), coin("tao", 50, 1, 0)}
	updated, _ := m.Update(categoryLoadedMsg{scope: "category:ai", category: category, coins: coins, freshness: networkFresh})
	m = updated.(CategoryModel)

	updated, cmd := m.Update(loadDoneMsg{scope: "category:ai", kind: entity.ResourceCategory})
	m = updated.(CategoryModel)
	require.NotNil(t, cmd)
	assert.True(t, m.historySec.loading)
	assert.False(t, m.coinsSec.loading)

	runCmd(cmd)
	assert.Equal(t, []string{"history:7d"}, loaders["category:ai"].calls)
	assert.Equal(t, []string{"tao", "fet"}, m.chartIDs())
}

func TestCategoryModel_OpenAndBack(t *testing.T) {
	deps, _ := testDeps()
	category, err := entity.LookupCategory("top")
	require.NoError(t, err)
	m := NewCategoryModel(deps, category, "", entity.Timeframe7D)

	updated, _ := m.Update(categoryLoadedMsg{scope: "category:top", category: category, coins: []entity.Coin{coin("bitcoin", 100, 1, 1)}, freshness: networkFresh})
	m = updated.(CategoryModel)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(CategoryModel)
	require.NotNil(t, m.child)
	assert.NotNil(t, cmd)
	assert.Equal(t, "coin:bitcoin", m.child.scope)

	// Keys go to the child; esc asks to go back.
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(CategoryModel)
	require.NotNil(t, cmd)
	back := cmd()

	updated, _ = m.Update(back)
	m = updated.(CategoryModel)
	assert.Nil(t, m.child)
}

func TestDashboardModel_RendersHomeSections(t *testing.T) {
	deps, _ := testDeps()
	deps.Config.Dashboard.TrendingLimit = 2
	m := NewDashboardModel(deps)

	trending := []entity.TrendingCoin{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}, {ID: "c", Name: "Gamma"}}
	updated, _ := m.Update(trendingLoadedMsg{scope: homeScope, coins: trending, freshness: networkFresh})
	m = updated.(DashboardModel)
	assert.Len(t, m.trending, 2)

	top, _ := entity.LookupCategory("top")
	updated, _ = m.Update(categoryLoadedMsg{scope: homeScope, category: top, coins: []entity.Coin{coin("bitcoin", 100, 1, 1)}, freshness: networkFresh})
	m = updated.(DashboardModel)
	assert.Len(t, m.categories[0].coins, 1)

	// A category page load never lands in the home preview.
	updated, _ = m.Update(categoryLoadedMsg{scope: "category:top", category: top, coins: make([]entity.Coin, 50), freshness: networkFresh})
	m = updated.(DashboardModel)
	assert.Len(t, m.categories[0].coins, 1)

	view := m.View()
	assert.Contains(t, view, "Alpha")
	assert.NotContains(t, view, "Gamma")
	assert.Contains(t, view, "Top Coins by Market Cap")
}

func TestDashboardModel_CategoryFailureIsolated(t *testing.T) {
	deps, _ := testDeps()
	m := NewDashboardModel(deps)

	updated, _ := m.Update(loadFailedMsg{scope: homeScope, kind: entity.ResourceCategory, id: "meme", err: errors.New("HTTP 500")})
	m = updated.(DashboardModel)

	i := m.categoryIndex("meme")
	require.GreaterOrEqual(t, i, 0)
	assert.Error(t, m.categories[i].sec.err)
	assert.NoError(t, m.categories[0].sec.err)
	assert.True(t, m.globalSec.loading)

	updated, _ = m.Update(loadDoneMsg{scope: homeScope, kind: kindHome})
	m = updated.(DashboardModel)
	assert.False(t, m.loading())
}

func TestDashboardModel_FocusAndOpenCoin(t *testing.T) {
	deps, _ := testDeps()
	m := NewDashboardModel(deps)

	updated, _ := m.Update(recentlyAddedLoadedMsg{scope: homeScope, coins: []entity.Coin{coin("new1", 1, 1, 1), coin("new2", 1, 1, 1)}, freshness: networkFresh})
	m = updated.(DashboardModel)

	// Tab through every category to reach trending, then recently added.
	for range len(m.categories) + 1 {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(DashboardModel)
	}
	assert.Equal(t, len(m.categories)+1, m.focus)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(DashboardModel)
	id, ok := m.selectedCoinID()
	require.True(t, ok)
	assert.Equal(t, "new2", id)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(DashboardModel)
	child, ok := m.child.(CoinModel)
	require.True(t, ok)
	assert.Equal(t, "new2", child.id)

	updated, _ = m.Update(backMsg{})
	m = updated.(DashboardModel)
	assert.Nil(t, m.child)
}

func TestDashboardModel_BackFromCoinInsideCategory(t *testing.T) {
	deps, _ := testDeps()
	m := NewDashboardModel(deps)

	updated, _ := m.Update(runes("c"))
	m = updated.(DashboardModel)
	cat, ok := m.child.(CategoryModel)
	require.True(t, ok)
	coinView := newEmbeddedCoinModel(deps, cat.chrome, "bitcoin")
	cat.child = &coinView
	m.child = cat

	updated, _ = m.Update(backMsg{})
	m = updated.(DashboardModel)
	cat, ok = m.child.(CategoryModel)
	require.True(t, ok, "first back returns to the category page")
	assert.Nil(t, cat.child)

	updated, _ = m.Update(backMsg{})
	m = updated.(DashboardModel)
	assert.Nil(t, m.child)
}

func TestDashboardModel_ThemeToggle(t *testing.T) {
	deps, _ := testDeps()
	deps.Themes = themeStub{next: entity.ThemeLight}
	m := NewDashboardModel(deps)

	_, cmd := m.Update(runes("t"))
	require.NotNil(t, cmd)
	msg := cmd()

	updated, _ := m.Update(msg)
	m = updated.(DashboardModel)
	assert.Equal(t, entity.ThemeLight, m.theme.Mode)
}

type themeStub struct {
	next entity.Theme
}

func (s themeStub) Toggle(context.Context) (entity.Theme, error) {
	return s.next, nil
}
