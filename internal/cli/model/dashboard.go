package model

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/onramp/internal/cli/styles"
	"github.com/bnema/onramp/internal/domain/entity"
)

const homeScope = "home"

// kindHome marks the completion of a whole home load.
const kindHome entity.ResourceKind = "home"

type categorySection struct {
	category entity.Category
	coins    []entity.Coin
	sec      section
}

// DashboardModel is the home screen: market totals, a preview of every
// category, trending coins and the newest listings.
type DashboardModel struct {
	chrome
	deps   Deps
	loader MarketLoader

	global    *entity.GlobalStats
	globalSec section

	categories []categorySection

	trending    []entity.TrendingCoin
	trendingSec section

	recentlyAdded    []entity.Coin
	recentlyAddedSec section

	recent []entity.RecentCoin

	// focus indexes the selectable panels: categories, then trending,
	// then recently added.
	focus  int
	cursor int

	child tea.Model
}

// NewDashboardModel creates the home view.
func NewDashboardModel(deps Deps) DashboardModel {
	m := DashboardModel{
		chrome: newChrome(deps.Config, deps.Theme),
		deps:   deps,
		loader: deps.loader(homeScope),
	}
	for _, c := range entity.Categories() {
		m.categories = append(m.categories, categorySection{category: c})
	}
	m.startAll()
	return m
}

// Init implements tea.Model.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadHomeCmd())
}

func (m DashboardModel) ctx() context.Context {
	if m.deps.Ctx == nil {
		return context.Background()
	}
	return m.deps.Ctx
}

func (m *DashboardModel) startAll() {
	m.globalSec.start()
	for i := range m.categories {
		m.categories[i].sec.start()
	}
	m.trendingSec.start()
	m.recentlyAddedSec.start()
}

func (m *DashboardModel) finishAll() {
	m.globalSec.finish()
	for i := range m.categories {
		m.categories[i].sec.finish()
	}
	m.trendingSec.finish()
	m.recentlyAddedSec.finish()
}

func (m DashboardModel) loading() bool {
	if m.globalSec.loading || m.trendingSec.loading || m.recentlyAddedSec.loading {
		return true
	}
	for _, c := range m.categories {
		if c.sec.loading {
			return true
		}
	}
	return false
}

func (m DashboardModel) loadHomeCmd() tea.Cmd {
	loader, ctx := m.loader, m.ctx()
	return loadCmd(homeScope, kindHome, func() error {
		return loader.LoadHome(ctx)
	})
}

// Update implements tea.Model.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.child != nil {
		return m.updateChild(msg)
	}
	return m.updateSelf(msg)
}

func (m DashboardModel) updateSelf(msg tea.Msg) (DashboardModel, tea.Cmd) {
	cmd := m.chrome.update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.startAll()
			return m, m.loadHomeCmd()
		case key.Matches(msg, m.keys.Theme):
			return m, toggleThemeCmd(m.deps)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Focus):
			m.focus = (m.focus + 1) % m.focusCount()
			m.cursor = 0
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.focusLen()-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Open):
			if id, ok := m.selectedCoinID(); ok {
				child := newEmbeddedCoinModel(m.deps, m.chrome, id)
				m.child = child
				return m, child.Init()
			}
		case key.Matches(msg, m.keys.Category):
			if m.focus < len(m.categories) {
				child := newEmbeddedCategoryModel(m.deps, m.chrome, m.categories[m.focus].category)
				m.child = child
				return m, child.Init()
			}
		}

	case globalLoadedMsg:
		if msg.scope == homeScope {
			m.global = msg.stats
			m.globalSec.done(msg.freshness)
		}

	case categoryLoadedMsg:
		if msg.scope == homeScope {
			if i := m.categoryIndex(msg.category.Slug); i >= 0 {
				m.categories[i].coins = msg.coins
				m.categories[i].sec.done(msg.freshness)
				m.clampCursor()
			}
		}

	case trendingLoadedMsg:
		if msg.scope == homeScope {
			m.trending = truncate(msg.coins, m.cfg.Dashboard.TrendingLimit)
			m.trendingSec.done(msg.freshness)
			m.clampCursor()
		}

	case recentlyAddedLoadedMsg:
		if msg.scope == homeScope {
			m.recentlyAdded = msg.coins
			m.recentlyAddedSec.done(msg.freshness)
			m.clampCursor()
		}

	case loadFailedMsg:
		if msg.scope == homeScope {
			m.failSection(msg)
		}

	case loadDoneMsg:
		if msg.scope == homeScope && msg.kind == kindHome {
			m.finishAll()
		}
	}

	return m, cmd
}

// updateChild gives keys and spinner ticks to the open view only; every
// other message also reaches the dashboard so it stays current underneath.
func (m DashboardModel) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	var own tea.Cmd
	switch msg.(type) {
	case backMsg:
		// a category page closes its own coin view first
		if c, ok := m.child.(CategoryModel); ok && c.child != nil {
			child, cmd := c.Update(msg)
			m.child = child
			return m, cmd
		}
		m.child = nil
		m.recent = m.loader.RecentlyViewed()
		return m, m.spinner.Tick
	case tea.KeyMsg, spinner.TickMsg:
	default:
		m, own = m.updateSelf(msg)
	}
	child, cmd := m.child.Update(msg)
	m.child = child
	return m, tea.Batch(own, cmd)
}

func (m *DashboardModel) failSection(msg loadFailedMsg) {
	switch msg.kind {
	case entity.ResourceGlobal:
		m.globalSec.fail(msg.err)
	case entity.ResourceCategory:
		if i := m.categoryIndex(msg.id); i >= 0 {
			m.categories[i].sec.fail(msg.err)
		}
	case entity.ResourceTrending:
		m.trendingSec.fail(msg.err)
	case entity.ResourceRecentlyAdded:
		m.recentlyAddedSec.fail(msg.err)
	}
}

func (m DashboardModel) categoryIndex(slug string) int {
	for i, c := range m.categories {
		if c.category.Slug == slug {
			return i
		}
	}
	return -1
}

func (m DashboardModel) focusCount() int {
	return len(m.categories) + 2
}

func (m DashboardModel) focusLen() int {
	switch n := len(m.categories); {
	case m.focus < n:
		return len(m.categories[m.focus].coins)
	case m.focus == n:
		return len(m.trending)
	default:
		return len(m.recentlyAdded)
	}
}

func (m *DashboardModel) clampCursor() {
	if n := m.focusLen(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m DashboardModel) selectedCoinID() (string, bool) {
	if m.cursor >= m.focusLen() {
		return "", false
	}
	switch n := len(m.categories); {
	case m.focus < n:
		return m.categories[m.focus].coins[m.cursor].ID, true
	case m.focus == n:
		return m.trending[m.cursor].ID, true
	default:
		return m.recentlyAdded[m.cursor].ID, true
	}
}

func (m DashboardModel) selectedFor(focus int) int {
	if m.focus == focus {
		return m.cursor
	}
	return -1
}

func truncate[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

// View implements tea.Model.
func (m DashboardModel) View() string {
	if m.child != nil {
		return m.child.View()
	}
	width := max(m.width-2, 40)
	half := max(width/2-1, 30)

	parts := []string{
		m.theme.Title.Render(styles.IconChart + " Crypto market"),
		m.panels.Panel(styles.IconGlobe+" Global", m.globalSec.freshnessPtr(),
			m.body(m.globalSec, m.global != nil, func() string { return m.panels.Global(m.global) }), false, width),
	}

	var row []string
	for i, c := range m.categories {
		body := m.body(c.sec, len(c.coins) > 0, func() string {
			return m.panels.CoinList(c.coins, m.selectedFor(i))
		})
		row = append(row, m.panels.Panel(c.category.Name, c.sec.freshnessPtr(), body, m.focus == i, half))
		if len(row) == 2 {
			parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		parts = append(parts, row[0])
	}

	n := len(m.categories)
	trending := m.panels.Panel(styles.IconFire+" Trending", m.trendingSec.freshnessPtr(),
		m.body(m.trendingSec, len(m.trending) > 0, func() string {
			return m.panels.TrendingList(m.trending, m.selectedFor(n))
		}), m.focus == n, half)
	added := m.panels.Panel(styles.IconSparkles+" Recently added", m.recentlyAddedSec.freshnessPtr(),
		m.body(m.recentlyAddedSec, len(m.recentlyAdded) > 0, func() string {
			return m.panels.CoinList(m.recentlyAdded, m.selectedFor(n+1))
		}), m.focus == n+1, half)
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, trending, added))

	if len(m.recent) > 0 {
		parts = append(parts, m.panels.Panel(styles.IconHistory+" Recently viewed", nil, m.panels.RecentList(m.recent), false, width))
	}
	if status := m.status(m.loading()); status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// body picks between a failure, a spinner and the rendered content.
func (m DashboardModel) body(s section, has bool, render func() string) string {
	switch {
	case s.err != nil && !has:
		return m.panels.Failure(s.err)
	case !has && !s.loaded:
		return styles.Loading(m.spinner, m.theme, "Loading...")
	default:
		return render()
	}
}
