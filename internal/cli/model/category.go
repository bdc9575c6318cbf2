package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/onramp/internal/cli/styles"
	"github.com/bnema/onramp/internal/domain/entity"
)

var sortCycle = []entity.SortKey{entity.SortByMarketCap, entity.SortByVolume, entity.SortByPriceChange}

// CategoryModel shows a category page: summary stats, a sortable coin table
// and price lines for its top coins.
type CategoryModel struct {
	chrome
	deps     Deps
	loader   MarketLoader
	scope    string
	embedded bool

	category   entity.Category
	coins      []entity.Coin
	sorted     []entity.Coin
	coinsSec   section
	sortKey    entity.SortKey
	timeframe  entity.Timeframe
	history    []entity.PriceHistory
	historySec section
	table      table.Model

	// child is the coin view opened from the table.
	child *CoinModel
}

// NewCategoryModel creates a standalone category view.
func NewCategoryModel(deps Deps, category entity.Category, sortKey entity.SortKey, timeframe entity.Timeframe) CategoryModel {
	scope := "category:" + category.Slug
	m := CategoryModel{
		chrome:    newChrome(deps.Config, deps.Theme),
		deps:      deps,
		loader:    deps.loader(scope),
		scope:     scope,
		category:  category,
		sortKey:   sortKey,
		timeframe: timeframe,
	}
	if m.sortKey == "" {
		m.sortKey = entity.SortByMarketCap
	}
	if m.timeframe == "" {
		m.timeframe = m.chrome.timeframe()
	}
	m.table = styles.NewStyledTable(m.theme, styles.MarketTableColumns(true), nil, m.width-4, m.tableHeight())
	m.coinsSec.start()
	return m
}

func newEmbeddedCategoryModel(deps Deps, c chrome, category entity.Category) CategoryModel {
	m := NewCategoryModel(deps, category, "", "")
	m.chrome = c
	m.embedded = true
	m.rebuildTable()
	return m
}

// Init implements tea.Model.
func (m CategoryModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCoins())
}

func (m CategoryModel) ctx() context.Context {
	if m.deps.Ctx == nil {
		return context.Background()
	}
	return m.deps.Ctx
}

func (m *CategoryModel) loadCoins() tea.Cmd {
	m.coinsSec.start()
	loader, ctx, category := m.loader, m.ctx(), m.category
	return loadCmd(m.scope, entity.ResourceCategory, func() error {
		_, err := loader.LoadCategoryPage(ctx, category)
		return err
	})
}

// loadHistory charts the top coins by market cap, whatever the table sort.
func (m *CategoryModel) loadHistory() tea.Cmd {
	ids := m.chartIDs()
	if len(ids) == 0 {
		return nil
	}
	m.historySec.start()
	loader, ctx, tf := m.loader, m.ctx(), m.timeframe
	return loadCmd(m.scope, entity.ResourcePriceHistory, func() error {
		_, err := loader.LoadPriceHistory(ctx, ids, tf)
		return err
	})
}

func (m CategoryModel) chartIDs() []string {
	n := m.cfg.Dashboard.ChartCoins
	top := entity.SortCoins(m.coins, entity.SortByMarketCap)
	ids := make([]string, 0, n)
	for _, c := range top {
		if len(ids) == n {
			break
		}
		ids = append(ids, c.ID)
	}
	return ids
}

// Update implements tea.Model.
func (m CategoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.child != nil {
		return m.updateChild(msg)
	}
	return m.updateSelf(msg)
}

func (m CategoryModel) updateSelf(msg tea.Msg) (CategoryModel, tea.Cmd) {
	cmd := m.chrome.update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg, ConfigChangedMsg, themeToggledMsg:
		m.rebuildTable()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			if m.embedded {
				return m, func() tea.Msg { return backMsg{} }
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			load := m.loadCoins()
			return m, load
		case key.Matches(msg, m.keys.Sort):
			m.sortKey = nextSortKey(m.sortKey)
			m.resort()
		case key.Matches(msg, m.keys.Timeframe):
			m.timeframe = nextTimeframe(m.timeframe)
			m.history = nil
			load := m.loadHistory()
			return m, load
		case key.Matches(msg, m.keys.Theme):
			if !m.embedded {
				return m, toggleThemeCmd(m.deps)
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Open):
			if c, ok := m.selectedCoin(); ok {
				child := newEmbeddedCoinModel(m.deps, m.chrome, c.ID)
				m.child = &child
				return m, child.Init()
			}
		default:
			var tcmd tea.Cmd
			m.table, tcmd = m.table.Update(msg)
			return m, tcmd
		}

	case categoryLoadedMsg:
		if msg.scope == m.scope && msg.category.Slug == m.category.Slug {
			m.coins = msg.coins
			m.coinsSec.done(msg.freshness)
			m.resort()
		}

	case priceHistoryLoadedMsg:
		if msg.scope == m.scope && msg.timeframe == m.timeframe {
			m.history = msg.series
			m.historySec.done(msg.freshness)
		}

	case loadFailedMsg:
		if msg.scope == m.scope {
			switch msg.kind {
			case entity.ResourceCategory:
				m.coinsSec.fail(msg.err)
			case entity.ResourcePriceHistory:
				m.historySec.fail(msg.err)
			}
		}

	case loadDoneMsg:
		if msg.scope == m.scope {
			switch msg.kind {
			case entity.ResourceCategory:
				m.coinsSec.finish()
				load := m.loadHistory()
				return m, tea.Batch(cmd, load)
			case entity.ResourcePriceHistory:
				m.historySec.finish()
			}
		}
	}

	return m, cmd
}

// updateChild gives keys and spinner ticks to the open coin view only; every
// other message also reaches the category so it stays current underneath.
func (m CategoryModel) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	var own tea.Cmd
	switch msg.(type) {
	case backMsg:
		m.child = nil
		return m, m.spinner.Tick
	case tea.KeyMsg, spinner.TickMsg:
	default:
		m, own = m.updateSelf(msg)
	}
	updated, cmd := m.child.Update(msg)
	child := updated.(CoinModel)
	m.child = &child
	return m, tea.Batch(own, cmd)
}

func nextSortKey(k entity.SortKey) entity.SortKey {
	for i, s := range sortCycle {
		if s == k {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}

func (m *CategoryModel) resort() {
	m.sorted = entity.SortCoins(m.coins, m.sortKey)
	m.table.SetRows(styles.CoinRows(m.sorted, true))
}

func (m *CategoryModel) rebuildTable() {
	cursor := m.table.Cursor()
	m.table = styles.NewStyledTable(m.theme, styles.MarketTableColumns(true), styles.CoinRows(m.sorted, true), m.width-4, m.tableHeight())
	m.table.SetCursor(cursor)
}

func (m CategoryModel) tableHeight() int {
	return max(m.height-18, 5)
}

func (m CategoryModel) selectedCoin() (entity.Coin, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sorted) {
		return entity.Coin{}, false
	}
	return m.sorted[i], true
}

// View implements tea.Model.
func (m CategoryModel) View() string {
	if m.child != nil {
		return m.child.View()
	}
	width := max(m.width-2, 40)

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(m.category.Name),
		m.theme.Subtle.Render(m.category.Description),
	)

	var body string
	switch {
	case m.coinsSec.err != nil && len(m.coins) == 0:
		body = m.panels.Failure(m.coinsSec.err)
	case !m.coinsSec.loaded:
		body = styles.Loading(m.spinner, m.theme, "Loading coins...")
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.panels.CategoryStats(entity.ComputeCategoryStats(m.coins)),
			"",
			m.theme.Subtle.Render(fmt.Sprintf("sorted by %s", m.sortKey)),
			m.table.View(),
		)
	}

	labels := make(map[string]string, len(m.coins))
	for _, c := range m.coins {
		labels[c.ID] = c.Name
	}
	var chart string
	if m.historySec.err != nil && len(m.history) == 0 {
		chart = m.panels.Failure(m.historySec.err)
	} else {
		chart = styles.NewChartRenderer(m.theme, max(width-50, 20)).Render(m.history, m.timeframe, labels)
	}

	parts := []string{
		header,
		m.panels.Panel(styles.IconCoin+" Coins", m.coinsSec.freshnessPtr(), body, false, width),
		m.panels.Panel(styles.IconChart+" Top coins", m.historySec.freshnessPtr(), chart, false, width),
	}
	if status := m.status(m.coinsSec.loading || m.historySec.loading); status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
