package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/onramp/internal/cli/styles"
	"github.com/bnema/onramp/internal/domain/entity"
)

// CoinModel shows one coin: detail, price chart and recently viewed coins.
type CoinModel struct {
	chrome
	deps   Deps
	loader MarketLoader
	scope  string
	// embedded views send backMsg on esc instead of quitting
	embedded bool

	id         string
	detail     *entity.CoinDetail
	detailSec  section
	timeframe  entity.Timeframe
	history    []entity.PriceHistory
	historySec section
	recent     []entity.RecentCoin
}

// NewCoinModel creates a standalone coin view.
func NewCoinModel(deps Deps, id string, timeframe entity.Timeframe) CoinModel {
	scope := "coin:" + id
	m := CoinModel{
		chrome:    newChrome(deps.Config, deps.Theme),
		deps:      deps,
		loader:    deps.loader(scope),
		scope:     scope,
		id:        id,
		timeframe: timeframe,
	}
	if m.timeframe == "" {
		m.timeframe = m.chrome.timeframe()
	}
	m.detailSec.start()
	m.historySec.start()
	return m
}

func newEmbeddedCoinModel(deps Deps, c chrome, id string) CoinModel {
	m := NewCoinModel(deps, id, "")
	m.chrome = c
	m.embedded = true
	return m
}

// Init implements tea.Model.
func (m CoinModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadDetail(), m.loadHistory())
}

func (m *CoinModel) loadDetail() tea.Cmd {
	m.detailSec.start()
	loader, ctx, id := m.loader, m.ctx(), m.id
	return loadCmd(m.scope, entity.ResourceCoinDetail, func() error {
		_, err := loader.LoadCoinDetail(ctx, id)
		return err
	})
}

func (m *CoinModel) loadHistory() tea.Cmd {
	m.historySec.start()
	loader, ctx, id, tf := m.loader, m.ctx(), m.id, m.timeframe
	return loadCmd(m.scope, entity.ResourcePriceHistory, func() error {
		_, err := loader.LoadPriceHistory(ctx, []string{id}, tf)
		return err
	})
}

func (m CoinModel) ctx() context.Context {
	if m.deps.Ctx == nil {
		return context.Background()
	}
	return m.deps.Ctx
}

// Update implements tea.Model.
func (m CoinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.chrome.update(msg)

	switch msg := msg.(type) {
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
			load := tea.Batch(m.loadDetail(), m.loadHistory())
			return m, load
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
		}

	case coinDetailLoadedMsg:
		if msg.scope == m.scope {
			m.detail = msg.detail
			m.detailSec.done(msg.freshness)
		}

	case priceHistoryLoadedMsg:
		if msg.scope == m.scope && msg.timeframe == m.timeframe {
			m.history = msg.series
			m.historySec.done(msg.freshness)
		}

	case loadFailedMsg:
		if msg.scope == m.scope {
			switch msg.kind {
			case entity.ResourceCoinDetail:
				m.detailSec.fail(msg.err)
			case entity.ResourcePriceHistory:
				m.historySec.fail(msg.err)
			}
		}

	case loadDoneMsg:
		if msg.scope == m.scope {
			switch msg.kind {
			case entity.ResourceCoinDetail:
				m.detailSec.finish()
				m.recent = m.loader.RecentlyViewed()
			case entity.ResourcePriceHistory:
				m.historySec.finish()
			}
		}
	}

	return m, cmd
}

// View implements tea.Model.
func (m CoinModel) View() string {
	width := max(m.width-2, 40)

	var detail string
	switch {
	case m.detailSec.err != nil && m.detail == nil:
		detail = m.panels.Failure(m.detailSec.err)
	case m.detail == nil:
		detail = styles.Loading(m.spinner, m.theme, fmt.Sprintf("Loading %s...", m.id))
	default:
		detail = m.panels.CoinDetail(m.detail, width)
	}

	var chart string
	switch {
	case m.historySec.err != nil && len(m.history) == 0:
		chart = m.panels.Failure(m.historySec.err)
	default:
		labels := map[string]string{}
		if m.detail != nil {
			labels[m.id] = m.detail.Name
		}
		chart = styles.NewChartRenderer(m.theme, max(width-40, 20)).Render(m.history, m.timeframe, labels)
	}

	parts := []string{
		m.panels.Panel(styles.IconCoin+" "+m.title(), m.detailSec.freshnessPtr(), detail, false, width),
		m.panels.Panel(fmt.Sprintf("%s Chart (%s)", styles.IconChart, m.timeframe), m.historySec.freshnessPtr(), chart, false, width),
	}
	if len(m.recent) > 0 {
		parts = append(parts, m.panels.Panel(styles.IconHistory+" Recently viewed", nil, m.panels.RecentList(m.recent), false, width))
	}
	if status := m.status(m.detailSec.loading || m.historySec.loading); status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m CoinModel) title() string {
	if m.detail != nil {
		return m.detail.Name + " " + strings.ToUpper(m.detail.Symbol)
	}
	return m.id
}
