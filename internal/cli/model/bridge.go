package model

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/onramp/internal/application/port"
	"github.com/bnema/onramp/internal/domain/entity"
)

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge forwards renderer callbacks into the Bubble Tea event loop. Loads run
// in command goroutines; the program is attached before it starts running, so
// nothing is sent before Attach in practice. Messages sent while detached are
// dropped.
type Bridge struct {
	mu     sync.RWMutex
	sender Sender
}

// NewBridge creates a detached bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach sets the program that receives messages.
func (b *Bridge) Attach(s Sender) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sender = s
}

// Send forwards msg to the attached program.
func (b *Bridge) Send(msg tea.Msg) {
	b.mu.RLock()
	s := b.sender
	b.mu.RUnlock()
	if s != nil {
		s.Send(msg)
	}
}

// Renderer returns a renderer whose messages are tagged with scope, so each
// view only consumes the loads it started.
func (b *Bridge) Renderer(scope string) *TeaRenderer {
	return &TeaRenderer{sender: b, scope: scope}
}

// TeaRenderer implements port.MarketRenderer by sending messages.
type TeaRenderer struct {
	sender Sender
	scope  string
}

var _ port.MarketRenderer = (*TeaRenderer)(nil)

func (r *TeaRenderer) RenderGlobal(stats *entity.GlobalStats, freshness entity.Freshness) {
	r.sender.Send(globalLoadedMsg{scope: r.scope, stats: stats, freshness: freshness})
}

func (r *TeaRenderer) RenderCategory(category entity.Category, coins []entity.Coin, freshness entity.Freshness) {
	r.sender.Send(categoryLoadedMsg{scope: r.scope, category: category, coins: coins, freshness: freshness})
}

func (r *TeaRenderer) RenderTrending(coins []entity.TrendingCoin, freshness entity.Freshness) {
	r.sender.Send(trendingLoadedMsg{scope: r.scope, coins: coins, freshness: freshness})
}

func (r *TeaRenderer) RenderRecentlyAdded(coins []entity.Coin, freshness entity.Freshness) {
	r.sender.Send(recentlyAddedLoadedMsg{scope: r.scope, coins: coins, freshness: freshness})
}

func (r *TeaRenderer) RenderCoinDetail(detail *entity.CoinDetail, freshness entity.Freshness) {
	r.sender.Send(coinDetailLoadedMsg{scope: r.scope, detail: detail, freshness: freshness})
}

func (r *TeaRenderer) RenderPriceHistory(series []entity.PriceHistory, timeframe entity.Timeframe, freshness entity.Freshness) {
	r.sender.Send(priceHistoryLoadedMsg{scope: r.scope, series: series, timeframe: timeframe, freshness: freshness})
}

func (r *TeaRenderer) RenderFailure(kind entity.ResourceKind, id string, err error) {
	r.sender.Send(loadFailedMsg{scope: r.scope, kind: kind, id: id, err: err})
}
