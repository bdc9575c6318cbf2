// Package render provides non-interactive market renderers for CLI output.
package render

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/bnema/onramp/internal/application/port"
	"github.com/bnema/onramp/internal/domain/entity"
)

// Failure is a resource that could not be loaded.
type Failure struct {
	Kind  entity.ResourceKind `json:"kind"`
	ID    string              `json:"id,omitempty"`
	Error string              `json:"error"`
}

// Snapshot is the last value rendered for each resource.
type Snapshot struct {
	Global        *entity.GlobalStats         `json:"global,omitempty"`
	Categories    map[string][]entity.Coin    `json:"categories,omitempty"`
	Trending      []entity.TrendingCoin       `json:"trending,omitempty"`
	RecentlyAdded []entity.Coin               `json:"recently_added,omitempty"`
	Coin          *entity.CoinDetail          `json:"coin,omitempty"`
	PriceHistory  []entity.PriceHistory       `json:"price_history,omitempty"`
	Timeframe     entity.Timeframe            `json:"timeframe,omitempty"`
	Freshness     map[string]entity.Freshness `json:"freshness,omitempty"`
	Failures      []Failure                   `json:"failures,omitempty"`
}

// JSONRenderer collects rendered resources and writes them as one document.
// Later renders of a resource replace earlier ones, so the refreshed value
// wins over the cached one.
type JSONRenderer struct {
	mu   sync.Mutex
	snap Snapshot
}

var _ port.MarketRenderer = (*JSONRenderer)(nil)

// NewJSONRenderer creates an empty renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{snap: Snapshot{
		Categories: make(map[string][]entity.Coin),
		Freshness:  make(map[string]entity.Freshness),
	}}
}

func (r *JSONRenderer) RenderGlobal(stats *entity.GlobalStats, f entity.Freshness) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Global = stats
	r.snap.Freshness[string(entity.ResourceGlobal)] = f
}

func (r *JSONRenderer) RenderCategory(category entity.Category, coins []entity.Coin, f entity.Freshness) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Categories[category.Slug] = coins
	r.snap.Freshness[string(entity.ResourceCategory)+":"+category.Slug] = f
}

func (r *JSONRenderer) RenderTrending(coins []entity.TrendingCoin, f entity.Freshness) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Trending = coins
	r.snap.Freshness[string(entity.ResourceTrending)] = f
}

func (r *JSONRenderer) RenderRecentlyAdded(coins []entity.Coin, f entity.Freshness) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.RecentlyAdded = coins
	r.snap.Freshness[string(entity.ResourceRecentlyAdded)] = f
}

func (r *JSONRenderer) RenderCoinDetail(detail *entity.CoinDetail, f entity.Freshness) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Coin = detail
	r.snap.Freshness[string(entity.ResourceCoinDetail)] = f
}

func (r *JSONRenderer) RenderPriceHistory(series []entity.PriceHistory, tf entity.Timeframe, f entity.Freshness) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.PriceHistory = series
	r.snap.Timeframe = tf
	r.snap.Freshness[string(entity.ResourcePriceHistory)] = f
}

func (r *JSONRenderer) RenderFailure(kind entity.ResourceKind, id string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Failures = append(r.snap.Failures, Failure{Kind: kind, ID: id, Error: err.Error()})
}

// Snapshot returns a copy of what has been rendered so far.
func (r *JSONRenderer) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.snap
	s.Categories = make(map[string][]entity.Coin, len(r.snap.Categories))
	for k, v := range r.snap.Categories {
		s.Categories[k] = v
	}
	s.Freshness = make(map[string]entity.Freshness, len(r.snap.Freshness))
	for k, v := range r.snap.Freshness {
		s.Freshness[k] = v
	}
	s.Failures = append([]Failure(nil), r.snap.Failures...)
	return s
}

// Write encodes the snapshot as indented JSON.
func (r *JSONRenderer) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Snapshot())
}
