package entity

import (
	"fmt"
	"time"
)

// ResourceKind names a dashboard section that loads and fails independently.
type ResourceKind string

const (
	ResourceGlobal        ResourceKind = "global"
	ResourceCategory      ResourceKind = "category"
	ResourceTrending      ResourceKind = "trending"
	ResourceRecentlyAdded ResourceKind = "recently_added"
	ResourceCoinDetail    ResourceKind = "coin_detail"
	ResourcePriceHistory  ResourceKind = "price_history"
)

// DataSource tells where a rendered value came from.
type DataSource string

const (
	SourceNetwork    DataSource = "network"
	SourceCache      DataSource = "cache"
	SourceStaleCache DataSource = "stale-cache"
)

// Freshness accompanies every rendered value.
type Freshness struct {
	Source   DataSource `json:"source"`
	StoredAt time.Time  `json:"stored_at,omitzero"`
}

// Stale reports whether the value came from an expired cache entry.
func (f Freshness) Stale() bool {
	return f.Source == SourceStaleCache
}

// Timeframe is a price-chart range.
type Timeframe string

const (
	Timeframe1D  Timeframe = "1d"
	Timeframe7D  Timeframe = "7d"
	Timeframe30D Timeframe = "30d"
	Timeframe90D Timeframe = "90d"
)

// Timeframes lists the supported chart ranges in display order.
func Timeframes() []Timeframe {
	return []Timeframe{Timeframe1D, Timeframe7D, Timeframe30D, Timeframe90D}
}

// Days maps the timeframe onto market_chart's days parameter.
func (t Timeframe) Days() int {
	switch t {
	case Timeframe1D:
		return 1
	case Timeframe30D:
		return 30
	case Timeframe90D:
		return 90
	default:
		return 7
	}
}

// ParseTimeframe validates a timeframe name.
func ParseTimeframe(s string) (Timeframe, error) {
	for _, tf := range Timeframes() {
		if string(tf) == s {
			return tf, nil
		}
	}
	return "", fmt.Errorf("unknown timeframe %q (want 1d, 7d, 30d or 90d)", s)
}
