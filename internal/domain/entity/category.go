package entity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCategory is returned when a slug names no known category.
var ErrUnknownCategory = errors.New("unknown category")

// Category is a curated market segment shown on the dashboard.
type Category struct {
	Slug string
	// APIID is CoinGecko's category id; empty means the whole market.
	APIID       string
	Name        string
	Description string
}

// IsWholeMarket reports whether the category lists all coins by market cap.
func (c Category) IsWholeMarket() bool {
	return c.APIID == ""
}

var categories = []Category{
	{
		Slug:        "top",
		Name:        "Top Coins by Market Cap",
		Description: "The leading cryptocurrencies ranked by market capitalization",
	},
	{
		Slug:        "ai",
		APIID:       "artificial-intelligence",
		Name:        "A.I. Coins",
		Description: "Cryptocurrencies focused on artificial intelligence and machine learning technologies",
	},
	{
		Slug:        "meme",
		APIID:       "meme-token",
		Name:        "Meme Coins",
		Description: "Cryptocurrencies inspired by internet memes and social media trends",
	},
	{
		Slug:        "rwa",
		APIID:       "real-world-assets-rwa",
		Name:        "RWA and DPIN",
		Description: "Tokens representing real-world assets and decentralized physical infrastructure",
	},
	{
		Slug:        "gaming",
		APIID:       "gaming",
		Name:        "Crypto Gaming",
		Description: "Gaming and metaverse related cryptocurrency tokens",
	},
	{
		Slug:        "stablecoins",
		APIID:       "stablecoins",
		Name:        "Stablecoins",
		Description: "Cryptocurrencies designed to minimize price volatility",
	},
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory finds a category by slug (case-insensitive).
func LookupCategory(slug string) (Category, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, c := range categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, slug)
}

// CategorySlugs lists the known slugs, for help text and shell completion.
func CategorySlugs() []string {
	slugs := make([]string, 0, len(categories))
	for _, c := range categories {
		slugs = append(slugs, c.Slug)
	}
	return slugs
}

// CategoryStats summarizes a category's coins.
type CategoryStats struct {
	TotalMarketCap float64
	TotalVolume    float64
	// AverageChange24h averages only coins that report a 24h change; nil if none do.
	AverageChange24h *float64
	TopPerformer     *Coin
}

// ComputeCategoryStats sums caps and volumes (nil counts as 0), averages the
// non-null 24h changes and picks the coin with the best 24h move.
func ComputeCategoryStats(coins []Coin) CategoryStats {
	var stats CategoryStats
	var changeSum float64
	var changeCount int

	for i := range coins {
		c := &coins[i]
		stats.TotalMarketCap += valueOrZero(c.MarketCap)
		stats.TotalVolume += valueOrZero(c.TotalVolume)
		if c.PriceChangePercentage24h != nil {
			changeSum += *c.PriceChangePercentage24h
			changeCount++
		}
		if stats.TopPerformer == nil ||
			valueOrZero(c.PriceChangePercentage24h) > valueOrZero(stats.TopPerformer.PriceChangePercentage24h) {
			top := *c
			stats.TopPerformer = &top
		}
	}

	if changeCount > 0 {
		avg := changeSum / float64(changeCount)
		stats.AverageChange24h = &avg
	}
	return stats
}

// SortKey selects the column a coin list is ordered by.
type SortKey string

const (
	SortByMarketCap   SortKey = "market_cap"
	SortByVolume      SortKey = "volume"
	SortByPriceChange SortKey = "price_change"
)

// ParseSortKey accepts the CLI spelling of a sort key; unknown values sort by market cap.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByVolume:
		return SortByVolume
	case SortByPriceChange:
		return SortByPriceChange
	default:
		return SortByMarketCap
	}
}

// SortCoins returns a copy of coins ordered descending by key. Missing values sort as 0.
func SortCoins(coins []Coin, key SortKey) []Coin {
	out := make([]Coin, len(coins))
	copy(out, coins)

	value := func(c Coin) float64 {
		switch key {
		case SortByVolume:
			return valueOrZero(c.TotalVolume)
		case SortByPriceChange:
			return valueOrZero(c.PriceChangePercentage24h)
		default:
			return valueOrZero(c.MarketCap)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return value(out[i]) > value(out[j])
	})
	return out
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
