package entity

import "time"

// RecentCoin is a coin opened in the detail view during this session.
type RecentCoin struct {
	ID        string
	Symbol    string
	Name      string
	Price     *float64
	Change24h *float64
	ViewedAt  time.Time
}

// RecentFromDetail summarizes a coin detail quoted in currency.
func RecentFromDetail(d *CoinDetail, currency string, at time.Time) RecentCoin {
	return RecentCoin{
		ID:        d.ID,
		Symbol:    d.Symbol,
		Name:      d.Name,
		Price:     d.MarketData.CurrentPrice.In(currency),
		Change24h: d.MarketData.PriceChangePercentage24h,
		ViewedAt:  at,
	}
}
