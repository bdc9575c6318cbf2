package entity

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"
	"time"
)

// CurrencyAmounts maps a quote currency ("usd", "eur") to a value.
type CurrencyAmounts map[string]float64

// In returns the amount for currency, or nil when the API did not report one.
func (c CurrencyAmounts) In(currency string) *float64 {
	v, ok := c[strings.ToLower(currency)]
	if !ok {
		return nil
	}
	return &v
}

// GlobalStats is the payload of /global, unwrapped from its "data" envelope.
type GlobalStats struct {
	ActiveCryptocurrencies int             `json:"active_cryptocurrencies"`
	TotalMarketCap         CurrencyAmounts `json:"total_market_cap"`
	TotalVolume            CurrencyAmounts `json:"total_volume"`
	MarketCapPercentage    CurrencyAmounts `json:"market_cap_percentage"`
	MarketCapChange24hUSD  float64         `json:"market_cap_change_percentage_24h_usd"`
	UpdatedAt              int64           `json:"updated_at"`
}

// BTCDominance returns bitcoin's share of the total market cap, in percent.
func (g GlobalStats) BTCDominance() *float64 {
	return g.MarketCapPercentage.In("btc")
}

// DecodeGlobalStats parses the /global response body.
func DecodeGlobalStats(body []byte) (*GlobalStats, error) {
	var envelope struct {
		Data *GlobalStats `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode global stats: %w", err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("decode global stats: missing data field")
	}
	return envelope.Data, nil
}

// Coin is one row of /coins/markets. Nullable numbers are pointers.
type Coin struct {
	ID                          string   `json:"id"`
	Symbol                      string   `json:"symbol"`
	Name                        string   `json:"name"`
	Image                       string   `json:"image"`
	CurrentPrice                *float64 `json:"current_price"`
	MarketCap                   *float64 `json:"market_cap"`
	MarketCapRank               *int     `json:"market_cap_rank"`
	TotalVolume                 *float64 `json:"total_volume"`
	High24h                     *float64 `json:"high_24h"`
	Low24h                      *float64 `json:"low_24h"`
	PriceChangePercentage24h    *float64 `json:"price_change_percentage_24h"`
	PriceChangePercentage7dInCc *float64 `json:"price_change_percentage_7d_in_currency"`
}

// Ticker is the upper-case symbol shown in tables.
func (c Coin) Ticker() string {
	return strings.ToUpper(c.Symbol)
}

// DecodeCoins parses a /coins/markets response body.
func DecodeCoins(body []byte) ([]Coin, error) {
	var coins []Coin
	if err := json.Unmarshal(body, &coins); err != nil {
		return nil, fmt.Errorf("decode coins: %w", err)
	}
	return coins, nil
}

// TrendingCoin is one entry of /search/trending.
type TrendingCoin struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	MarketCapRank *int    `json:"market_cap_rank"`
	Thumb         string  `json:"thumb"`
	Small         string  `json:"small"`
	PriceBTC      float64 `json:"price_btc"`
	Score         int     `json:"score"`
}

// DecodeTrending parses the /search/trending response body.
func DecodeTrending(body []byte) ([]TrendingCoin, error) {
	var payload struct {
		Coins []struct {
			Item TrendingCoin `json:"item"`
		} `json:"coins"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode trending: %w", err)
	}
	coins := make([]TrendingCoin, 0, len(payload.Coins))
	for _, c := range payload.Coins {
		coins = append(coins, c.Item)
	}
	return coins, nil
}

// CoinLinks are the project links shown on the detail view.
type CoinLinks struct {
	Homepage         []string `json:"homepage"`
	BlockchainSite   []string `json:"blockchain_site"`
	OfficialForumURL []string `json:"official_forum_url"`
	SubredditURL     string   `json:"subreddit_url"`
	Whitepaper       string   `json:"whitepaper"`
	ReposURL         struct {
		GitHub []string `json:"github"`
	} `json:"repos_url"`
}

// CoinMarketData is the market_data block of /coins/{id}.
type CoinMarketData struct {
	CurrentPrice              CurrencyAmounts `json:"current_price"`
	MarketCap                 CurrencyAmounts `json:"market_cap"`
	TotalVolume               CurrencyAmounts `json:"total_volume"`
	High24h                   CurrencyAmounts `json:"high_24h"`
	Low24h                    CurrencyAmounts `json:"low_24h"`
	CirculatingSupply         *float64        `json:"circulating_supply"`
	TotalSupply               *float64        `json:"total_supply"`
	MaxSupply                 *float64        `json:"max_supply"`
	PriceChangePercentage24h  *float64        `json:"price_change_percentage_24h"`
	PriceChangePercentage7d   *float64        `json:"price_change_percentage_7d"`
	PriceChangePercentage14d  *float64        `json:"price_change_percentage_14d"`
	PriceChangePercentage30d  *float64        `json:"price_change_percentage_30d"`
	PriceChangePercentage60d  *float64        `json:"price_change_percentage_60d"`
	PriceChangePercentage1y   *float64        `json:"price_change_percentage_1y"`
	MarketCapChangePercent24h *float64        `json:"market_cap_change_percentage_24h"`
}

// CommunityData is the community_data block of /coins/{id}.
type CommunityData struct {
	TwitterFollowers         *int `json:"twitter_followers"`
	RedditSubscribers        *int `json:"reddit_subscribers"`
	TelegramChannelUserCount *int `json:"telegram_channel_user_count"`
}

// CoinTicker is one exchange market for a coin.
type CoinTicker struct {
	Base   string `json:"base"`
	Target string `json:"target"`
	Market struct {
		Name string `json:"name"`
	} `json:"market"`
	Last       float64 `json:"last"`
	Volume     float64 `json:"volume"`
	TrustScore *string `json:"trust_score"`
}

// Pair renders the ticker as BASE/TARGET.
func (t CoinTicker) Pair() string {
	return t.Base + "/" + t.Target
}

// CoinDetail is the /coins/{id} payload.
type CoinDetail struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	MarketCapRank *int   `json:"market_cap_rank"`
	Description   struct {
		EN string `json:"en"`
	} `json:"description"`
	Image struct {
		Small string `json:"small"`
		Large string `json:"large"`
	} `json:"image"`
	Links         CoinLinks      `json:"links"`
	MarketData    CoinMarketData `json:"market_data"`
	CommunityData CommunityData  `json:"community_data"`
	Tickers       []CoinTicker   `json:"tickers"`
}

// DecodeCoinDetail parses a /coins/{id} response body.
func DecodeCoinDetail(body []byte) (*CoinDetail, error) {
	var detail CoinDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("decode coin detail: %w", err)
	}
	if detail.ID == "" {
		return nil, fmt.Errorf("decode coin detail: missing id")
	}
	return &detail, nil
}

// TopTickers returns the n highest-volume exchange markets.
func (d *CoinDetail) TopTickers(n int) []CoinTicker {
	out := make([]CoinTicker, len(d.Tickers))
	copy(out, d.Tickers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Volume > out[j].Volume
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// PlainDescription returns the English description without HTML markup.
func (d *CoinDetail) PlainDescription() string {
	text := htmlTag.ReplaceAllString(d.Description.EN, "")
	return strings.TrimSpace(html.UnescapeString(text))
}

// PricePoint is a single sample of a price series.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// UnmarshalJSON decodes the API's [unix_ms, price] pair.
func (p *PricePoint) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("price point: want [ms, price], got %d values", len(pair))
	}
	p.Time = time.UnixMilli(int64(pair[0]))
	p.Price = pair[1]
	return nil
}

// MarshalJSON writes the point back in the API's pair form.
func (p PricePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{float64(p.Time.UnixMilli()), p.Price})
}

// PriceHistory is one coin's series from /coins/{id}/market_chart.
type PriceHistory struct {
	CoinID string       `json:"coin_id"`
	Prices []PricePoint `json:"prices"`
}

// DecodePriceHistory parses a market_chart response body for coinID.
func DecodePriceHistory(coinID string, body []byte) (*PriceHistory, error) {
	var payload struct {
		Prices []PricePoint `json:"prices"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode price history for %s: %w", coinID, err)
	}
	return &PriceHistory{CoinID: coinID, Prices: payload.Prices}, nil
}

// Change returns the percentage move from the first to the last sample.
func (h PriceHistory) Change() *float64 {
	if len(h.Prices) < 2 || h.Prices[0].Price == 0 {
		return nil
	}
	first, last := h.Prices[0].Price, h.Prices[len(h.Prices)-1].Price
	change := (last - first) / first * 100
	return &change
}
