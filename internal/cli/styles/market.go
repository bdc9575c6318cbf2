package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/onramp/internal/domain/entity"
)

// PanelRenderer draws the market sections shared by the TUI views.
type PanelRenderer struct {
	theme    *Theme
	currency string
	now      func() time.Time
}

// NewPanelRenderer creates a panel renderer quoting prices in currency.
func NewPanelRenderer(theme *Theme, currency string) *PanelRenderer {
	if currency == "" {
		currency = "usd"
	}
	return &PanelRenderer{theme: theme, currency: currency, now: time.Now}
}

// Panel boxes body under a title line carrying the freshness badge.
func (r *PanelRenderer) Panel(title string, freshness *entity.Freshness, body string, focused bool, width int) string {
	header := r.theme.Title.Render(title)
	if freshness != nil {
		header += " " + r.theme.FreshnessBadge(*freshness, r.now())
	}
	box := r.theme.Box
	if focused {
		box = r.theme.BoxFocused
	}
	if width > 0 {
		box = box.Width(width)
	}
	return box.Render(header + "\n" + body)
}

// Failure renders a section that could not be loaded.
func (r *PanelRenderer) Failure(err error) string {
	return r.theme.ErrorStyle.Render(fmt.Sprintf("%s Failed to load: %v", IconWarning, err))
}

// Global renders the market-wide totals.
func (r *PanelRenderer) Global(g *entity.GlobalStats) string {
	if g == nil {
		return r.theme.Subtle.Render("No market data")
	}
	active := g.ActiveCryptocurrencies
	change := g.MarketCapChange24hUSD
	items := []struct{ label, value string }{
		{"Market Cap", FormatNumber(g.TotalMarketCap.In(r.currency)) + " " + r.theme.Change(&change)},
		{"24h Volume", FormatNumber(g.TotalVolume.In(r.currency))},
		{"BTC Dominance", formatDominance(g.BTCDominance())},
		{"Active Coins", FormatInt(&active)},
	}

	cells := make([]string, 0, len(items))
	for _, it := range items {
		cells = append(cells, lipgloss.JoinVertical(lipgloss.Left,
			r.theme.Subtle.Render(it.label),
			r.theme.Highlight.Render(it.value),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cells, "    ")...)
}

func formatDominance(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.1f%%", *v)
}

func joinWithGap(cells []string, gap string) []string {
	out := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, c)
	}
	return out
}

// CoinList renders compact coin lines; selected < 0 highlights nothing.
func (r *PanelRenderer) CoinList(coins []entity.Coin, selected int) string {
	if len(coins) == 0 {
		return r.theme.Subtle.Render("No coins")
	}
	lines := make([]string, 0, len(coins))
	for i, c := range coins {
		name := ansi.Truncate(c.Name, 16, "…")
		line := fmt.Sprintf("%-16s %-6s %12s %s",
			name, c.Ticker(), FormatPrice(c.CurrentPrice), r.theme.Change(c.PriceChangePercentage24h))
		lines = append(lines, r.cursorLine(line, i == selected))
	}
	return strings.Join(lines, "\n")
}

// TrendingList renders the trending search list.
func (r *PanelRenderer) TrendingList(coins []entity.TrendingCoin, selected int) string {
	if len(coins) == 0 {
		return r.theme.Subtle.Render("Nothing trending")
	}
	lines := make([]string, 0, len(coins))
	for i, c := range coins {
		rank := "#" + FormatInt(c.MarketCapRank)
		line := fmt.Sprintf("%2d. %-18s %-6s %s",
			i+1, ansi.Truncate(c.Name, 18, "…"), strings.ToUpper(c.Symbol), r.theme.Subtle.Render(rank))
		lines = append(lines, r.cursorLine(line, i == selected))
	}
	return strings.Join(lines, "\n")
}

// RecentList renders the recently viewed coins.
func (r *PanelRenderer) RecentList(coins []entity.RecentCoin) string {
	if len(coins) == 0 {
		return r.theme.Subtle.Render("No coins viewed yet")
	}
	now := r.now()
	lines := make([]string, 0, len(coins))
	for _, c := range coins {
		lines = append(lines, fmt.Sprintf("%-16s %-6s %12s %s %s",
			ansi.Truncate(c.Name, 16, "…"), strings.ToUpper(c.Symbol), FormatPrice(c.Price),
			r.theme.Change(c.Change24h), r.theme.Subtle.Render(RelativeTimeFrom(c.ViewedAt, now))))
	}
	return strings.Join(lines, "\n")
}

// CategoryStats renders the summary line above a category table.
func (r *PanelRenderer) CategoryStats(s entity.CategoryStats) string {
	top := notAvailable
	if s.TopPerformer != nil {
		top = s.TopPerformer.Name + " " + r.theme.Change(s.TopPerformer.PriceChangePercentage24h)
	}
	return fmt.Sprintf("%s %s   %s %s   %s %s   %s %s %s",
		r.theme.Subtle.Render("Market Cap"), r.theme.Highlight.Render(FormatNumber(&s.TotalMarketCap)),
		r.theme.Subtle.Render("Volume"), r.theme.Highlight.Render(FormatNumber(&s.TotalVolume)),
		r.theme.Subtle.Render("Avg 24h"), r.theme.Change(s.AverageChange24h),
		r.theme.Subtle.Render("Top"), IconTrophy, top,
	)
}

// CoinDetail renders a coin's price, market data, links and top markets.
func (r *PanelRenderer) CoinDetail(d *entity.CoinDetail, width int) string {
	if d == nil {
		return r.theme.Subtle.Render("No coin data")
	}
	md := d.MarketData
	ticker := strings.ToUpper(d.Symbol)

	rank := "Rank #" + FormatInt(d.MarketCapRank)
	header := fmt.Sprintf("%s %s %s  %s",
		IconCoin, r.theme.Title.Render(d.Name), r.theme.Subtle.Render(ticker), r.theme.MutedBadge(rank))
	price := fmt.Sprintf("%s %s",
		r.theme.Highlight.Render(FormatPrice(md.CurrentPrice.In(r.currency))), r.theme.Change(md.PriceChangePercentage24h))

	market := r.keyValues([][2]string{
		{"Market Cap", FormatPrice(md.MarketCap.In(r.currency))},
		{"24h Volume", FormatPrice(md.TotalVolume.In(r.currency))},
		{"24h High", FormatPrice(md.High24h.In(r.currency))},
		{"24h Low", FormatPrice(md.Low24h.In(r.currency))},
		{"Circulating", withSymbol(md.CirculatingSupply, ticker)},
		{"Total Supply", withSymbol(md.TotalSupply, ticker)},
		{"Max Supply", withSymbol(md.MaxSupply, ticker)},
	})

	changes := r.keyValues([][2]string{
		{"24h", r.theme.Change(md.PriceChangePercentage24h)},
		{"7d", r.theme.Change(md.PriceChangePercentage7d)},
		{"14d", r.theme.Change(md.PriceChangePercentage14d)},
		{"30d", r.theme.Change(md.PriceChangePercentage30d)},
		{"60d", r.theme.Change(md.PriceChangePercentage60d)},
		{"1y", r.theme.Change(md.PriceChangePercentage1y)},
	})

	community := r.keyValues([][2]string{
		{"Twitter", FormatInt(d.CommunityData.TwitterFollowers)},
		{"Reddit", FormatInt(d.CommunityData.RedditSubscribers)},
		{"Telegram", FormatInt(d.CommunityData.TelegramChannelUserCount)},
	})

	parts := []string{
		header,
		price,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, market, "    ", changes, "    ", community),
	}

	if desc := d.PlainDescription(); desc != "" {
		descWidth := max(width-4, 40)
		parts = append(parts, "", r.theme.Normal.Width(descWidth).Render(ansi.Truncate(desc, descWidth*3, "…")))
	}
	if links := r.links(d.Links); links != "" {
		parts = append(parts, "", links)
	}
	if markets := r.markets(d.TopTickers(10)); markets != "" {
		parts = append(parts, "", markets)
	}
	return strings.Join(parts, "\n")
}

func (r *PanelRenderer) keyValues(rows [][2]string) string {
	lines := make([]string, 0, len(rows))
	for _, kv := range rows {
		lines = append(lines, fmt.Sprintf("%s %s",
			r.theme.Subtle.Width(13).Render(kv[0]), r.theme.Normal.Render(kv[1])))
	}
	return strings.Join(lines, "\n")
}

func (r *PanelRenderer) links(l entity.CoinLinks) string {
	var lines []string
	add := func(label string, urls ...string) {
		for _, u := range urls {
			if u = strings.TrimSpace(u); u != "" {
				lines = append(lines, fmt.Sprintf("%s %s", r.theme.Subtle.Width(13).Render(label), u))
				return
			}
		}
	}
	add("Website", l.Homepage...)
	add("Explorer", l.BlockchainSite...)
	add("Forum", l.OfficialForumURL...)
	add("Reddit", l.SubredditURL)
	add("GitHub", l.ReposURL.GitHub...)
	add("Whitepaper", l.Whitepaper)
	if len(lines) == 0 {
		return ""
	}
	return r.theme.Subtitle.Render(IconGlobe+" Links") + "\n" + strings.Join(lines, "\n")
}

func (r *PanelRenderer) markets(tickers []entity.CoinTicker) string {
	if len(tickers) == 0 {
		return ""
	}
	lines := []string{r.theme.Subtitle.Render(IconChart + " Top markets")}
	for _, t := range tickers {
		last, volume := t.Last, t.Volume
		trust := notAvailable
		if t.TrustScore != nil && *t.TrustScore != "" {
			trust = strings.ToUpper((*t.TrustScore)[:1]) + (*t.TrustScore)[1:]
		}
		lines = append(lines, fmt.Sprintf("%-20s %-14s %14s %16s  %s",
			ansi.Truncate(t.Market.Name, 20, "…"), ansi.Truncate(t.Pair(), 14, "…"),
			FormatPrice(&last), FormatPrice(&volume), trust))
	}
	return strings.Join(lines, "\n")
}

func withSymbol(v *float64, symbol string) string {
	if v == nil {
		return notAvailable
	}
	return FormatNumber(v) + " " + symbol
}

func (r *PanelRenderer) cursorLine(line string, selected bool) string {
	if selected {
		return r.theme.Highlight.Render(IconCursor + " " + line)
	}
	return "  " + line
}
