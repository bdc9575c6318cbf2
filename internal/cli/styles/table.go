package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/onramp/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)
	ApplyTableTheme(&t, theme)
	return t
}

// ApplyTableTheme restyles an existing table, e.g. after a theme toggle.
func ApplyTableTheme(t *table.Model, theme *Theme) {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
}

// MarketTableColumns returns columns for a category's coin table. The 7d
// column is included only when the data carries weekly changes.
func MarketTableColumns(withWeeklyChange bool) []table.Column {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Coin", Width: 22},
		{Title: "Price", Width: 14},
		{Title: "24h", Width: 10},
	}
	if withWeeklyChange {
		cols = append(cols, table.Column{Title: "7d", Width: 10})
	}
	return append(cols,
		table.Column{Title: "Market Cap", Width: 11},
		table.Column{Title: "Volume", Width: 11},
	)
}

// CoinRow converts a coin to a table row matching MarketTableColumns.
// Cells are plain text: the table truncates styled cells badly.
func CoinRow(c entity.Coin, withWeeklyChange bool) table.Row {
	rank := "-"
	if c.MarketCapRank != nil {
		rank = strconv.Itoa(*c.MarketCapRank)
	}
	row := table.Row{
		rank,
		c.Name + " " + c.Ticker(),
		FormatPrice(c.CurrentPrice),
		FormatPercentage(c.PriceChangePercentage24h),
	}
	if withWeeklyChange {
		row = append(row, FormatPercentage(c.PriceChangePercentage7dInCc))
	}
	return append(row, FormatNumber(c.MarketCap), FormatNumber(c.TotalVolume))
}

// CoinRows converts coins to rows in order.
func CoinRows(coins []entity.Coin, withWeeklyChange bool) []table.Row {
	rows := make([]table.Row, 0, len(coins))
	for _, c := range coins {
		rows = append(rows, CoinRow(c, withWeeklyChange))
	}
	return rows
}
