package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/onramp/internal/cli/styles"
	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/infrastructure/config"
)

// chrome bundles the themed widgets every view draws with.
type chrome struct {
	cfg     *config.Config
	theme   *styles.Theme
	panels  *styles.PanelRenderer
	help    help.Model
	spinner spinner.Model
	keys    styles.DashboardKeyMap
	width   int
	height  int
}

func newChrome(cfg *config.Config, mode entity.Theme) chrome {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := chrome{
		cfg:    cfg,
		keys:   styles.DefaultDashboardKeyMap(),
		width:  100,
		height: 30,
	}
	c.retheme(mode)
	return c
}

func (c *chrome) retheme(mode entity.Theme) {
	c.theme = styles.NewTheme(c.cfg, mode)
	c.panels = styles.NewPanelRenderer(c.theme, c.cfg.API.VsCurrency)
	showAll := c.help.ShowAll
	c.help = styles.NewStyledHelp(c.theme)
	c.help.ShowAll = showAll
	if c.spinner.ID() == 0 {
		c.spinner = styles.NewDefaultSpinner(c.theme)
	} else {
		c.spinner.Style = styles.SpinnerStyle(c.theme)
	}
}

// update handles the messages every view reacts to the same way.
func (c *chrome) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		c.help.Width = msg.Width
	case ConfigChangedMsg:
		if msg.Config != nil {
			c.cfg = msg.Config
			c.retheme(c.theme.Mode)
		}
	case themeToggledMsg:
		if msg.err == nil {
			c.retheme(msg.theme)
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (c chrome) status(loading bool) string {
	if loading {
		return styles.Loading(c.spinner, c.theme, "refreshing")
	}
	return ""
}

func (c chrome) timeframe() entity.Timeframe {
	tf, err := entity.ParseTimeframe(c.cfg.Dashboard.DefaultTimeframe)
	if err != nil {
		return entity.Timeframe7D
	}
	return tf
}

// nextTimeframe cycles 1d → 7d → 30d → 90d → 1d.
func nextTimeframe(tf entity.Timeframe) entity.Timeframe {
	all := entity.Timeframes()
	for i, t := range all {
		if t == tf {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
