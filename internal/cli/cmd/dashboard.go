package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/onramp/internal/application/port"
	"github.com/bnema/onramp/internal/cli/model"
	"github.com/bnema/onramp/internal/cli/render"
	"github.com/bnema/onramp/internal/infrastructure/config"
	"github.com/bnema/onramp/internal/logging"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the market dashboard",
	Long: `Open the interactive market dashboard.

The home screen shows global market totals, a preview of every category,
trending coins and recently added coins. Cached data is shown immediately
and refreshed in the background.

Keys:
  tab        move between sections
  ↑/↓ j/k    move the cursor
  enter      open the selected coin
  c          open the focused category page
  s          cycle the sort column (category page)
  f          cycle the chart timeframe
  r          refresh
  t          toggle light/dark theme
  esc        go back
  q          quit`,
	Aliases: []string{"home"},
	RunE:    runDashboard,
}

var dashboardJSON bool

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "print every home section as JSON and exit")
}

func runDashboard(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if dashboardJSON {
		r := render.NewJSONRenderer()
		// Failed sections are listed in the output.
		_ = app.NewMarketData(r).LoadHome(app.Ctx())
		return r.Write(os.Stdout)
	}

	deps := newModelDeps()
	return runProgram(deps, model.NewDashboardModel(deps))
}

// newModelDeps wires the views to the app. Every view gets its own market
// data use case so renders reach only the view that asked.
func newModelDeps() model.Deps {
	return model.Deps{
		Ctx:    app.Ctx(),
		Config: app.Config,
		Theme:  app.CurrentTheme(),
		Themes: app.ThemeUC,
		Bridge: model.NewBridge(),
		NewLoader: func(r port.MarketRenderer) model.MarketLoader {
			return app.NewMarketData(r)
		},
	}
}

// runProgram runs m full screen and forwards config file changes to it.
func runProgram(deps model.Deps, m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(app.Ctx()))
	deps.Bridge.Attach(p)

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigChangedMsg{Config: cfg})
		})
		if err := app.Manager.Watch(); err != nil {
			logging.FromContext(app.Ctx()).Warn().Err(err).Msg("config watch disabled")
		}
	}

	_, err := p.Run()
	return err
}
