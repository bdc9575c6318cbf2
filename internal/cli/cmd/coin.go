package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/onramp/internal/cli/model"
	"github.com/bnema/onramp/internal/cli/render"
)

var (
	coinTimeframe string
	coinJSON      bool
)

var coinCmd = &cobra.Command{
	Use:   "coin <id>",
	Short: "Show a coin's details and price chart",
	Long: `Show a coin's market data, links, top markets and price history.

The id is CoinGecko's coin id (e.g. bitcoin, ethereum, solana).

Examples:
  onramp coin bitcoin                 # Interactive detail view
  onramp coin ethereum -t 30d         # 30 day chart
  onramp coin solana --json           # Print detail and chart as JSON`,
	Args: cobra.ExactArgs(1),
	RunE: runCoin,
}

func init() {
	rootCmd.AddCommand(coinCmd)
	coinCmd.Flags().StringVarP(&coinTimeframe, "timeframe", "t", "", "chart timeframe: 1d, 7d, 30d, 90d")
	coinCmd.Flags().BoolVar(&coinJSON, "json", false, "print detail and chart as JSON and exit")
}

func runCoin(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	id := strings.ToLower(strings.TrimSpace(args[0]))
	if id == "" {
		return fmt.Errorf("coin id cannot be empty")
	}
	timeframe, err := resolveTimeframe(coinTimeframe)
	if err != nil {
		return err
	}

	if coinJSON {
		r := render.NewJSONRenderer()
		uc := app.NewMarketData(r)
		_, detailErr := uc.LoadCoinDetail(app.Ctx(), id)
		_, _ = uc.LoadPriceHistory(app.Ctx(), []string{id}, timeframe)
		if err := r.Write(os.Stdout); err != nil {
			return err
		}
		return detailErr
	}

	deps := newModelDeps()
	return runProgram(deps, model.NewCoinModel(deps, id, timeframe))
}
