package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/onramp/internal/cli/model"
	"github.com/bnema/onramp/internal/cli/render"
	"github.com/bnema/onramp/internal/domain/entity"
)

var (
	categorySort      string
	categoryTimeframe string
	categoryJSON      bool
)

var categoryCmd = &cobra.Command{
	Use:   "category <slug>",
	Short: "Open a category page",
	Long: fmt.Sprintf(`Open a category page with summary stats, a sortable coin table and
price history for its top coins.

Categories: %s

Examples:
  onramp category ai                     # A.I. coins by market cap
  onramp category meme --sort volume     # Meme coins by 24h volume
  onramp category top --json             # Print the page as JSON`, strings.Join(entity.CategorySlugs(), ", ")),
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return entity.CategorySlugs(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runCategory,
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.Flags().StringVarP(&categorySort, "sort", "s", string(entity.SortByMarketCap),
		"sort column: market_cap, volume, price_change")
	categoryCmd.Flags().StringVarP(&categoryTimeframe, "timeframe", "t", "", "chart timeframe: 1d, 7d, 30d, 90d")
	categoryCmd.Flags().BoolVar(&categoryJSON, "json", false, "print the page as JSON and exit")
}

func runCategory(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	category, err := entity.LookupCategory(args[0])
	if err != nil {
		return err
	}
	timeframe, err := resolveTimeframe(categoryTimeframe)
	if err != nil {
		return err
	}
	sortKey := entity.ParseSortKey(categorySort)

	if categoryJSON {
		return printCategoryJSON(category, timeframe)
	}

	deps := newModelDeps()
	return runProgram(deps, model.NewCategoryModel(deps, category, sortKey, timeframe))
}

func printCategoryJSON(category entity.Category, timeframe entity.Timeframe) error {
	r := render.NewJSONRenderer()
	uc := app.NewMarketData(r)

	coins, err := uc.LoadCategoryPage(app.Ctx(), category)
	if err != nil {
		_ = r.Write(os.Stdout)
		return err
	}

	top := entity.SortCoins(coins, entity.SortByMarketCap)
	ids := make([]string, 0, app.Config.Dashboard.ChartCoins)
	for _, c := range top {
		if len(ids) == cap(ids) {
			break
		}
		ids = append(ids, c.ID)
	}
	if len(ids) > 0 {
		// Missing series are dropped; the coins are still worth printing.
		_, _ = uc.LoadPriceHistory(app.Ctx(), ids, timeframe)
	}
	return r.Write(os.Stdout)
}

// resolveTimeframe parses a --timeframe flag, defaulting to the configured one.
func resolveTimeframe(flag string) (entity.Timeframe, error) {
	if flag == "" {
		flag = app.Config.Dashboard.DefaultTimeframe
	}
	return entity.ParseTimeframe(flag)
}
