// Package cmd provides Cobra CLI commands for onramp.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/onramp/internal/cli"
	"github.com/bnema/onramp/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "onramp",
		Short: "A terminal dashboard for the crypto market",
		Long: `Onramp - a terminal dashboard for the crypto market, powered by CoinGecko.

Features:
  - Global market totals, trending coins and newest listings
  - Category pages (A.I., meme, RWA, gaming, stablecoins) with sortable tables
  - Coin details with price history sparklines
  - Persisted response cache that keeps working when the API rate limits you
  - Light and dark themes

Run 'onramp' without arguments to open the dashboard, or use the
subcommands to print a single view or manage the cache and config.`,
		SilenceUsage: true,
		RunE:         runDashboard,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
