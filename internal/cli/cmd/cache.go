package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/onramp/internal/cli/styles"
)

var cacheJSON bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the API response cache",
	Long: `Inspect or clear the persisted API response cache.

Responses are cached by request URL. Fresh entries are served without a
network call; expired ones are still shown while a refresh runs, and when
the API is rate limiting.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache size and entry ages",
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached response",
	RunE:  runCacheClear,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheStatsCmd.Flags().BoolVar(&cacheJSON, "json", false, "output as JSON")
}

func runCacheStats(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	stats := app.Cache().Stats()
	if cacheJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	renderer := styles.NewCacheRenderer(app.Styles())
	fmt.Println(renderer.RenderStats(stats, app.Config.Cache.Duration, app.Config.Cache.MaxBytes))
	return nil
}

func runCacheClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewCacheRenderer(app.Styles())
	store := app.Cache()
	removed := store.Len()
	if err := store.Clear(app.Ctx()); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderCleared(removed))
	return nil
}
