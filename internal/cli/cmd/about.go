package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/onramp/internal/cli/styles"
	"github.com/bnema/onramp/internal/infrastructure/config"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, file locations, repository URL and data attribution.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	paths := styles.AboutPaths{Logs: getLogDir(app.Config)}
	if file, err := config.GetConfigFile(); err == nil {
		paths.Config = file
	}
	if app.Config != nil {
		paths.Database = app.Config.Database.Path
	}

	renderer := styles.NewAboutRenderer(app.Styles())
	fmt.Println(renderer.Render(app.BuildInfo, paths))
	return nil
}
