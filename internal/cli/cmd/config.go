package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/onramp/internal/application/usecase"
	"github.com/bnema/onramp/internal/cli/styles"
	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/infrastructure/config"
)

var (
	configForce      bool
	configSection    string
	configJSON       bool
	configJSONSchema bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Locate, initialize and document the configuration file.

Settings can also be overridden with ONRAMP_* environment variables,
e.g. ONRAMP_API_BASE_URL or ONRAMP_CACHE_DURATION.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:     "schema",
	Aliases: []string{"keys"},
	Short:   "List every config key with its type and default",
	Long: `List every configuration key with its type, default value and description.

Examples:
  onramp config schema                    # All keys
  onramp config schema --section cache    # One section
  onramp config schema --json             # Keys as JSON
  onramp config schema --json-schema      # JSON Schema for editor validation`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().StringVarP(&configSection, "section", "s", "", "only show keys of this section")
	configSchemaCmd.Flags().BoolVar(&configJSON, "json", false, "output keys as JSON")
	configSchemaCmd.Flags().BoolVar(&configJSONSchema, "json-schema", false, "output a JSON Schema document")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(styles.NewTheme(app.Config, entity.DefaultTheme))
	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}

	_, statErr := os.Stat(configFile)
	fmt.Println(renderer.RenderPath(configFile, statErr == nil))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(styles.NewTheme(app.Config, entity.DefaultTheme))
	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}

	if _, statErr := os.Stat(configFile); statErr == nil && !configForce {
		fmt.Println(renderer.RenderExists(configFile))
		return nil
	} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		fmt.Println(renderer.RenderError(statErr))
		return statErr
	}

	if err := config.EnsureDirectories(); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), configFile); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}

	fmt.Println(renderer.RenderInitialized(configFile))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.ConfigSchemaUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{
		Section:           configSection,
		IncludeJSONSchema: configJSONSchema,
	})
	if err != nil {
		return fmt.Errorf("get config schema: %w", err)
	}

	if configJSONSchema {
		fmt.Println(string(out.JSONSchema))
		return nil
	}

	renderer := styles.NewConfigSchemaRenderer(styles.NewTheme(app.Config, entity.DefaultTheme))
	if configJSON {
		doc, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(doc)
		return nil
	}

	fmt.Println(renderer.Render(out.Keys))
	return nil
}
