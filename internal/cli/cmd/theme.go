package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/onramp/internal/cli/styles"
	"github.com/bnema/onramp/internal/domain/entity"
)

var themeCmd = &cobra.Command{
	Use:   "theme [toggle|light|dark]",
	Short: "Show or change the color theme",
	Long: `Show the current color theme, toggle it, or set it explicitly.

The choice is saved and used by every view. Press 't' in the dashboard to
toggle it interactively.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"toggle", string(entity.ThemeLight), string(entity.ThemeDark)},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	if len(args) == 0 {
		current := app.CurrentTheme()
		renderer := styles.NewConfigRenderer(styles.NewTheme(app.Config, current))
		fmt.Println(renderer.RenderTheme(current, false))
		return nil
	}

	var next entity.Theme
	if args[0] == "toggle" {
		toggled, err := app.ThemeUC.Toggle(ctx)
		if err != nil {
			return err
		}
		next = toggled
	} else {
		parsed, err := entity.ParseTheme(args[0])
		if err != nil {
			return err
		}
		if err := app.ThemeUC.Set(ctx, parsed); err != nil {
			return err
		}
		next = parsed
	}

	renderer := styles.NewConfigRenderer(styles.NewTheme(app.Config, next))
	fmt.Println(renderer.RenderTheme(next, true))
	return nil
}
