package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/onramp/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate documentation (man pages or markdown) from CLI command definitions.

The documentation is auto-generated from the command structure, including:
- Command names and aliases
- Short and long descriptions
- Flags and their descriptions
- Usage examples

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files (for websites/wikis)

By default, man pages are installed to ~/.local/share/man/man1/ so they
are immediately available via 'man onramp'. You may need to run 'mandb'
to update the man page index.

Examples:
  onramp gen-docs                           # Install man pages to ~/.local/share/man/man1/
  onramp gen-docs --format markdown         # Generate markdown docs
  onramp gen-docs --output ./man            # Generate to local directory`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	var generate func(string) error
	switch genDocsFormat {
	case "man":
		generate = generateManPages
	case "markdown":
		generate = generateMarkdown
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	outputDir := genDocsOutputDir
	if outputDir == "" {
		outputDir = "./docs"
		if genDocsFormat == "man" {
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		}
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return generate(outputDir)
}

func generateManPages(outputDir string) error {
	header := &doc.GenManHeader{
		Title:   "ONRAMP",
		Section: "1",
		Source:  "onramp " + buildInfo.Version,
		Manual:  "Onramp Manual",
		Date:    func() *time.Time { t := time.Now(); return &t }(),
	}

	// Disable auto-generation timestamp in the footer for reproducible builds
	rootCmd.DisableAutoGenTag = true

	if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
		return fmt.Errorf("generate man pages: %w", err)
	}

	fmt.Printf("Installed man pages to %s\n", outputDir)
	fmt.Println("Run 'mandb' if 'man onramp' doesn't work immediately.")
	printGenerated(outputDir, ".1")
	return nil
}

func generateMarkdown(outputDir string) error {
	rootCmd.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}

	fmt.Printf("Generated markdown docs in %s\n", outputDir)
	printGenerated(outputDir, ".md")
	return nil
}

// printGenerated lists the files with ext in dir. Listing errors are ignored.
func printGenerated(dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Printf("  - %s\n", e.Name())
		}
	}
}
