package main

import (
	"fmt"

	"github.com/hgebhard/bibdem/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration: built-in defaults overlaid with
the config.yml file (if present) and BIBDEM_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

// ConfigResult is the effective configuration plus its file path.
type ConfigResult struct {
	Path   string         `json:"path"`
	Config *config.Config `json:"config"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	if humanOutput {
		fmt.Printf("Config file:   %s\n", config.Path())
		fmt.Printf("Catalog file:  %s\n", cfg.CatalogFile)
		fmt.Printf("Tagged file:   %s\n", cfg.TaggedFile)
		fmt.Printf("Results dir:   %s\n", cfg.ResultsDir)
		fmt.Printf("Reports:       %s, %s, %s, %s\n",
			cfg.Reports.CatalogUnique, cfg.Reports.TaggedUnique,
			cfg.Reports.Intersection, cfg.Reports.Difference)
		return nil
	}
	return outputJSON(ConfigResult{Path: config.Path(), Config: cfg})
}
