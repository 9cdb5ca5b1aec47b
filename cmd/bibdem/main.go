// Package main provides the bibdem CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/hgebhard/bibdem/internal/bibliography"
	"github.com/hgebhard/bibdem/internal/config"
	"github.com/hgebhard/bibdem/internal/parser"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bibdem",
	Short: "Reconcile bibliography exports",
	Long: `bibdem reconciles two bibliography export formats.

It parses RIS-style tagged exports and TriCat plain-text catalog exports
into normalized records, then computes unique, intersection, and difference
sets across the two collections and writes them as text reports.

Records are considered the same work when their title and year match;
author formatting differences between the two tools are ignored.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// mustLoadConfig loads the effective configuration, exits on error.
// A local .env file is loaded first so BIBDEM_* overrides apply.
func mustLoadConfig() *config.Config {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// loadBibliography reads a whole export file and parses it with the given
// format, exits on error.
func loadBibliography(path string, format parser.Format) *bibliography.Bibliography {
	data, err := os.ReadFile(path)
	if err != nil {
		exitWithError(ExitError, "reading file: %v", err)
	}

	records, err := parser.Parse(data, format)
	if err != nil {
		exitWithError(ExitDataError, "parsing %s: %v", path, err)
	}
	return bibliography.New(records)
}
