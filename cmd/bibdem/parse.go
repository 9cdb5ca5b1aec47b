package main

import (
	"github.com/hgebhard/bibdem/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseFormat string
	parseSort   string
	parseUnique bool
)

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "", "Export format (ris, tricat)")
	parseCmd.Flags().StringVar(&parseSort, "sort", "", "Sort records by field (title, author, year)")
	parseCmd.Flags().BoolVar(&parseUnique, "unique", false, "Drop duplicate records (same title and year)")
	parseCmd.MarkFlagRequired("format")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a bibliography export and list its records",
	Long: `Parse a single bibliography export file and list the normalized records.

Usage:
  bibdem parse --format ris neu_tib_gvk_swb.txt
  bibdem parse --format tricat --unique --sort title gesammelte.txt

Supported formats:
  ris     - tagged-field export (two-letter tags, blank-line-delimited)
  tricat  - TriCat catalog plain-text export`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

// ParseResult lists the records parsed from one file.
type ParseResult struct {
	File    string       `json:"file"`
	Format  string       `json:"format"`
	Count   int          `json:"count"`
	Records []RecordJSON `json:"records"`
}

func runParse(cmd *cobra.Command, args []string) error {
	bib := loadBibliography(args[0], parser.Format(parseFormat))

	if parseUnique {
		bib = bib.Unique()
	}
	if parseSort != "" {
		sorted, err := bib.OrderBy(parseSort)
		if err != nil {
			exitWithError(ExitError, "sorting: %v", err)
		}
		bib = sorted
	}

	if humanOutput {
		printRecordsHuman(bib)
		return nil
	}
	return outputJSON(ParseResult{
		File:    args[0],
		Format:  parseFormat,
		Count:   bib.Len(),
		Records: recordsToJSON(bib),
	})
}
