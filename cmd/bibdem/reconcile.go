package main

import (
	"fmt"

	"github.com/hgebhard/bibdem/internal/bibliography"
	"github.com/hgebhard/bibdem/internal/config"
	"github.com/hgebhard/bibdem/internal/parser"
	"github.com/hgebhard/bibdem/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile [catalog-file tagged-file]",
	Short: "Reconcile a TriCat export against an RIS export",
	Long: `Reconcile a TriCat catalog export against an RIS tagged export.

Both files are parsed, deduplicated, and sorted by title. Four report files
are written into the results directory: the unique records of each input,
their intersection, and the RIS records missing from the catalog.

With zero or any other argument count than two, the input files configured
in config.yml (or the built-in defaults) are used.

Examples:
  bibdem reconcile
  bibdem reconcile gesammelte.txt neu_tib_gvk_swb.txt`,
	Args: cobra.ArbitraryArgs,
	RunE: runReconcile,
}

// ReconcileResult summarizes a reconcile run.
type ReconcileResult struct {
	CatalogFile   string   `json:"catalog_file"`
	CatalogCount  int      `json:"catalog_count"`
	CatalogUnique int      `json:"catalog_unique"`
	TaggedFile    string   `json:"tagged_file"`
	TaggedCount   int      `json:"tagged_count"`
	TaggedUnique  int      `json:"tagged_unique"`
	Intersection  int      `json:"intersection"`
	Difference    int      `json:"difference"`
	Reports       []string `json:"reports"`
}

// resolveInputs picks the input files: exactly two positional arguments win,
// any other count falls back to the configured defaults.
func resolveInputs(cfg *config.Config, args []string) (catalogFile, taggedFile string) {
	if len(args) == 2 {
		return args[0], args[1]
	}
	return cfg.CatalogFile, cfg.TaggedFile
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	catalogFile, taggedFile := resolveInputs(cfg, args)

	catalog := loadBibliography(catalogFile, parser.FormatTricat)
	progress("Items created from %s: %d\n", catalogFile, catalog.Len())

	catalogUnique := mustOrderByTitle(catalog.Unique())
	progress("Unique items in %s: %d\n", catalogFile, catalogUnique.Len())

	tagged := loadBibliography(taggedFile, parser.FormatRIS)
	progress("Items created from %s: %d\n", taggedFile, tagged.Len())

	taggedUnique := mustOrderByTitle(tagged.Unique())
	progress("Unique items in %s: %d\n", taggedFile, taggedUnique.Len())

	intersection := catalogUnique.Intersect(taggedUnique)
	progress("Items in the intersection: %d\n", intersection.Len())

	diff := taggedUnique.Difference(catalogUnique)
	progress("Items from the bibliography, which are NOT in tricat: %d\n", diff.Len())

	reports := []struct {
		name   string
		bib    *bibliography.Bibliography
		header string
	}{
		{cfg.Reports.CatalogUnique, catalogUnique, fmt.Sprintf("Unique items from %s", catalogFile)},
		{cfg.Reports.TaggedUnique, taggedUnique, fmt.Sprintf("Unique items from %s", taggedFile)},
		{cfg.Reports.Intersection, intersection, "Intersection items"},
		{cfg.Reports.Difference, diff, "Missing items in the tricat"},
	}

	written := make([]string, 0, len(reports))
	for _, r := range reports {
		path := cfg.ReportPath(r.name)
		if err := report.WriteFile(path, r.bib, r.header); err != nil {
			exitWithError(ExitError, "writing %s: %v", path, err)
		}
		written = append(written, path)
	}

	if !humanOutput {
		return outputJSON(ReconcileResult{
			CatalogFile:   catalogFile,
			CatalogCount:  catalog.Len(),
			CatalogUnique: catalogUnique.Len(),
			TaggedFile:    taggedFile,
			TaggedCount:   tagged.Len(),
			TaggedUnique:  taggedUnique.Len(),
			Intersection:  intersection.Len(),
			Difference:    diff.Len(),
			Reports:       written,
		})
	}
	return nil
}

// progress prints a progress line in human mode; JSON mode stays quiet until
// the final summary.
func progress(format string, args ...interface{}) {
	if humanOutput {
		fmt.Printf(format, args...)
	}
}

// mustOrderByTitle sorts by title. The field name is fixed, so an error here
// is a programming mistake.
func mustOrderByTitle(bib *bibliography.Bibliography) *bibliography.Bibliography {
	sorted, err := bib.OrderBy("title")
	if err != nil {
		exitWithError(ExitError, "sorting by title: %v", err)
	}
	return sorted
}
