// Package report renders bibliographies as flat-text report files.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hgebhard/bibdem/internal/bibliography"
)

// Render formats a bibliography as report text: a header line with the item
// count, a blank line, then for each record its author, title, and year on
// three lines followed by a blank line. Sentinel strings stand in for absent
// fields, so every block has exactly three value lines.
func Render(bib *bibliography.Bibliography, header string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d)\n\n", header, bib.Len())
	for _, r := range bib.Records() {
		fmt.Fprintf(&sb, "%s\n%s\n%s\n\n", r.Author(), r.Title(), r.Year())
	}
	return sb.String()
}

// WriteFile renders a bibliography and writes it to path, creating the parent
// directory if needed.
func WriteFile(path string, bib *bibliography.Bibliography, header string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(Render(bib, header)), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
