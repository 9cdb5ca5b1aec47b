package parser

import (
	"strings"

	"github.com/hgebhard/bibdem/internal/record"
)

// TriCat export line labels. Label matching is on the stripped line's prefix.
const (
	labelYear     = "Jahr"
	labelTitle    = "Haupttitel"
	labelSubtitle = "Titelzusatz"
	labelAuthor   = "1. Person"
	// Author lines sometimes carry the long label variant; it is stripped
	// in preference to the short one.
	labelAuthorLong = "1. Person/Fam."
)

// tricatEntry collects the labeled fields of one catalog entry.
type tricatEntry struct {
	author   string
	title    string
	subtitle string
	year     string
	seen     bool
}

// toRecord maps the catalog fields onto the logical record tags. Title and
// subtitle are joined with a single space even when the subtitle is empty;
// the title accessor's trim removes the stray space.
func (e tricatEntry) toRecord() record.Record {
	return record.New(map[string]string{
		record.TagAuthorPrimary: e.author,
		record.TagTitle:         e.title + " " + e.subtitle,
		record.TagYear:          e.year,
	})
}

// ParseTricat scans a TriCat plain-text export line by line. An author label
// marks the start of a new entry: any entry accumulated so far is committed
// first. The trailing entry is committed unconditionally at end of input, so
// a file ending right after a committed entry yields one extra all-sentinel
// record. That boundary behavior is kept as-is; reports depend on it.
func ParseTricat(data string) []record.Record {
	lines := strings.Split(data, "\n")

	var records []record.Record
	var current tricatEntry

	for i := 0; i < len(lines); {
		stripped := strings.TrimLeft(lines[i], " \t")
		switch {
		case strings.HasPrefix(stripped, labelYear):
			current.year = strings.TrimSpace(strings.Replace(lines[i], labelYear, "", 1))
			current.seen = true
			i++
		case strings.HasPrefix(stripped, labelTitle):
			text, consumed := accumulate(lines, i)
			current.title = text
			current.seen = true
			i += consumed
		case strings.HasPrefix(stripped, labelSubtitle):
			text, consumed := accumulate(lines, i)
			current.subtitle = text
			current.seen = true
			i += consumed
		case strings.HasPrefix(stripped, labelAuthor):
			if current.seen {
				records = append(records, current.toRecord())
				current = tricatEntry{}
			}
			text, consumed := accumulate(lines, i)
			current.author = text
			current.seen = true
			i += consumed
		default:
			i++
		}
	}

	// The last entry is committed even when nothing was accumulated.
	return append(records, current.toRecord())
}

// accumulate joins a labeled field that may continue over several lines.
// Starting at the labeled line it consumes lines until a blank line or end of
// input, strips any label prefix, trims each fragment, and joins the
// fragments with single spaces. It returns the joined text and the number of
// lines consumed so the caller can advance its cursor.
func accumulate(lines []string, start int) (string, int) {
	var parts []string
	i := start
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		parts = append(parts, strings.TrimSpace(stripLabel(lines[i])))
		i++
	}
	return strings.Join(parts, " "), i - start
}

// stripLabel removes a recognized field label from the front of a line. The
// long author label variant wins over the short one so that "/Fam." does not
// leak into author values.
func stripLabel(line string) string {
	stripped := strings.TrimLeft(line, " \t")
	switch {
	case strings.HasPrefix(stripped, labelTitle):
		return strings.Replace(line, labelTitle, "", 1)
	case strings.HasPrefix(stripped, labelSubtitle):
		return strings.Replace(line, labelSubtitle, "", 1)
	case strings.HasPrefix(stripped, labelAuthorLong):
		return strings.Replace(line, labelAuthorLong, "", 1)
	case strings.HasPrefix(stripped, labelAuthor):
		return strings.Replace(line, labelAuthor, "", 1)
	}
	return line
}
