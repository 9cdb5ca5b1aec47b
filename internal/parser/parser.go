// Package parser converts raw bibliography export files into records.
//
// Two formats are supported: RIS-style tagged exports and the plain-text
// export produced by the TriCat catalog tool. Malformed individual entries
// never fail a parse; missing fields surface later as sentinel values.
package parser

import (
	"errors"
	"fmt"

	"github.com/hgebhard/bibdem/internal/record"
)

// Format identifies a supported bibliography export format.
type Format string

const (
	// FormatRIS is the tagged-field export format (two-letter tag lines,
	// blank-line-delimited entries).
	FormatRIS Format = "ris"
	// FormatTricat is the TriCat catalog export format (labeled,
	// possibly multi-line field blocks).
	FormatTricat Format = "tricat"
)

// ErrUnknownFormat is returned when a parse is requested for a format
// identifier that no parser handles.
var ErrUnknownFormat = errors.New("unknown bibliography format")

// Parse converts full file contents into records using the named format.
func Parse(data []byte, format Format) ([]record.Record, error) {
	switch format {
	case FormatRIS:
		return ParseRIS(string(data)), nil
	case FormatTricat:
		return ParseTricat(string(data)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
