package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/hgebhard/bibdem/internal/record"
)

func TestParseRIS_SingleEntry(t *testing.T) {
	input := "T1  - Foo\nPY  - 2020\nA1  - Jane Doe\n"

	records := ParseRIS(input)
	if len(records) != 1 {
		t.Fatalf("ParseRIS() returned %d records, want 1", len(records))
	}

	r := records[0]
	if got := r.Title(); got != "Foo" {
		t.Errorf("Title() = %q, want Foo", got)
	}
	if got := r.Year(); got != "2020" {
		t.Errorf("Year() = %q, want 2020", got)
	}
	if got := r.Author(); got != "Jane Doe" {
		t.Errorf("Author() = %q, want Jane Doe", got)
	}
}

func TestParseRIS_ChunkParity(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single chunk", "T1  - A"},
		{"two chunks", "T1  - A\n\nT1  - B"},
		{"three chunks", "T1  - A\n\nT1  - B\n\nT1  - C"},
		{"trailing blank line makes empty chunk", "T1  - A\n\n"},
		{"empty input is one chunk", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := len(strings.Split(tt.input, "\n\n"))
			if got := len(ParseRIS(tt.input)); got != want {
				t.Errorf("ParseRIS() returned %d records, want %d chunks", got, want)
			}
		})
	}
}

func TestParseRIS_ContinuationLines(t *testing.T) {
	input := "T1  - A very long\ntitle over two lines\nPY  - 2001"

	records := ParseRIS(input)
	if len(records) != 1 {
		t.Fatalf("ParseRIS() returned %d records, want 1", len(records))
	}

	if got := records[0].Title(); got != "A very long title over two lines" {
		t.Errorf("Title() = %q", got)
	}
	if got := records[0].Year(); got != "2001" {
		t.Errorf("Year() = %q, want 2001", got)
	}
}

func TestParseRIS_LeadingUnmatchedLinesDropped(t *testing.T) {
	// Text before the first tag line accumulates under the empty tag and
	// never reaches any accessor.
	input := "export generated 2024\nby some tool\nT1  - Foo\nPY  - 2020"

	records := ParseRIS(input)
	if len(records) != 1 {
		t.Fatalf("ParseRIS() returned %d records, want 1", len(records))
	}
	if got := records[0].Title(); got != "Foo" {
		t.Errorf("Title() = %q, want Foo", got)
	}
}

func TestParseRIS_NoTagAtAll(t *testing.T) {
	// A chunk with no tag line still yields a record; all accessors report
	// sentinels since only the empty tag is populated.
	records := ParseRIS("just some text\nwithout any tags")
	if len(records) != 1 {
		t.Fatalf("ParseRIS() returned %d records, want 1", len(records))
	}

	r := records[0]
	if got := r.Title(); got != record.NoTitle {
		t.Errorf("Title() = %q, want %q", got, record.NoTitle)
	}
	if got := r.Year(); got != record.NoYear {
		t.Errorf("Year() = %q, want %q", got, record.NoYear)
	}
	if got := r.Author(); got != record.NoAuthor {
		t.Errorf("Author() = %q, want %q", got, record.NoAuthor)
	}
}

func TestParseRIS_MissingYearIsSentinel(t *testing.T) {
	records := ParseRIS("T1  - Foo\nA1  - Jane Doe")
	if len(records) != 1 {
		t.Fatalf("ParseRIS() returned %d records, want 1", len(records))
	}
	if got := records[0].Year(); got != record.NoYear {
		t.Errorf("Year() = %q, want %q", got, record.NoYear)
	}
}

func TestParseRIS_OtherTagsPreserved(t *testing.T) {
	records := ParseRIS("TY  - BOOK\nT1  - Foo\nSN  - 978-3-16-148410-0")
	if len(records) != 1 {
		t.Fatalf("ParseRIS() returned %d records, want 1", len(records))
	}

	if v, ok := records[0].Field("SN"); !ok || strings.TrimSpace(v) != "978-3-16-148410-0" {
		t.Errorf("Field(SN) = %q, %v", v, ok)
	}
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := Parse([]byte("T1  - Foo"), Format("bibtex"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Parse() error = %v, want ErrUnknownFormat", err)
	}
}

func TestParse_DispatchesRIS(t *testing.T) {
	records, err := Parse([]byte("T1  - Foo\nPY  - 2020"), FormatRIS)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 1 || records[0].Title() != "Foo" {
		t.Errorf("Parse() = %v records", len(records))
	}
}
