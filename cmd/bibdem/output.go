package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hgebhard/bibdem/internal/bibliography"
	"github.com/hgebhard/bibdem/internal/record"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RecordJSON is the JSON shape of a normalized record: the three derived
// accessor values, sentinels included.
type RecordJSON struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	Year   string `json:"year"`
}

// recordToJSON converts a record to its JSON shape.
func recordToJSON(r record.Record) RecordJSON {
	return RecordJSON{
		Author: r.Author(),
		Title:  r.Title(),
		Year:   r.Year(),
	}
}

// recordsToJSON converts a bibliography to a slice of JSON records in order.
func recordsToJSON(bib *bibliography.Bibliography) []RecordJSON {
	items := bib.Records()
	out := make([]RecordJSON, len(items))
	for i, r := range items {
		out[i] = recordToJSON(r)
	}
	return out
}

// printRecordsHuman prints records as author/title/year blocks.
func printRecordsHuman(bib *bibliography.Bibliography) {
	for _, r := range bib.Records() {
		fmt.Printf("%s\n%s\n%s\n\n", r.Author(), r.Title(), r.Year())
	}
}
