package parser

import (
	"regexp"
	"strings"

	"github.com/hgebhard/bibdem/internal/record"
)

// risTagPattern matches a field start: a two-character tag, two spaces, a
// dash, then the value. Anything after the dash is captured untrimmed;
// normalization happens in the record accessors.
var risTagPattern = regexp.MustCompile(`^(\S\S)\s\s-(.*)`)

// risState accumulates one field of one entry while scanning lines.
type risState struct {
	tag    string
	text   string
	fields map[string]string
}

// step consumes one line. A tag line flushes the previous field and starts a
// new one; any other line is a continuation, appended newline-first to the
// current field.
func (s *risState) step(line string) {
	if m := risTagPattern.FindStringSubmatch(line); m != nil {
		s.flush()
		s.tag = m[1]
		s.text = m[2]
		return
	}
	s.text += "\n" + line
}

// flush stores the accumulated field. Text gathered before the first tag sits
// under the empty tag and is dropped here; finish stores it regardless.
func (s *risState) flush() {
	if s.tag != "" {
		s.fields[s.tag] = s.text
	}
}

// finish stores the final field unconditionally, so an entry with no tag line
// at all keeps its text under the empty tag. No accessor ever reads that key,
// which preserves the historical behavior of silently discarding such text.
func (s *risState) finish() map[string]string {
	s.fields[s.tag] = s.text
	return s.fields
}

// ParseRIS splits raw export text into blank-line-delimited chunks and parses
// each chunk as one entry. Every chunk yields a record, even a degenerate one.
func ParseRIS(data string) []record.Record {
	chunks := strings.Split(data, "\n\n")
	records := make([]record.Record, 0, len(chunks))
	for _, chunk := range chunks {
		records = append(records, parseRISEntry(chunk))
	}
	return records
}

// parseRISEntry scans one entry's lines through the field state machine.
func parseRISEntry(chunk string) record.Record {
	state := &risState{fields: make(map[string]string)}
	for _, line := range strings.Split(chunk, "\n") {
		state.step(line)
	}
	return record.New(state.finish())
}
