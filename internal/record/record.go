// Package record defines the normalized bibliographic entry shared by all parsers.
package record

import "strings"

// Logical field tags. Both parsers populate records using these keys,
// regardless of how the source format labels its fields.
const (
	TagAuthorPrimary   = "A1"
	TagAuthorSecondary = "A2"
	TagTitle           = "T1"
	TagYear            = "PY"
)

// Sentinel strings substituted when a field is absent or empty.
const (
	NoTitle  = "no title"
	NoYear   = "no year"
	NoAuthor = "no author"
)

// Record represents one bibliographic entry. The internal tag map is fixed at
// construction; identity and ordering are defined entirely by the derived
// accessors, never by the raw data.
type Record struct {
	fields map[string]string
}

// New creates a Record from a tag-to-value map. The map is copied, so the
// caller may keep mutating its own copy.
func New(fields map[string]string) Record {
	m := make(map[string]string, len(fields))
	for k, v := range fields {
		m[k] = v
	}
	return Record{fields: m}
}

// Valid reports whether the record was built through New. The zero Record is
// not valid and is rejected by Bibliography membership tests.
func (r Record) Valid() bool {
	return r.fields != nil
}

// Field returns the raw value stored under a tag and whether the tag is present.
func (r Record) Field(tag string) (string, bool) {
	v, ok := r.fields[tag]
	return v, ok
}

// Title returns the derived title: the raw value with embedded newlines
// collapsed to spaces and surrounding whitespace trimmed. A record without a
// title tag reports the sentinel; a present but blank title trims to "".
func (r Record) Title() string {
	raw, ok := r.fields[TagTitle]
	if !ok {
		return NoTitle
	}
	return collapse(raw)
}

// Year returns the derived year: bracket characters stripped and whitespace
// trimmed. Absent and empty both yield the sentinel. Years are kept as text
// since the source data contains ranges and bracketed guesses.
func (r Record) Year() string {
	raw := r.fields[TagYear]
	raw = strings.ReplaceAll(raw, "[", "")
	raw = strings.ReplaceAll(raw, "]", "")
	return orSentinel(strings.TrimSpace(raw), NoYear)
}

// Author returns the primary author if non-empty, falling back to the
// secondary author, then to the sentinel.
func (r Record) Author() string {
	if a := collapse(r.fields[TagAuthorPrimary]); a != "" {
		return a
	}
	return orSentinel(collapse(r.fields[TagAuthorSecondary]), NoAuthor)
}

// Equal reports whether two records describe the same work. Authors are
// deliberately excluded: the same work exported by different tools carries
// differently formatted author strings.
func (r Record) Equal(other Record) bool {
	return r.Title() == other.Title() && r.Year() == other.Year()
}

// orSentinel is the missing-field policy: an empty derived value is replaced
// by the field's sentinel string.
func orSentinel(v, sentinel string) string {
	if v == "" {
		return sentinel
	}
	return v
}

// collapse replaces embedded newlines with spaces and trims the result.
func collapse(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}
