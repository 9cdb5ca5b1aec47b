// Package bibliography provides an ordered, set-like container of records
// with non-mutating reconciliation operations.
package bibliography

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hgebhard/bibdem/internal/record"
)

// ErrInvalidField is returned by OrderBy for an unsupported sort field.
var ErrInvalidField = errors.New("invalid sort field")

// ErrInvalidRecord is returned by Contains for a probe that is not a
// constructed record.
var ErrInvalidRecord = errors.New("not a valid record")

// Bibliography is an ordered sequence of records. Insertion order is
// significant for reproducible report output. All operations return a new
// Bibliography; the receiver is never mutated.
type Bibliography struct {
	items []record.Record
}

// New creates a Bibliography over the given records. The slice is copied.
func New(items []record.Record) *Bibliography {
	b := &Bibliography{items: make([]record.Record, len(items))}
	copy(b.items, items)
	return b
}

// Len returns the number of records.
func (b *Bibliography) Len() int {
	return len(b.items)
}

// Records returns a copy of the record sequence in order.
func (b *Bibliography) Records() []record.Record {
	out := make([]record.Record, len(b.items))
	copy(out, b.items)
	return out
}

// Contains reports whether any member equals the probe record. Equality is
// the record rule: title and year only.
func (b *Bibliography) Contains(r record.Record) (bool, error) {
	if !r.Valid() {
		return false, fmt.Errorf("%w: %v", ErrInvalidRecord, r)
	}
	return b.contains(r), nil
}

func (b *Bibliography) contains(r record.Record) bool {
	for _, item := range b.items {
		if item.Equal(r) {
			return true
		}
	}
	return false
}

// Intersect returns the records from b that have an equal counterpart in
// other, in b's order. Duplicates within b are kept.
func (b *Bibliography) Intersect(other *Bibliography) *Bibliography {
	out := &Bibliography{}
	for _, item := range b.items {
		if other.contains(item) {
			out.items = append(out.items, item)
		}
	}
	return out
}

// Difference returns the records from b that have no equal counterpart in
// other, in b's order. Duplicates within b are kept.
func (b *Bibliography) Difference(other *Bibliography) *Bibliography {
	out := &Bibliography{}
	for _, item := range b.items {
		if !other.contains(item) {
			out.items = append(out.items, item)
		}
	}
	return out
}

// Unique returns a Bibliography with duplicates removed. The first occurrence
// wins and the relative order of kept records is preserved.
func (b *Bibliography) Unique() *Bibliography {
	out := &Bibliography{}
	for _, item := range b.items {
		if !out.contains(item) {
			out.items = append(out.items, item)
		}
	}
	return out
}

// OrderBy returns a Bibliography sorted ascending by the lexicographic
// ordering of a derived accessor: "title", "author", or "year". Years sort as
// text since they may be sentinels or range strings. The sort is stable so
// ties keep their original relative order.
func (b *Bibliography) OrderBy(field string) (*Bibliography, error) {
	var key func(record.Record) string
	switch field {
	case "title":
		key = record.Record.Title
	case "author":
		key = record.Record.Author
	case "year":
		key = record.Record.Year
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	out := New(b.items)
	sort.SliceStable(out.items, func(i, j int) bool {
		return key(out.items[i]) < key(out.items[j])
	})
	return out, nil
}
