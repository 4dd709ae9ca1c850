// Package record contains the document shapes shared across parsing,
// grouping, and output to avoid import cycles.
package record

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Tree is an insertion-ordered mapping parsed from one document. Values are
// scalars (string, int64, float64, bool, nil), nested *Tree mappings, or
// []any sequences. Insertion order follows document order, which later
// determines output column order.
type Tree = orderedmap.OrderedMap[string, any]

// NewTree creates an empty Tree.
func NewTree() *Tree {
	return orderedmap.NewOrderedMap[string, any]()
}

// FlatRecord is one file's content after flattening: dotted-path keys mapped
// to leaf values, in first-seen order. Immutable once produced by Flatten.
type FlatRecord = orderedmap.OrderedMap[string, any]

// NewFlatRecord creates an empty FlatRecord.
func NewFlatRecord() *FlatRecord {
	return orderedmap.NewOrderedMap[string, any]()
}

// Fields returns the record's field names in first-seen order.
func Fields(r *FlatRecord) []string {
	return r.Keys()
}
