// Package grouper partitions flat records into compatible tabular groups by
// field-name overlap.
package grouper

import (
	"github.com/dbsmedya/gotabular/internal/record"
)

// Group accumulates records that share at least one field name, transitively
// via its growing attribute set. Groups are never merged once created.
type Group struct {
	// ID is the 1-based creation-order identity, used in artifact names.
	ID int
	// Attributes is the union of field names across assigned records.
	Attributes map[string]struct{}
	// Records holds the assigned records in assignment order.
	Records []*record.FlatRecord
}

// intersects reports whether any of the fields is already in the group's
// attribute set.
func (g *Group) intersects(fields []string) bool {
	for _, f := range fields {
		if _, ok := g.Attributes[f]; ok {
			return true
		}
	}
	return false
}

// add appends the record and unions its fields into the attribute set.
func (g *Group) add(rec *record.FlatRecord, fields []string) {
	g.Records = append(g.Records, rec)
	for _, f := range fields {
		g.Attributes[f] = struct{}{}
	}
}

// Columns returns the distinct field names of the group in first-seen order
// across its records. This is the column order of the output artifact.
func (g *Group) Columns() []string {
	var cols []string
	seen := make(map[string]struct{})
	for _, rec := range g.Records {
		for _, f := range record.Fields(rec) {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			cols = append(cols, f)
		}
	}
	return cols
}

// Grouper incrementally assigns records to groups. The algorithm is greedy
// and single pass: the first existing group (in creation order) whose
// attribute set intersects the record's field set receives the record; with
// no intersection a new group is created. The outcome is order-dependent:
// a record can join a group through a field contributed by a record processed
// earlier, so different input orders produce different partitions. That is
// intended behavior, not something to correct.
type Grouper struct {
	groups []*Group
}

// New creates an empty Grouper.
func New() *Grouper {
	return &Grouper{}
}

// Add assigns one record to a group.
func (gr *Grouper) Add(rec *record.FlatRecord) {
	fields := record.Fields(rec)
	for _, g := range gr.groups {
		if g.intersects(fields) {
			g.add(rec, fields)
			return
		}
	}
	g := &Group{
		ID:         len(gr.groups) + 1,
		Attributes: make(map[string]struct{}, len(fields)),
	}
	g.add(rec, fields)
	gr.groups = append(gr.groups, g)
}

// Groups returns the accumulated groups in creation order. Every group holds
// at least one record.
func (gr *Grouper) Groups() []*Group {
	return gr.groups
}

// GroupRecords partitions records in input order and returns the resulting
// groups in creation order.
func GroupRecords(records []*record.FlatRecord) []*Group {
	gr := New()
	for _, rec := range records {
		gr.Add(rec)
	}
	return gr.Groups()
}
