package record

// Flatten converts a nested Tree into a single-level FlatRecord with
// dot-joined path keys. Sequences are carried through as opaque values, not
// descended into. Duplicate dotted paths overwrite silently, last write wins,
// keeping the position of the first write.
func Flatten(tree *Tree) *FlatRecord {
	out := NewFlatRecord()
	flattenInto(out, tree, "")
	return out
}

func flattenInto(out *FlatRecord, tree *Tree, prefix string) {
	for el := tree.Front(); el != nil; el = el.Next() {
		key := el.Key
		if prefix != "" {
			key = prefix + "." + el.Key
		}
		if sub, ok := el.Value.(*Tree); ok {
			flattenInto(out, sub, key)
			continue
		}
		out.Set(key, el.Value)
	}
}
