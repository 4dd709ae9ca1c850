package record

import (
	"reflect"
	"testing"
)

func treeOf(pairs ...any) *Tree {
	t := NewTree()
	for i := 0; i < len(pairs); i += 2 {
		t.Set(pairs[i].(string), pairs[i+1])
	}
	return t
}

func flatAsMap(r *FlatRecord) map[string]any {
	out := make(map[string]any, r.Len())
	for el := r.Front(); el != nil; el = el.Next() {
		out[el.Key] = el.Value
	}
	return out
}

func TestFlatten_AlreadyFlat(t *testing.T) {
	in := treeOf("a", int64(1), "b", "two", "c", true)

	got := Flatten(in)

	if got.Len() != 3 {
		t.Fatalf("expected 3 keys, got %d", got.Len())
	}
	want := map[string]any{"a": int64(1), "b": "two", "c": true}
	if !reflect.DeepEqual(flatAsMap(got), want) {
		t.Errorf("expected %v, got %v", want, flatAsMap(got))
	}
	// Key order preserved
	if !reflect.DeepEqual(got.Keys(), []string{"a", "b", "c"}) {
		t.Errorf("expected key order [a b c], got %v", got.Keys())
	}
}

func TestFlatten_NestedPaths(t *testing.T) {
	in := treeOf(
		"a", treeOf("b", int64(1), "c", int64(2)),
		"d", int64(3),
	)

	got := Flatten(in)

	want := map[string]any{"a.b": int64(1), "a.c": int64(2), "d": int64(3)}
	if !reflect.DeepEqual(flatAsMap(got), want) {
		t.Errorf("expected %v, got %v", want, flatAsMap(got))
	}
	if !reflect.DeepEqual(got.Keys(), []string{"a.b", "a.c", "d"}) {
		t.Errorf("expected key order [a.b a.c d], got %v", got.Keys())
	}
}

func TestFlatten_DeepNesting(t *testing.T) {
	in := treeOf("a", treeOf("b", treeOf("c", treeOf("d", "leaf"))))

	got := Flatten(in)

	if v, ok := got.Get("a.b.c.d"); !ok || v != "leaf" {
		t.Errorf("expected a.b.c.d=leaf, got %v (found=%v)", v, ok)
	}
	if got.Len() != 1 {
		t.Errorf("expected 1 key, got %d", got.Len())
	}
}

func TestFlatten_SequencePassedThroughOpaque(t *testing.T) {
	seq := []any{"x", "y"}
	in := treeOf("items", treeOf("item", seq), "n", int64(1))

	got := Flatten(in)

	v, ok := got.Get("items.item")
	if !ok {
		t.Fatal("expected items.item key")
	}
	if !reflect.DeepEqual(v, seq) {
		t.Errorf("expected sequence carried as opaque value, got %v", v)
	}
}

func TestFlatten_DuplicatePathLastWins(t *testing.T) {
	// "a.b" appears both as a literal key and via nesting; the later write
	// silently overwrites the earlier one.
	in := treeOf(
		"a.b", "first",
		"a", treeOf("b", "second"),
	)

	got := Flatten(in)

	if got.Len() != 1 {
		t.Fatalf("expected 1 key after collision, got %d: %v", got.Len(), got.Keys())
	}
	if v, _ := got.Get("a.b"); v != "second" {
		t.Errorf("expected last write to win, got %v", v)
	}
}

func TestFlatten_NilValueKept(t *testing.T) {
	in := treeOf("empty", nil)

	got := Flatten(in)

	v, ok := got.Get("empty")
	if !ok || v != nil {
		t.Errorf("expected nil leaf to survive flattening, got %v (found=%v)", v, ok)
	}
}
