package record

import (
	"strings"

	"github.com/beevik/etree"
)

// FromElement converts an XML element tree into the Tree shape consumed by
// Flatten. Per node:
//   - no children, no attributes: the value is the stripped text, or nil when
//     the text is empty or absent
//   - children: each child is adapted and merged under the parent tag;
//     repeated child tags promote the value to a []any in child order
//   - attributes become "@"+name keys alongside the children mapping
//   - non-empty stripped text on a node that also has attributes or children
//     is stored under the reserved "#text" key
//
// An element with attributes but neither children nor text still maps to a
// sub-tree of "@" keys, never a scalar.
func FromElement(el *etree.Element) *Tree {
	children := el.ChildElements()

	var value any
	if len(children) > 0 {
		merged := NewTree()
		for _, child := range children {
			mergeChild(merged, FromElement(child))
		}
		value = merged
	} else if len(el.Attr) > 0 {
		value = NewTree()
	}

	if len(el.Attr) > 0 {
		sub := value.(*Tree)
		for _, attr := range el.Attr {
			sub.Set("@"+attr.Key, attr.Value)
		}
	}

	if text := strings.TrimSpace(el.Text()); text != "" {
		if len(children) > 0 || len(el.Attr) > 0 {
			value.(*Tree).Set("#text", text)
		} else {
			value = text
		}
	}

	node := NewTree()
	node.Set(el.Tag, value)
	return node
}

// mergeChild folds one adapted child mapping into the accumulated children
// mapping, promoting repeated tags from scalar to sequence.
func mergeChild(merged, child *Tree) {
	for el := child.Front(); el != nil; el = el.Next() {
		existing, ok := merged.Get(el.Key)
		if !ok {
			merged.Set(el.Key, el.Value)
			continue
		}
		if seq, isSeq := existing.([]any); isSeq {
			merged.Set(el.Key, append(seq, el.Value))
			continue
		}
		merged.Set(el.Key, []any{existing, el.Value})
	}
}
