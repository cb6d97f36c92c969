package radix

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"

	"github.com/aglyzov/go-radix/nibble"
)

// String renders the node structure of the trie, e.g.:
//
//	<root>
//	└── [7465]  ·
//	    ├── [616d]  "team": 2
//	    └── [7374]  "test": 1
//
// Every branch shows the nibbles it consumes in hex: the slot nibble followed
// by the node fragment.
func (t *Trie[K, V]) String() string {
	return t.tree().String()
}

// Dump writes the node structure of the trie to w.
func (t *Trie[K, V]) Dump(w io.Writer) error {
	_, err := w.Write(t.tree().Bytes())
	return err
}

func (t *Trie[K, V]) tree() treeprint.Tree {
	type frame struct {
		n      *node[K, V]
		branch treeprint.Tree
	}

	var (
		root    = treeprint.NewWithRoot("<root>")
		toVisit = []frame{{t.root, root}}
	)

	if t.root.entry != nil {
		root.SetValue("<root> " + label(t.root))
	}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		f := toVisit[l-1]
		toVisit = toVisit[:l-1]

		// branches are added in order - treeprint keeps the insertion order
		for nib, child := range f.n.children {
			if child == nil {
				continue
			}

			meta := nibble.Concat(nibble.FromNibbles(byte(nib)), child.fragment)

			if child.bitmap == 0 {
				f.branch.AddMetaNode(meta, label(child))
				continue
			}

			toVisit = append(toVisit, frame{child, f.branch.AddMetaBranch(meta, label(child))})
		}
	}

	return root
}

func label[K comparable, V any](n *node[K, V]) string {
	if n.entry == nil {
		return "·"
	}

	return fmt.Sprintf("%#v: %v", n.entry.Key, n.entry.Val)
}
