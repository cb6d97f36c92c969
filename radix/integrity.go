package radix

import (
	"fmt"

	"github.com/aglyzov/go-radix/nibble"
)

// CheckIntegrity verifies the structural invariants of the trie. It visits
// every node and is meant for tests and debugging.
func (t *Trie[K, V]) CheckIntegrity() error {
	type frame struct {
		n    *node[K, V]
		path nibble.Path
	}

	if t.root == nil {
		return fmt.Errorf("%w: no root", ErrBrokenInvariant)
	}

	if !t.root.fragment.IsEmpty() {
		return fmt.Errorf("%w: root fragment %v", ErrBrokenInvariant, t.root.fragment)
	}

	var (
		count   int
		toVisit = []frame{{t.root, nibble.Path{}}}
	)

	for l := len(toVisit); l > 0; l = len(toVisit) {
		f := toVisit[l-1]
		toVisit = toVisit[:l-1]

		var (
			n      = f.n
			isRoot = n == t.root
			total  = 0
		)

		for nib, child := range n.children {
			occupied := n.bitmap&(1<<nib) != 0

			if occupied != (child != nil) {
				return fmt.Errorf("%w: bitmap %016b disagrees with slot %x at %v", ErrBrokenInvariant, n.bitmap, nib, f.path)
			}

			if child != nil {
				total++
				toVisit = append(toVisit, frame{child, nibble.Concat(f.path, nibble.FromNibbles(byte(nib)), child.fragment)})
			}
		}

		if !isRoot && n.entry == nil {
			switch total {
			case 0:
				return fmt.Errorf("%w: empty node at %v", ErrBrokenInvariant, f.path)
			case 1:
				return fmt.Errorf("%w: uncompressed node at %v", ErrBrokenInvariant, f.path)
			}
		}

		if n.entry != nil {
			count++

			if encoded := t.encode(n.entry.Key); !encoded.Equal(f.path) {
				return fmt.Errorf("%w: key %#v encodes to %v but is stored at %v", ErrBrokenInvariant, n.entry.Key, encoded, f.path)
			}
		}
	}

	if count != t.size {
		return fmt.Errorf("%w: counted %d keys, length is %d", ErrBrokenInvariant, count, t.size)
	}

	return nil
}
