package radix

import (
	"github.com/aglyzov/go-radix/nibble"
)

// step is an element of a walk path: a node and the slot it occupies in
// its parent.
type step[K comparable, V any] struct {
	parent *node[K, V]
	nib    byte
	node   *node[K, V]
}

// walkPath records the nodes visited on the way down so that removal can
// restore the invariants bottom-up without function recursion.
type walkPath[K comparable, V any] struct {
	steps []step[K, V]
}

func newWalkPath[K comparable, V any]() *walkPath[K, V] {
	return &walkPath[K, V]{
		steps: make([]step[K, V], 0, 16),
	}
}

func (path *walkPath[K, V]) Append(parent *node[K, V], nib byte, n *node[K, V]) {
	path.steps = append(path.steps, step[K, V]{parent, nib, n})
}

// Pop removes the deepest step. ok is false when the path is empty.
func (path *walkPath[K, V]) Pop() (s step[K, V], ok bool) {
	num := len(path.steps)
	if num == 0 {
		return
	}

	s = path.steps[num-1]
	path.steps = path.steps[:num-1]

	return s, true
}

// Leaf returns the deepest node of the path.
func (path *walkPath[K, V]) Leaf() *node[K, V] {
	if num := len(path.steps); num > 0 {
		return path.steps[num-1].node
	}

	return nil
}

// trace walks from the root along the key recording every node it passes.
// Returns nil unless a node with exactly the key's path exists.
func trace[K comparable, V any](root *node[K, V], rest nibble.Path) *walkPath[K, V] {
	var (
		path = newWalkPath[K, V]()
		cur  = root
	)

	path.Append(nil, 0, root)

	for {
		common := rest.CommonPrefixLen(cur.fragment)

		if common < cur.fragment.Len() {
			return nil
		}

		rest = rest.Slice(common, rest.Len())

		if rest.IsEmpty() {
			return path
		}

		nib := rest.At(0)
		next := cur.child(nib)

		if next == nil {
			return nil
		}

		path.Append(cur, nib, next)

		cur = next
		rest = rest.Slice(1, rest.Len())
	}
}

// Remove deletes the key from the trie and returns its value (if any).
//
// Removing an absent key never changes the trie.
func (t *Trie[K, V]) Remove(key K) (V, bool) {
	var zero V

	path := trace(t.root, t.encode(key))
	if path == nil {
		return zero, false
	}

	target := path.Leaf()
	if target.entry == nil {
		return zero, false
	}

	checkKeys(target.entry.Key, key)

	val := target.entry.Val
	target.entry = nil
	t.size--

	compact(path)

	return val, true
}

// compact restores the compression invariant bottom-up along the path:
//
//   - a non-root node without a value and children is pruned from its parent,
//     and the parent is checked again;
//   - a non-root node without a value and with a single child is merged with
//     the child, which takes its place in the parent.
func compact[K comparable, V any](path *walkPath[K, V]) {
	for {
		s, ok := path.Pop()
		if !ok || s.parent == nil {
			return // the root is exempt
		}

		n := s.node

		if n.entry != nil {
			return
		}

		switch n.childCount() {
		case 0:
			s.parent.removeChild(s.nib)
			continue

		case 1:
			nib, child := n.onlyChild()

			child.fragment = nibble.Concat(n.fragment, nibble.FromNibbles(nib), child.fragment)
			s.parent.children[s.nib] = child
		}

		return
	}
}
