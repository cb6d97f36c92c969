package radix

import (
	"github.com/aglyzov/go-radix/nibble"
)

// GetAncestor returns a view of the closest valued ancestor of the key: the
// node holding a value whose key is the longest prefix of the given key.
// A key present in the trie is its own closest ancestor.
func (t *Trie[K, V]) GetAncestor(key K) (SubTrie[K, V], bool) {
	full := t.encode(key)
	n, depth := ancestor(t.root, full, true)

	if n == nil {
		return SubTrie[K, V]{}, false
	}

	return t.view(n, full.Slice(0, depth)), true
}

// GetAncestorValue is a shortcut returning the value of GetAncestor.
func (t *Trie[K, V]) GetAncestorValue(key K) (V, bool) {
	full := t.encode(key)
	n, _ := ancestor(t.root, full, true)

	if n == nil {
		var zero V
		return zero, false
	}

	return n.entry.Val, true
}

// GetRawAncestor returns a view of the deepest node lying on the key's path
// whether it holds a value or not. At worst this is the whole trie.
func (t *Trie[K, V]) GetRawAncestor(key K) SubTrie[K, V] {
	full := t.encode(key)
	n, depth := ancestor(t.root, full, false)

	return t.view(n, full.Slice(0, depth))
}

// GetDescendant returns a view of the closest descendant of the key: the
// subtrie of the node matching the key exactly or, when the key ends inside a
// node's fragment, the subtrie of that node. The view's prefix is the full
// path of the node so it may be longer than the key.
//
// A key extending past a fragment it only partly matches has no descendant.
func (t *Trie[K, V]) GetDescendant(key K) (SubTrie[K, V], bool) {
	if t.IsEmpty() {
		return SubTrie[K, V]{}, false
	}

	var (
		full  = t.encode(key)
		rest  = full
		cur   = t.root
		depth int
	)

	for {
		common := rest.CommonPrefixLen(cur.fragment)

		if common == rest.Len() {
			// the key ends here - extend it with the remainder of the fragment
			prefix := nibble.Concat(full.Slice(0, depth+common), cur.fragment.Slice(common, cur.fragment.Len()))

			return t.view(cur, prefix), true
		}

		if common < cur.fragment.Len() {
			return SubTrie[K, V]{}, false // diverged
		}

		rest = rest.Slice(common, rest.Len())
		depth += common

		next := cur.child(rest.At(0))
		if next == nil {
			return SubTrie[K, V]{}, false
		}

		cur = next
		rest = rest.Slice(1, rest.Len())
		depth++
	}
}

// SubTrie returns a view of the node matching the key exactly, with or
// without a value.
func (t *Trie[K, V]) SubTrie(key K) (SubTrie[K, V], bool) {
	full := t.encode(key)

	if n := find(t.root, full); n != nil {
		return t.view(n, full), true
	}

	return SubTrie[K, V]{}, false
}

func (t *Trie[K, V]) view(n *node[K, V], prefix nibble.Path) SubTrie[K, V] {
	return SubTrie[K, V]{
		node:   n,
		prefix: prefix,
		codec:  t.codec,
	}
}

// ancestor walks along the key and returns the deepest fully matched node
// (only valued ones when valued is set) and the length of its full path.
func ancestor[K comparable, V any](root *node[K, V], rest nibble.Path, valued bool) (*node[K, V], int) {
	var (
		cur   = root
		best  *node[K, V]
		bestN int
		depth int
	)

	for {
		common := rest.CommonPrefixLen(cur.fragment)

		if common < cur.fragment.Len() {
			break
		}

		depth += common
		rest = rest.Slice(common, rest.Len())

		if !valued || cur.entry != nil {
			best, bestN = cur, depth
		}

		if rest.IsEmpty() {
			break
		}

		next := cur.child(rest.At(0))
		if next == nil {
			break
		}

		cur = next
		rest = rest.Slice(1, rest.Len())
		depth++
	}

	return best, bestN
}
