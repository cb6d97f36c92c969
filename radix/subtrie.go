package radix

import (
	"fmt"
	"iter"

	"github.com/aglyzov/go-radix/nibble"
)

// SubTrie is a read-only view of a subtree. It borrows the nodes of the Trie
// it came from and becomes invalid once that trie is modified.
type SubTrie[K comparable, V any] struct {
	node   *node[K, V]
	prefix nibble.Path // full path from the trie root to the end of node
	codec  KeyCodec[K]
}

// Prefix returns the encoded path of the subtrie root.
func (st SubTrie[K, V]) Prefix() nibble.Path {
	return st.prefix
}

// Key returns the key stored at the subtrie root (if any).
func (st SubTrie[K, V]) Key() (K, bool) {
	if st.node == nil || st.node.entry == nil {
		var zero K
		return zero, false
	}

	return st.node.entry.Key, true
}

// Value returns the value stored at the subtrie root (if any).
func (st SubTrie[K, V]) Value() (V, bool) {
	if st.node == nil || st.node.entry == nil {
		var zero V
		return zero, false
	}

	return st.node.entry.Val, true
}

// IsLeaf reports whether the subtrie root has no children.
func (st SubTrie[K, V]) IsLeaf() bool {
	return st.node == nil || st.node.bitmap == 0
}

// Get returns a value associated with the given key. The key has to extend
// the subtrie prefix, ErrKeyOutsideSubTrie is returned otherwise.
func (st SubTrie[K, V]) Get(key K) (V, bool, error) {
	var zero V

	if st.node == nil {
		return zero, false, fmt.Errorf("%w: empty view", ErrKeyOutsideSubTrie)
	}

	full := nibble.FromBytes(st.codec.EncodeKey(key))

	if !full.HasPrefix(st.prefix) {
		return zero, false, fmt.Errorf("%w: %#v", ErrKeyOutsideSubTrie, key)
	}

	var (
		rest = full.Slice(st.prefix.Len(), full.Len())
		n    = st.node
	)

	if !rest.IsEmpty() {
		n = find(n.child(rest.At(0)), rest.Slice(1, rest.Len()))
	}

	val, ok := n.value(key)

	return val, ok, nil
}

// Len counts the keys stored in the subtrie. It visits every node.
func (st SubTrie[K, V]) Len() int {
	num := 0

	walkNodes(st.node, func(*node[K, V]) bool {
		num++
		return true
	})

	return num
}

// Children yields a view per child of the subtrie root in nibble order.
func (st SubTrie[K, V]) Children() iter.Seq[SubTrie[K, V]] {
	return func(yield func(SubTrie[K, V]) bool) {
		if st.node == nil {
			return
		}

		for nib, child := range st.node.children {
			if child == nil {
				continue
			}

			prefix := nibble.Concat(st.prefix, nibble.FromNibbles(byte(nib)), child.fragment)

			if !yield(SubTrie[K, V]{node: child, prefix: prefix, codec: st.codec}) {
				return
			}
		}
	}
}

// All yields all the key-value pairs of the subtrie in key order.
func (st SubTrie[K, V]) All() iter.Seq2[K, V] {
	return allOf(st.node)
}

// Keys yields all the keys of the subtrie in order.
func (st SubTrie[K, V]) Keys() iter.Seq[K] {
	return keysOf(st.node)
}

// Values yields all the values of the subtrie in key order.
func (st SubTrie[K, V]) Values() iter.Seq[V] {
	return valuesOf(st.node)
}

// Walk calls a handler for every key-value pair of the subtrie in key order.
// It returns whether all the pairs were visited.
func (st SubTrie[K, V]) Walk(handler func(K, V) bool) bool {
	return walkNodes(st.node, func(n *node[K, V]) bool {
		return handler(n.entry.Key, n.entry.Val)
	})
}
