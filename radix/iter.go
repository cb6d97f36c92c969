package radix

import (
	"iter"
)

// All yields all the key-value pairs in byte-lexicographic order of the
// encoded keys. The trie must not be modified during the iteration.
func (t *Trie[K, V]) All() iter.Seq2[K, V] {
	return allOf(t.root)
}

// Keys yields all the keys in order.
func (t *Trie[K, V]) Keys() iter.Seq[K] {
	return keysOf(t.root)
}

// Values yields all the values in key order.
func (t *Trie[K, V]) Values() iter.Seq[V] {
	return valuesOf(t.root)
}

// Items returns all the key-value pairs in key order.
func (t *Trie[K, V]) Items() []KV[K, V] {
	items := make([]KV[K, V], 0, t.size)

	walkNodes(t.root, func(n *node[K, V]) bool {
		items = append(items, *n.entry)
		return true
	})

	return items
}

// Walk calls a handler for every key-value pair in key order.
// It returns whether all the pairs were visited.
// The handler can continue the process by returning true or abort with false.
func (t *Trie[K, V]) Walk(handler func(K, V) bool) bool {
	return walkNodes(t.root, func(n *node[K, V]) bool {
		return handler(n.entry.Key, n.entry.Val)
	})
}

func allOf[K comparable, V any](root *node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walkNodes(root, func(n *node[K, V]) bool {
			return yield(n.entry.Key, n.entry.Val)
		})
	}
}

func keysOf[K comparable, V any](root *node[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		walkNodes(root, func(n *node[K, V]) bool {
			return yield(n.entry.Key)
		})
	}
}

func valuesOf[K comparable, V any](root *node[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		walkNodes(root, func(n *node[K, V]) bool {
			return yield(n.entry.Val)
		})
	}
}

// walkNodes visits valued nodes in pre-order, children in ascending nibble
// order, until visit returns false.
func walkNodes[K comparable, V any](root *node[K, V], visit func(*node[K, V]) bool) bool {
	if root == nil {
		return true
	}

	// walk the tree without function recursion
	toVisit := []*node[K, V]{root}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		n := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if n.entry != nil && !visit(n) {
			return false
		}

		// push the children in reverse so the lowest nibble pops first
		for nib := branchFactor - 1; nib >= 0; nib-- {
			if child := n.children[nib]; child != nil {
				toVisit = append(toVisit, child)
			}
		}
	}

	return true
}
