package radix

import (
	"math/bits"

	"github.com/hideo55/go-popcount"

	"github.com/aglyzov/go-radix/nibble"
)

const branchFactor = 16

// KV represents a key-value pair
type KV[K comparable, V any] struct {
	Key K
	Val V
}

// node is a single element of the trie.
//
// The nibble leading to a node is implied by its slot in the parent, so the
// full path of a node is:
//
//	<parent path> <slot nibble> <fragment>
//
// The root always has an empty fragment.
type node[K comparable, V any] struct {
	fragment nibble.Path
	entry    *KV[K, V] // nil unless a key ends exactly here
	bitmap   uint16    // occupied child slots
	children [branchFactor]*node[K, V]
}

func newLeaf[K comparable, V any](fragment nibble.Path, key K, val V) *node[K, V] {
	return &node[K, V]{
		fragment: fragment.Clone(),
		entry:    &KV[K, V]{Key: key, Val: val},
	}
}

func (n *node[K, V]) hasValue() bool {
	return n.entry != nil
}

func (n *node[K, V]) childCount() int {
	return int(popcount.Count(uint64(n.bitmap)))
}

func (n *node[K, V]) child(nib byte) *node[K, V] {
	return n.children[nib]
}

func (n *node[K, V]) setChild(nib byte, child *node[K, V]) {
	n.children[nib] = child
	n.bitmap |= 1 << nib
}

func (n *node[K, V]) removeChild(nib byte) {
	n.children[nib] = nil
	n.bitmap &^= 1 << nib
}

// onlyChild returns the lowest occupied slot and its child.
func (n *node[K, V]) onlyChild() (byte, *node[K, V]) {
	nib := byte(bits.TrailingZeros16(n.bitmap))

	return nib, n.children[nib]
}

// value returns the stored value checking that the stored key is the same as
// the given one.
func (n *node[K, V]) value(key K) (V, bool) {
	if n == nil || n.entry == nil {
		var zero V
		return zero, false
	}

	checkKeys(n.entry.Key, key)

	return n.entry.Val, true
}

// clear drops the value and all the children.
func (n *node[K, V]) clear() {
	n.entry = nil
	n.bitmap = 0
	n.children = [branchFactor]*node[K, V]{}
}
