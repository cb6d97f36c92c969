package radix

import (
	"github.com/aglyzov/go-radix/nibble"
)

// Trie is a compressed 16-ary prefix tree mapping keys to values.
//
// A Trie is not safe for concurrent use. Mutating a trie while iterating over
// it or while holding a SubTrie obtained from it is not allowed.
type Trie[K comparable, V any] struct {
	root  *node[K, V]
	size  int
	codec KeyCodec[K]
}

// New returns a new Trie optionally initialized with the given key-value pairs.
func New[K comparable, V any](codec KeyCodec[K], init ...KV[K, V]) *Trie[K, V] {
	t := &Trie[K, V]{
		root:  &node[K, V]{},
		codec: codec,
	}

	for _, kv := range init {
		t.Insert(kv.Key, kv.Val)
	}

	return t
}

// NewString returns a new Trie keyed by strings.
func NewString[V any](init ...KV[string, V]) *Trie[string, V] {
	return New(StringCodec[string](), init...)
}

// NewInt returns a new Trie keyed by ints ordered numerically.
func NewInt[V any](init ...KV[int, V]) *Trie[int, V] {
	return New(SignedCodec[int](), init...)
}

// NewUint64 returns a new Trie keyed by uint64 ordered numerically.
func NewUint64[V any](init ...KV[uint64, V]) *Trie[uint64, V] {
	return New(UnsignedCodec[uint64](), init...)
}

// Len returns the number of keys in the trie.
func (t *Trie[K, V]) Len() int {
	return t.size
}

func (t *Trie[K, V]) IsEmpty() bool {
	return t.size == 0
}

func (t *Trie[K, V]) encode(key K) nibble.Path {
	return nibble.FromBytes(t.codec.EncodeKey(key))
}

// Get returns a value associated with the given key.
func (t *Trie[K, V]) Get(key K) (V, bool) {
	return find(t.root, t.encode(key)).value(key)
}

// Has reports whether the key is present.
func (t *Trie[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Insert assigns a value to a key. Returns the previous value (if any).
func (t *Trie[K, V]) Insert(key K, val V) (V, bool) {
	var (
		cur  = t.root
		rest = t.encode(key)
	)

	for {
		common := rest.CommonPrefixLen(cur.fragment)

		if common < cur.fragment.Len() {
			// the key diverges inside the fragment - split the node:
			//
			//   [cur:"abcd"] -> [cur:"ab"] --c--> [tail:"d"]
			//                              `-x--> [leaf:...]
			//
			// cur keeps its place in the parent and becomes the intermediate.
			tail := &node[K, V]{
				fragment: cur.fragment.Slice(common+1, cur.fragment.Len()),
				entry:    cur.entry,
				bitmap:   cur.bitmap,
				children: cur.children,
			}

			branch := cur.fragment.At(common)

			cur.fragment = cur.fragment.Slice(0, common)
			cur.clear()
			cur.setChild(branch, tail)

			rest = rest.Slice(common, rest.Len())
			t.size++

			if rest.IsEmpty() {
				cur.entry = &KV[K, V]{Key: key, Val: val}
			} else {
				cur.setChild(rest.At(0), newLeaf(rest.Slice(1, rest.Len()), key, val))
			}

			var zero V
			return zero, false
		}

		rest = rest.Slice(common, rest.Len())

		if rest.IsEmpty() {
			// exact match
			if cur.entry != nil {
				checkKeys(cur.entry.Key, key)

				old := cur.entry.Val
				cur.entry.Val = val

				return old, true
			}

			cur.entry = &KV[K, V]{Key: key, Val: val}
			t.size++

			var zero V
			return zero, false
		}

		nib := rest.At(0)
		next := cur.child(nib)

		if next == nil {
			cur.setChild(nib, newLeaf(rest.Slice(1, rest.Len()), key, val))
			t.size++

			var zero V
			return zero, false
		}

		cur = next
		rest = rest.Slice(1, rest.Len())
	}
}

// Update applies fn to the value stored at key. If there is no such value it
// stores def instead.
func (t *Trie[K, V]) Update(key K, fn func(V) V, def V) {
	if n := find(t.root, t.encode(key)); n != nil && n.entry != nil {
		checkKeys(n.entry.Key, key)
		n.entry.Val = fn(n.entry.Val)

		return
	}

	t.Insert(key, def)
}

// Clear removes all the keys.
func (t *Trie[K, V]) Clear() {
	t.root = &node[K, V]{}
	t.size = 0
}

// Clone returns a deep copy of the trie. Values are copied by assignment.
func (t *Trie[K, V]) Clone() *Trie[K, V] {
	return t.CloneWith(func(v V) V { return v })
}

// CloneWith returns a deep copy of the trie using copyVal to duplicate values.
func (t *Trie[K, V]) CloneWith(copyVal func(V) V) *Trie[K, V] {
	type pair struct {
		src, dst *node[K, V]
	}

	var (
		clone = &Trie[K, V]{
			root:  &node[K, V]{},
			size:  t.size,
			codec: t.codec,
		}
		toVisit = []pair{{t.root, clone.root}}
	)

	// walk the tree without function recursion
	for l := len(toVisit); l > 0; l = len(toVisit) {
		p := toVisit[l-1]
		toVisit = toVisit[:l-1]

		p.dst.fragment = p.src.fragment.Clone()
		p.dst.bitmap = p.src.bitmap

		if p.src.entry != nil {
			p.dst.entry = &KV[K, V]{Key: p.src.entry.Key, Val: copyVal(p.src.entry.Val)}
		}

		for nib, child := range p.src.children {
			if child != nil {
				dup := &node[K, V]{}
				p.dst.children[nib] = dup
				toVisit = append(toVisit, pair{child, dup})
			}
		}
	}

	return clone
}

// find returns the node whose full path is exactly `rest` matched from n
// (n's own fragment included) or nil.
func find[K comparable, V any](n *node[K, V], rest nibble.Path) *node[K, V] {
	for n != nil {
		common := rest.CommonPrefixLen(n.fragment)

		if common < n.fragment.Len() {
			return nil // diverged
		}

		rest = rest.Slice(common, rest.Len())

		if rest.IsEmpty() {
			return n
		}

		n = n.child(rest.At(0))
		rest = rest.Slice(1, rest.Len())
	}

	return nil
}
