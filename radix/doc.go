// Package radix defines a generic radix trie (a compressed prefix tree) over
// keys of any type that can be encoded into bytes.
//
// Keys are turned into nibble paths by a KeyCodec and the trie branches on
// nibbles, 16 ways per node. Every node holds:
//
//   - fragment - the nibbles consumed between the node and its parent slot;
//   - entry    - the stored key-value pair (when a key ends exactly here);
//   - children - up to 16 child nodes indexed by the nibble after the fragment.
//
// The tree is kept compressed: apart from the root, no node exists without a
// value unless it has at least two children. Insertion splits fragments on
// divergence, removal prunes empty nodes and merges single-child ones, so the
// node layout is fully determined by the set of stored keys.
//
// Example trie:
//
//	                           ,-- 6 [16d]  "team"
//	<root> -- 7 [465] ·  ------+
//	                           `-- 7 [374]  "test" -- 6 [96e67]  "testing"
//
// The trie above contains the following keys:
//
//   - "team"  (74 65 61 6d)
//   - "test"  (74 65 73 74)
//   - "testing"
//
// Lookups, insertion and removal are iterative walks bounded by the key
// length in nibbles. Iteration visits keys in byte-lexicographic order of
// their encodings, shorter keys first.
//
// A Trie is meant to be owned by a single goroutine. SubTrie values are
// read-only views into it and must not outlive a modification.
package radix
