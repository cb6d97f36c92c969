package radix

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyCollision means two distinct keys were encoded into the same
	// bytes - the KeyCodec is broken.
	ErrKeyCollision = errors.New("distinct keys with the same encoding")
	// ErrBrokenInvariant is returned by CheckIntegrity.
	ErrBrokenInvariant = errors.New("trie invariant broken")
	// ErrKeyOutsideSubTrie is returned by SubTrie lookups for keys that do not
	// extend the subtrie prefix.
	ErrKeyOutsideSubTrie = errors.New("key is outside of the subtrie")
	// ErrNoCodec is returned when decoding into a trie created without New.
	ErrNoCodec = errors.New("trie has no key codec")
)

func checkKeys[K comparable](stored, key K) {
	if stored != key {
		panic(fmt.Errorf("%w: %#v and %#v", ErrKeyCollision, stored, key))
	}
}
