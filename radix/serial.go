package radix

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"
)

// pair is the serialized form of a key-value pair: a JSON object or a
// two-element CBOR array.
type pair[K comparable, V any] struct {
	_   struct{} `cbor:",toarray"`
	Key K        `json:"key"`
	Val V        `json:"value"`
}

var cborEncMode = func() cbor.EncMode {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}

	return mode
}()

func (t *Trie[K, V]) pairs() []pair[K, V] {
	pairs := make([]pair[K, V], 0, t.size)

	for key, val := range t.All() {
		pairs = append(pairs, pair[K, V]{Key: key, Val: val})
	}

	return pairs
}

func (t *Trie[K, V]) load(pairs []pair[K, V]) {
	t.Clear()

	for _, p := range pairs {
		t.Insert(p.Key, p.Val)
	}
}

// MarshalJSON encodes the trie as a list of {"key":..., "value":...} objects
// in key order.
func (t *Trie[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.pairs())
}

// UnmarshalJSON replaces the content of the trie. The trie must have been
// created with New (or one of its variants) to have a key codec.
func (t *Trie[K, V]) UnmarshalJSON(data []byte) error {
	if t.codec == nil {
		return ErrNoCodec
	}

	var pairs []pair[K, V]

	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("radix: decoding JSON: %w", err)
	}

	t.load(pairs)

	return nil
}

// MarshalCBOR encodes the trie as a deterministic CBOR array of [key, value]
// arrays in key order.
func (t *Trie[K, V]) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(t.pairs())
}

// UnmarshalCBOR replaces the content of the trie. The trie must have been
// created with New (or one of its variants) to have a key codec.
func (t *Trie[K, V]) UnmarshalCBOR(data []byte) error {
	if t.codec == nil {
		return ErrNoCodec
	}

	var pairs []pair[K, V]

	if err := cbor.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("radix: decoding CBOR: %w", err)
	}

	t.load(pairs)

	return nil
}
