package radix

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

const fakeSeed = 1234567890

// getKeys returns `total` distinct fake keys. Most of them extend one of the
// previous keys so the trie gets plenty of shared prefixes.
func getKeys(total int) []string {
	var (
		fake = gofakeit.New(fakeSeed)
		seen = make(map[string]struct{}, total)
		keys = make([]string, 0, total)
	)

	for len(keys) < total {
		var key string

		switch {
		case len(keys) == 0 || fake.Number(0, 9) == 0:
			key = fake.Word()
		default:
			key = keys[fake.Number(0, len(keys)-1)] + fake.Letter()
		}

		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}

// requireCompressed walks the node tree checking that no node other than the
// root is empty or a mere connector to a single child.
func requireCompressed[K comparable, V any](t *testing.T, trie *Trie[K, V]) {
	t.Helper()

	require.NoError(t, trie.CheckIntegrity())

	toVisit := []*node[K, V]{trie.root}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		n := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if n != trie.root {
			require.True(t, n.hasValue() || n.childCount() >= 2, "node %v", n.fragment)
		}

		for _, child := range n.children {
			if child != nil {
				toVisit = append(toVisit, child)
			}
		}
	}
}

func collectKeys[K comparable, V any](trie *Trie[K, V]) []K {
	var keys []K

	for key := range trie.Keys() {
		keys = append(keys, key)
	}

	return keys
}
