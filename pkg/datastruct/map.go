package datastruct

import (
	"cmp"
	"slices"

	"github.com/np/lens"
)

// Map is a plain map with convenience methods.
type Map[K comparable, V any] map[K]V

func (m Map[K, V]) Lookup(key K) (V, bool) {
	val, ok := m[key]
	return val, ok
}

func (m Map[K, V]) Get(key K) V { return m[key] }

func (m Map[K, V]) Set(key K, val V) { m[key] = val }

func (m Map[K, V]) Delete(key K) { delete(m, key) }

func (m Map[K, V]) Len() int { return len(m) }

func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// TraverseSortedValues visits every value of the map in ascending key order,
// reporting the key as the element's index,
// and assembles a new map with the same keys from the visit outputs.
// Sorting the keys makes the visitation order fixed, as the traversal
// contract requires. It satisfies
// lens.IxTraversal[K, Map[K, V], Map[K, W], V, W].
func TraverseSortedValues[K cmp.Ordered, V, W any](visit lens.IxVisit[K, V, W], m Map[K, V]) (Map[K, W], error) {
	if m == nil {
		return nil, nil
	}
	var (
		out  = make(Map[K, W], len(m))
		keys = m.Keys()
	)
	slices.Sort(keys)
	for _, key := range keys {
		w, err := visit(key, m[key])
		if err != nil {
			return nil, err
		}
		out[key] = w
	}
	return out, nil
}
