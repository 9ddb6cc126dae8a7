// Package immutablekit supplies the traversal contract for the persistent
// containers of github.com/benbjohnson/immutable.
package immutablekit

import (
	"github.com/benbjohnson/immutable"

	"github.com/np/lens"
)

// TraverseList visits every element of the list front to back and builds a
// new list of the same length from the visit outputs.
// It satisfies lens.Traversal[*immutable.List[T], *immutable.List[U], T, U].
func TraverseList[T, U any](visit lens.Visit[T, U], list *immutable.List[T]) (*immutable.List[U], error) {
	builder := immutable.NewListBuilder[U]()
	if list == nil {
		return builder.List(), nil
	}
	itr := list.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		u, err := visit(v)
		if err != nil {
			return nil, err
		}
		builder.Append(u)
	}
	return builder.List(), nil
}

// SortedMapValues returns a key-indexed traversal over the values of an
// immutable.SortedMap. The map's own key ordering fixes the visitation
// order. The comparer is used to build the output map and may be nil for
// natural key types, matching immutable.NewSortedMap.
func SortedMapValues[K comparable, V, W any](comparer immutable.Comparer[K]) lens.IxTraversal[K, *immutable.SortedMap[K, V], *immutable.SortedMap[K, W], V, W] {
	return func(visit lens.IxVisit[K, V, W], m *immutable.SortedMap[K, V]) (*immutable.SortedMap[K, W], error) {
		builder := immutable.NewSortedMapBuilder[K, W](comparer)
		if m == nil {
			return builder.Map(), nil
		}
		itr := m.Iterator()
		for !itr.Done() {
			k, v, _ := itr.Next()
			w, err := visit(k, v)
			if err != nil {
				return nil, err
			}
			builder.Set(k, w)
		}
		return builder.Map(), nil
	}
}
