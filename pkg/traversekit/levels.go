package traversekit

import (
	"maps"
	"slices"

	"github.com/np/lens"
	"github.com/np/lens/pkg/indexkit"
)

// Depth is the structural depth of a visited element.
// A depth-indexed traversal (lens.IxTraversal[Depth, ...]) must report each
// element's depth as its index: zero for elements at the structure's surface,
// incremented once per nesting step. Depth values must not be negative.
type Depth = int

// Level is a depth-indexed group of elements sharing the same structural
// depth. Within a group, elements keep the traversal's natural depth-first
// left-to-right order.
type Level[A any] struct {
	// Depth is the structural depth shared by every element of the group.
	Depth Depth
	// Values are the group's elements in depth-first left-to-right order.
	Values []A
	// Deeper reports whether further levels exist below this one.
	Deeper bool
}

// Deepen lifts a plain traversal into a depth-indexed one in which every
// element sits at depth zero. For flat structures breadth-first and
// depth-first order coincide, so the lifted traversal makes the level-order
// engine expose exactly one Level containing every element.
func Deepen[S, T, A, B any](t lens.Traversal[S, T, A, B]) lens.IxTraversal[Depth, S, T, A, B] {
	return indexkit.NoIndex[Depth](t)
}

// Levels decomposes the source structure's elements into depth-ordered
// groups and presents them to fn as a flattened breadth-first sequence:
// the whole shallowest level first, then the next one, and so on.
// Each call receives the element's position within that flattened sequence
// and the Level group it originates from.
//
// The outputs of fn are spliced back into the structure's original
// depth-first positions, so the rebuilt structure always keeps the exact
// shape of the source, with values reflecting breadth-first processing.
//
// An empty structure yields no levels and rebuilds unchanged.
func Levels[S, T, A, B any](
	t lens.IxTraversal[Depth, S, T, A, B],
	source S,
	fn func(position int, level Level[A], value A) (B, error),
) (T, error) {
	paired := indexkit.Reindex(t, func(d Depth) indexkit.Pair[Depth, struct{}] {
		return indexkit.Pair[Depth, struct{}]{Outer: d}
	})
	return ILevels(paired, source, func(position int, _ struct{}, level Level[A], value A) (B, error) {
		return fn(position, level, value)
	})
}

// ILevels is the index-aware form of Levels.
// The traversal's index pairs each element's structural depth with the
// caller's own index value, which is handed through to fn untouched while
// the depth drives the level grouping.
func ILevels[I, S, T, A, B any](
	t lens.IxTraversal[indexkit.Pair[Depth, I], S, T, A, B],
	source S,
	fn func(position int, index I, level Level[A], value A) (B, error),
) (T, error) {
	var zero T

	reified, err := ReifyIndexed(t, source)
	if err != nil {
		return zero, err
	}

	var (
		elements = reified.Elements()
		indices  = reified.Indices()
		grouping = make(map[Depth][]int) // recorded depth-first positions per depth
	)
	for position, index := range indices {
		if index.Outer < 0 {
			panic(ErrInvalidDepth.F("depth %d reported for element %d", index.Outer, position))
		}
		grouping[index.Outer] = append(grouping[index.Outer], position)
	}

	// walk the levels in strict depth order, shallowest first
	var (
		depths      = slices.Sorted(maps.Keys(grouping))
		replacement = make([]B, len(elements))
		position    int
	)
	for levelIndex, depth := range depths {
		level := Level[A]{
			Depth:  depth,
			Deeper: levelIndex < len(depths)-1,
		}
		for _, original := range grouping[depth] {
			level.Values = append(level.Values, elements[original])
		}
		for slot, original := range grouping[depth] {
			out, err := fn(position, indices[original].Inner, level, level.Values[slot])
			if err != nil {
				return zero, err
			}
			// splice back into the element's depth-first slot
			replacement[original] = out
			position++
		}
	}

	return reified.Rebuild(replacement)
}
