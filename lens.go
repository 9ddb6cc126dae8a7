// Package lens defines the traversal contract that every traversable
// structure must supply, and nothing else.
//
// A traversal is a single polymorphic operation: given a visit function and a
// source structure, apply the function to every element the structure
// considers traversable, in a fixed, type-defined order, and reassemble the
// target structure from the function's outputs.
// Everything in this module - index bookkeeping, reification, level-order
// reordering - is built on top of this one capability,
// so a structure only needs to implement it once.
//
// The visit function's effect is arbitrary:
// it may transform, record into a captured collector, or replay from a cursor.
// A traversal implementation must not depend on what the visit function does,
// only on calling it once per element and using its outputs.
package lens

// Visit is the per-element transformation a Traversal applies.
type Visit[A, B any] func(A) (B, error)

// Traversal visits every element of the source structure with the given
// visit function and reassembles the target structure from the outputs,
// preserving the source's shape.
//
// The number of visited elements and their order is fixed by the structure,
// and must be independent of the visit function supplied.
type Traversal[S, T, A, B any] func(visit Visit[A, B], source S) (T, error)

// IxVisit is the index-aware form of Visit.
// The index identifies the element's position within the traversal,
// and its representation is up to the traversal that produces it.
type IxVisit[I, A, B any] func(index I, value A) (B, error)

// IxTraversal is the index-aware form of Traversal.
// It supplies a fresh index value alongside each visited element.
type IxTraversal[I, S, T, A, B any] func(visit IxVisit[I, A, B], source S) (T, error)

// Compose chains two traversals sequentially:
// the outer traversal selects intermediate structures within the source,
// and the inner traversal visits elements within each of those.
func Compose[S, T, A, B, X, Y any](
	outer Traversal[S, T, A, B],
	inner Traversal[A, B, X, Y],
) Traversal[S, T, X, Y] {
	return func(visit Visit[X, Y], source S) (T, error) {
		return outer(func(a A) (B, error) {
			return inner(visit, a)
		}, source)
	}
}
