// Package indexkit makes traversals index-aware.
//
// It covers two concerns:
//   - the index capability: one generic piece of code can accept either a
//     plain or an index-aware visit function, and plain functions keep
//     working wherever an index-aware one is expected,
//   - the index composition algebra: combinators that compose two
//     index-aware traversals while combining, discarding or remapping
//     their index values.
package indexkit

import (
	"github.com/np/lens"
)

// Func is the closed set of visit function forms the index capability accepts.
// Plain forms ignore the index, and forms without an error result never fail.
type Func[I, A, B any] interface {
	func(A) B | func(A) (B, error) | func(I, A) B | func(I, A) (B, error)
}

// WithIndex binds any accepted visit function form into the index-aware
// capability form. It is total: dispatching never fails on a well-typed input.
func WithIndex[I, A, B any, FN Func[I, A, B]](fn FN) lens.IxVisit[I, A, B] {
	switch fn := any(fn).(type) {
	case func(A) B:
		return func(_ I, a A) (B, error) {
			return fn(a), nil
		}
	case func(A) (B, error):
		return func(_ I, a A) (B, error) {
			return fn(a)
		}
	case func(I, A) B:
		return func(i I, a A) (B, error) {
			return fn(i, a), nil
		}
	case func(I, A) (B, error):
		return fn
	default:
		panic("unexpected")
	}
}

// NoIndex lets a plain traversal be used wherever an index-aware one is
// expected. The supplied index is the zero value of I on every visit.
func NoIndex[I, S, T, A, B any](t lens.Traversal[S, T, A, B]) lens.IxTraversal[I, S, T, A, B] {
	return func(visit lens.IxVisit[I, A, B], source S) (T, error) {
		var index I
		return t(func(a A) (B, error) {
			return visit(index, a)
		}, source)
	}
}

// Pair is the compound index of two nested traversals.
type Pair[O, I any] struct {
	Outer O
	Inner I
}

// ComposeWith composes two index-aware traversals sequentially,
// combining their indices with the supplied combine function.
// The outer traversal selects intermediate structures within the source,
// the inner one visits elements within each of those,
// and every visited element is identified by combine(outerIndex, innerIndex).
func ComposeWith[K, I, J, S, T, A, B, X, Y any](
	outer lens.IxTraversal[I, S, T, A, B],
	inner lens.IxTraversal[J, A, B, X, Y],
	combine func(I, J) K,
) lens.IxTraversal[K, S, T, X, Y] {
	return func(visit lens.IxVisit[K, X, Y], source S) (T, error) {
		return outer(func(i I, a A) (B, error) {
			return inner(func(j J, x X) (Y, error) {
				return visit(combine(i, j), x)
			}, a)
		}, source)
	}
}

// ComposePair composes two index-aware traversals,
// exposing the (outer, inner) index pair as compound positional identity,
// such as "row, column" for a table structure.
func ComposePair[I, J, S, T, A, B, X, Y any](
	outer lens.IxTraversal[I, S, T, A, B],
	inner lens.IxTraversal[J, A, B, X, Y],
) lens.IxTraversal[Pair[I, J], S, T, X, Y] {
	return ComposeWith(outer, inner, func(i I, j J) Pair[I, J] {
		return Pair[I, J]{Outer: i, Inner: j}
	})
}

// ComposeInner composes two index-aware traversals,
// keeping the inner traversal's index and discarding the outer one.
func ComposeInner[I, J, S, T, A, B, X, Y any](
	outer lens.IxTraversal[I, S, T, A, B],
	inner lens.IxTraversal[J, A, B, X, Y],
) lens.IxTraversal[J, S, T, X, Y] {
	return ComposeWith(outer, inner, func(_ I, j J) J {
		return j
	})
}

// ComposeOuter composes two index-aware traversals,
// keeping the outer traversal's index and discarding the inner one.
func ComposeOuter[I, J, S, T, A, B, X, Y any](
	outer lens.IxTraversal[I, S, T, A, B],
	inner lens.IxTraversal[J, A, B, X, Y],
) lens.IxTraversal[I, S, T, X, Y] {
	return ComposeWith(outer, inner, func(i I, _ J) I {
		return i
	})
}

// Reindex remaps the visible index of an index-aware traversal.
// It is used to normalise differing index types across traversal layers.
func Reindex[J, I, S, T, A, B any](
	t lens.IxTraversal[I, S, T, A, B],
	fn func(I) J,
) lens.IxTraversal[J, S, T, A, B] {
	return func(visit lens.IxVisit[J, A, B], source S) (T, error) {
		return t(func(i I, a A) (B, error) {
			return visit(fn(i), a)
		}, source)
	}
}
