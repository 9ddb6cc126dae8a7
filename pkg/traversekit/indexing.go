package traversekit

import (
	"github.com/np/lens"
	"github.com/np/lens/pkg/mathkit"
)

// Indexing instantiates a plain traversal as an index-aware one,
// supplying each visited element with a consecutive integer position,
// zero-based, in the exact order the underlying traversal visits them.
//
// The counter is bound by the int range: a traversal visiting more than
// mathkit.MaxInt[int]() elements fails with ErrIndexOverflow instead of
// wrapping around. Use IndexingBig past that bound.
func Indexing[S, T, A, B any](t lens.Traversal[S, T, A, B]) lens.IxTraversal[int, S, T, A, B] {
	return func(visit lens.IxVisit[int, A, B], source S) (T, error) {
		var counter int
		return t(func(a A) (B, error) {
			index := counter
			next, ok := mathkit.SumInt(counter, 1)
			if !ok {
				var zero B
				return zero, ErrIndexOverflow.F("the traversal exceeded the maximum int index of %d", mathkit.MaxInt[int]())
			}
			counter = next
			return visit(index, a)
		}, source)
	}
}

// BigIndex is the index type of the wide counter variant of Indexing.
type BigIndex = mathkit.BigInt[int]

// IndexingBig behaves exactly as Indexing,
// with an arbitrary-precision counter in place of the machine-word one.
func IndexingBig[S, T, A, B any](t lens.Traversal[S, T, A, B]) lens.IxTraversal[BigIndex, S, T, A, B] {
	return func(visit lens.IxVisit[BigIndex, A, B], source S) (T, error) {
		var counter BigIndex
		return t(func(a A) (B, error) {
			index := counter
			counter = counter.Inc()
			return visit(index, a)
		}, source)
	}
}
