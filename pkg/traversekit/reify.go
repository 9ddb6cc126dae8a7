package traversekit

import (
	"github.com/np/lens"
	"github.com/np/lens/pkg/indexkit"
)

// Reify turns a traversal into a concrete, inspectable value by running it
// once with a recording visit function. The recorded elements are available
// through Elements, and Rebuild reconstructs the target structure from a
// replacement sequence of the same length and order.
func Reify[S, T, A, B any](t lens.Traversal[S, T, A, B], source S) (*Reified[S, T, A, B], error) {
	ix, err := ReifyIndexed(indexkit.NoIndex[struct{}](t), source)
	if err != nil {
		return nil, err
	}
	return &Reified[S, T, A, B]{ix: ix}, nil
}

// Reified holds the ordered sequence of elements a traversal visits from a
// given source, plus the ability to rebuild the target structure from a
// replacement sequence.
type Reified[S, T, A, B any] struct {
	ix *IxReified[struct{}, S, T, A, B]
}

// Elements returns the visited elements in the traversal's natural
// (depth-first) order. The returned slice is shared, do not modify it.
func (r *Reified[S, T, A, B]) Elements() []A { return r.ix.Elements() }

// Len returns the number of elements the traversal visits.
func (r *Reified[S, T, A, B]) Len() int { return r.ix.Len() }

// Rebuild reconstructs the target structure by substituting each visited
// element's slot with the replacement value at the same position.
//
// The replacement sequence must match the recorded element count exactly;
// any length mismatch panics with ErrShapeMismatch,
// as it proves the two passes did not traverse the same structure congruently.
func (r *Reified[S, T, A, B]) Rebuild(values []B) (T, error) { return r.ix.Rebuild(values) }

// ReifyIndexed is Reify for index-aware traversals,
// additionally recording the index supplied with each visited element.
func ReifyIndexed[I, S, T, A, B any](t lens.IxTraversal[I, S, T, A, B], source S) (*IxReified[I, S, T, A, B], error) {
	r := &IxReified[I, S, T, A, B]{traverse: t, source: source}
	_, err := t(func(i I, a A) (B, error) {
		r.indices = append(r.indices, i)
		r.elements = append(r.elements, a)
		var zero B
		return zero, nil
	}, source)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// IxReified is the index-aware form of Reified.
type IxReified[I, S, T, A, B any] struct {
	traverse lens.IxTraversal[I, S, T, A, B]
	source   S
	indices  []I
	elements []A
}

// Elements returns the visited elements in the traversal's natural
// (depth-first) order. The returned slice is shared, do not modify it.
func (r *IxReified[I, S, T, A, B]) Elements() []A { return r.elements }

// Indices returns the index recorded for each visited element,
// positionally aligned with Elements.
func (r *IxReified[I, S, T, A, B]) Indices() []I { return r.indices }

// Len returns the number of elements the traversal visits.
func (r *IxReified[I, S, T, A, B]) Len() int { return len(r.elements) }

// Rebuild replays the traversal with a cursor over the replacement sequence,
// consuming one value per visit in the recorded order.
// Any length mismatch panics with ErrShapeMismatch.
func (r *IxReified[I, S, T, A, B]) Rebuild(values []B) (T, error) {
	if len(values) != len(r.elements) {
		panic(ErrShapeMismatch.F("expected %d replacement value(s), got %d", len(r.elements), len(values)))
	}
	var cursor int
	return r.traverse(func(I, A) (B, error) {
		if len(values) <= cursor {
			panic(ErrShapeMismatch.F("replacement sequence exhausted after %d value(s)", cursor))
		}
		value := values[cursor]
		cursor++
		return value, nil
	}, r.source)
}
