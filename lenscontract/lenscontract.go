// Package lenscontract provides the behavioral contract every traversable
// structure must honor when it supplies the lens.Traversal capability.
package lenscontract

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/np/lens"
	"github.com/np/lens/pkg/traversekit"
	"github.com/np/lens/port/contract"
	"github.com/np/lens/port/option"
)

// Subject bundles what a traversable structure supplies for verification.
type Subject[S, A any] struct {
	// MakeSource creates a populated instance of the structure.
	MakeSource func(tb testing.TB) S
	// Traversal is the structure's generic traversal capability.
	Traversal lens.Traversal[S, S, A, A]
	// DepthTraversal is the structure's depth-indexed traversal, when it has
	// real nesting to report. Left nil, the contract derives a single-level
	// one with traversekit.Deepen.
	DepthTraversal lens.IxTraversal[traversekit.Depth, S, S, A, A]
}

// Traversal returns the contract a lens.Traversal supplier must fulfil.
func Traversal[S, A any](mk contract.Make[Subject[S, A]], opts ...Option[S]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	subject := testcase.Let(s, func(t *testcase.T) Subject[S, A] {
		return mk(t)
	})
	source := testcase.Let(s, func(t *testcase.T) S {
		return subject.Get(t).MakeSource(t)
	})

	s.Test("rebuilding from the unmodified elements returns an equal structure", func(t *testcase.T) {
		reified, err := traversekit.Reify(subject.Get(t).Traversal, source.Get(t))
		assert.NoError(t, err)

		rebuilt, err := reified.Rebuild(reified.Elements())
		assert.NoError(t, err)
		c.assertEqual(t, source.Get(t), rebuilt)
	})

	s.Test("the visited elements are fixed by the structure, regardless of the visit function", func(t *testcase.T) {
		var recording []A
		_, err := subject.Get(t).Traversal(func(a A) (A, error) {
			recording = append(recording, a)
			return a, nil
		}, source.Get(t))
		assert.NoError(t, err)

		reified, err := traversekit.Reify(subject.Get(t).Traversal, source.Get(t))
		assert.NoError(t, err)
		assert.Equal(t, reified.Elements(), recording)
	})

	s.Test("sequential indexing assigns consecutive integer positions from zero", func(t *testcase.T) {
		var indices []int
		_, err := traversekit.Indexing(subject.Get(t).Traversal)(func(i int, a A) (A, error) {
			indices = append(indices, i)
			return a, nil
		}, source.Get(t))
		assert.NoError(t, err)

		for expected, got := range indices {
			assert.Equal(t, expected, got)
		}
	})

	s.Test("the wide counter indexer agrees with the machine word one", func(t *testcase.T) {
		var indices []int
		_, err := traversekit.IndexingBig(subject.Get(t).Traversal)(func(i traversekit.BigIndex, a A) (A, error) {
			n, ok := i.ToInt()
			assert.True(t, ok)
			indices = append(indices, n)
			return a, nil
		}, source.Get(t))
		assert.NoError(t, err)

		for expected, got := range indices {
			assert.Equal(t, expected, got)
		}
	})

	s.Test("level-order processing preserves the structure's shape", func(t *testcase.T) {
		rebuilt, err := traversekit.Levels(depthTraversal(subject.Get(t)), source.Get(t),
			func(position int, level traversekit.Level[A], value A) (A, error) {
				return value, nil
			})
		assert.NoError(t, err)
		c.assertEqual(t, source.Get(t), rebuilt)
	})

	s.Test("the flattened breadth-first sequence is a permutation of the depth-first one", func(t *testcase.T) {
		reified, err := traversekit.Reify(subject.Get(t).Traversal, source.Get(t))
		assert.NoError(t, err)

		var (
			flattened []A
			positions []int
		)
		_, err = traversekit.Levels(depthTraversal(subject.Get(t)), source.Get(t),
			func(position int, level traversekit.Level[A], value A) (A, error) {
				flattened = append(flattened, value)
				positions = append(positions, position)
				return value, nil
			})
		assert.NoError(t, err)

		assert.ContainExactly(t, reified.Elements(), flattened)
		for expected, got := range positions {
			assert.Equal(t, expected, got)
		}
	})

	s.Test("without depth information, breadth-first order equals depth-first order in a single level", func(t *testcase.T) {
		reified, err := traversekit.Reify(subject.Get(t).Traversal, source.Get(t))
		assert.NoError(t, err)

		var flattened []A
		_, err = traversekit.Levels(traversekit.Deepen(subject.Get(t).Traversal), source.Get(t),
			func(position int, level traversekit.Level[A], value A) (A, error) {
				assert.Equal(t, 0, level.Depth)
				assert.False(t, level.Deeper)
				flattened = append(flattened, value)
				return value, nil
			})
		assert.NoError(t, err)
		assert.Equal(t, reified.Elements(), flattened)
	})

	return s.AsSuite("lens.Traversal")
}

func depthTraversal[S, A any](sub Subject[S, A]) lens.IxTraversal[traversekit.Depth, S, S, A, A] {
	if sub.DepthTraversal != nil {
		return sub.DepthTraversal
	}
	return traversekit.Deepen(sub.Traversal)
}

type Option[S any] interface {
	option.Option[Config[S]]
}

type Config[S any] struct {
	// Equal overrides how the contract compares structures.
	// Structural comparison through go-cmp is the default.
	Equal func(expected, actual S) bool
}

var _ Option[any] = Config[any]{}

func (c Config[S]) Configure(o *Config[S]) {
	if c.Equal != nil {
		o.Equal = c.Equal
	}
}

func (c Config[S]) assertEqual(t *testcase.T, expected, actual S) {
	t.Helper()
	if c.Equal != nil {
		assert.True(t, c.Equal(expected, actual))
		return
	}
	assert.True(t, cmp.Equal(expected, actual), assert.Message(cmp.Diff(expected, actual)))
}
