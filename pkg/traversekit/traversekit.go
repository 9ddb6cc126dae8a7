// Package traversekit builds concrete traversal machinery on top of the
// lens.Traversal contract: reified traversals that expose a traversal's
// elements as data, sequential indexing, and level-order reordering that
// presents elements breadth-first while splicing results back into the
// structure's natural depth-first positions.
package traversekit

import "github.com/np/lens/pkg/errorkit"

// ErrShapeMismatch signals that a rebuild pass did not traverse congruently
// with the recording pass. This is an internal invariant violation which
// cannot occur through correct use, so it surfaces as a panic value.
const ErrShapeMismatch errorkit.Error = "ErrShapeMismatch"

// ErrIndexOverflow is returned by the machine-word sequential indexer when a
// traversal visits more elements than the int range can index.
// Use IndexingBig for traversals expected to exceed it.
const ErrIndexOverflow errorkit.Error = "ErrIndexOverflow"

// ErrInvalidDepth signals a depth-indexed traversal that reported a negative
// structural depth, which breaks the level-order engine's contract.
const ErrInvalidDepth errorkit.Error = "ErrInvalidDepth"
