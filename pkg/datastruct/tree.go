package datastruct

import (
	"github.com/np/lens"
	"github.com/np/lens/pkg/traversekit"
)

// Tree is a binary composite of leaf values.
// A Tree value is either a Leaf holding a single value,
// or a Node joining two subtrees. A nil Tree is empty.
type Tree[V any] interface{ tree() }

// Leaf is a Tree holding a single value at its position.
type Leaf[V any] struct{ Value V }

// Node is a Tree joining two subtrees.
type Node[V any] struct{ Left, Right Tree[V] }

func (Leaf[V]) tree() {}
func (Node[V]) tree() {}

// TraverseLeaves visits every leaf value in depth-first left-to-right order
// and reassembles a tree of the exact same shape from the visit outputs.
// It satisfies lens.Traversal[Tree[V], Tree[W], V, W].
func TraverseLeaves[V, W any](visit lens.Visit[V, W], t Tree[V]) (Tree[W], error) {
	switch n := t.(type) {
	case nil:
		return nil, nil
	case Leaf[V]:
		w, err := visit(n.Value)
		if err != nil {
			return nil, err
		}
		return Leaf[W]{Value: w}, nil
	case Node[V]:
		left, err := TraverseLeaves(visit, n.Left)
		if err != nil {
			return nil, err
		}
		right, err := TraverseLeaves(visit, n.Right)
		if err != nil {
			return nil, err
		}
		return Node[W]{Left: left, Right: right}, nil
	default:
		panic("datastruct: unknown Tree implementation")
	}
}

// TraverseLeavesAtDepth visits every leaf value in depth-first left-to-right
// order, reporting each leaf's structural depth as its index.
// A bare Leaf sits at depth zero, and each Node nesting adds one.
// It satisfies lens.IxTraversal[traversekit.Depth, Tree[V], Tree[W], V, W].
func TraverseLeavesAtDepth[V, W any](visit lens.IxVisit[traversekit.Depth, V, W], t Tree[V]) (Tree[W], error) {
	return leavesAtDepth(visit, t, 0)
}

func leavesAtDepth[V, W any](visit lens.IxVisit[traversekit.Depth, V, W], t Tree[V], depth traversekit.Depth) (Tree[W], error) {
	switch n := t.(type) {
	case nil:
		return nil, nil
	case Leaf[V]:
		w, err := visit(depth, n.Value)
		if err != nil {
			return nil, err
		}
		return Leaf[W]{Value: w}, nil
	case Node[V]:
		left, err := leavesAtDepth(visit, n.Left, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := leavesAtDepth(visit, n.Right, depth+1)
		if err != nil {
			return nil, err
		}
		return Node[W]{Left: left, Right: right}, nil
	default:
		panic("datastruct: unknown Tree implementation")
	}
}

// Leaves collects the leaf values in depth-first left-to-right order.
func Leaves[V any](t Tree[V]) []V {
	var (
		out     []V
		pending Stack[Tree[V]]
	)
	pending.Push(t)
	for !pending.IsEmpty() {
		current, _ := pending.Pop()
		switch n := current.(type) {
		case Leaf[V]:
			out = append(out, n.Value)
		case Node[V]:
			// push right first so the left subtree pops first
			pending.Push(n.Right, n.Left)
		}
	}
	return out
}

// TreeDepth returns the structural depth of the deepest leaf,
// or -1 for an empty tree.
func TreeDepth[V any](t Tree[V]) int {
	type frame struct {
		tree  Tree[V]
		depth int
	}
	var (
		deepest = -1
		pending Stack[frame]
	)
	pending.Push(frame{tree: t})
	for !pending.IsEmpty() {
		current, _ := pending.Pop()
		switch n := current.tree.(type) {
		case Leaf[V]:
			if deepest < current.depth {
				deepest = current.depth
			}
		case Node[V]:
			pending.Push(
				frame{tree: n.Right, depth: current.depth + 1},
				frame{tree: n.Left, depth: current.depth + 1},
			)
		}
	}
	return deepest
}
