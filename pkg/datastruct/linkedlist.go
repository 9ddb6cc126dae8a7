package datastruct

import (
	"iter"

	"github.com/np/lens"
)

// LinkedList is a doubly linked list.
type LinkedList[T any] struct {
	head   *listNode[T]
	tail   *listNode[T]
	length int
}

type listNode[T any] struct {
	value T
	prev  *listNode[T]
	next  *listNode[T]
}

// Append adds the elements to the end of the list.
func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		node := &listNode[T]{value: v, prev: ll.tail}
		if ll.tail == nil {
			ll.head = node
		} else {
			ll.tail.next = node
		}
		ll.tail = node
		ll.length++
	}
}

// Length returns the number of elements in the list.
func (ll *LinkedList[T]) Length() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

// Iter yields the list's elements with their position, front to back.
func (ll *LinkedList[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if ll == nil {
			return
		}
		var index int
		for current := ll.head; current != nil; current = current.next {
			if !yield(index, current.value) {
				return
			}
			index++
		}
	}
}

// ToSlice returns the list's elements as a slice, front to back.
func (ll *LinkedList[T]) ToSlice() []T {
	var vs []T
	for _, v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// TraverseValues visits every element front to back and assembles a new
// list of the same length from the visit outputs.
// It satisfies lens.Traversal[*LinkedList[T], *LinkedList[U], T, U].
func TraverseValues[T, U any](visit lens.Visit[T, U], ll *LinkedList[T]) (*LinkedList[U], error) {
	var out LinkedList[U]
	for _, v := range ll.Iter() {
		u, err := visit(v)
		if err != nil {
			return nil, err
		}
		out.Append(u)
	}
	return &out, nil
}
