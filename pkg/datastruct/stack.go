package datastruct

// Stack is a slice backed LIFO stack.
type Stack[T any] []T

// IsEmpty checks if the stack is empty.
func (s *Stack[T]) IsEmpty() bool {
	return len(*s) == 0
}

// Push a new value onto the stack.
func (s *Stack[T]) Push(vs ...T) {
	*s = append(*s, vs...)
}

// Pop removes and returns the top element of the stack.
// It returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		return *new(T), false
	}
	index := len(*s) - 1
	element := (*s)[index]
	*s = (*s)[:index]
	return element, true
}

// Last returns the top stack element without removing it.
func (s *Stack[T]) Last() (T, bool) {
	if s.IsEmpty() {
		return *new(T), false
	}
	return (*s)[len(*s)-1], true
}
