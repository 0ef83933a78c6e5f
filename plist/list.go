package plist

import (
	"fmt"
	"strings"
)

// List is a handle on an immutable chain of nodes, the zero value is an empty list
type List[T any] struct {
	head *node[T]
}

// New return an empty list
func New[T any]() List[T] {
	return List[T]{}
}

// Of build a list holding vs in order, Of(1, 2, 3).Head() is 1
func Of[T any](vs ...T) List[T] {
	var head *node[T]
	for i := len(vs) - 1; i >= 0; i-- {
		// the new node takes over the only reference to head
		head = &node[T]{val: vs[i], next: head, refs: 1}
	}
	return List[T]{head: head}
}

// Prepend return a new list with v in front of l, l is left unchanged
func (l List[T]) Prepend(v T) List[T] {
	return List[T]{head: newNode(v, l.head)}
}

// Tail return the list without its first element, false if l is empty
func (l List[T]) Tail() (List[T], bool) {
	if l.head == nil {
		return List[T]{}, false
	}
	l.head.mustLive()
	next := l.head.next
	next.retain()
	return List[T]{head: next}, true
}

// Head return the first element, false if l is empty
func (l List[T]) Head() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	l.head.mustLive()
	return l.head.val, true
}

// Clone return another owner of the same chain
func (l List[T]) Clone() List[T] {
	l.head.retain()
	return List[T]{head: l.head}
}

// IsEmpty tell whether l has no element
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len count elements, O(n)
func (l List[T]) Len() int {
	var n int
	for it := l.Iter(); it.skip(); {
		n++
	}
	return n
}

// Slice copy elements front to back
func (l List[T]) Slice() []T {
	var out []T
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for it, first := l.Iter(), true; ; first = false {
		v, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(')')
	return sb.String()
}
