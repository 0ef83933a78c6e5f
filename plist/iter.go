package plist

import "iter"

// Iterator walk a list front to back without consuming it
type Iterator[T any] struct {
	cur *node[T]
}

// Iter start a fresh traversal from the head of l
func (l List[T]) Iter() *Iterator[T] {
	if l.head != nil {
		l.head.mustLive()
	}
	return &Iterator[T]{cur: l.head}
}

// Next return the next element, false once the list is exhausted
func (it *Iterator[T]) Next() (v T, ok bool) {
	if it.cur == nil {
		return v, false
	}
	it.cur.mustLive()
	v = it.cur.val
	it.cur = it.cur.next
	return v, true
}

func (it *Iterator[T]) skip() bool {
	if it.cur == nil {
		return false
	}
	it.cur.mustLive()
	it.cur = it.cur.next
	return true
}

// All return a range-over-func iterator, every range restarts from the head
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.Iter(); ; {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
