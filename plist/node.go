package plist

import "github.com/qjpcpu/persistent/assert"

type node[T any] struct {
	val  T
	next *node[T]
	// refs counts handles and nodes pointing here, 0 once reclaimed
	refs int
}

func newNode[T any](v T, next *node[T]) *node[T] {
	next.retain()
	return &node[T]{val: v, next: next, refs: 1}
}

func (n *node[T]) retain() {
	if n == nil {
		return
	}
	n.mustLive()
	n.refs++
}

func (n *node[T]) mustLive() {
	assert.ShouldBeTrue(n.refs > 0, "plist: use of released list")
}

// reclaim clears a node nobody owns and hands back its link
func (n *node[T]) reclaim() *node[T] {
	var zero T
	next := n.next
	n.val = zero
	n.next = nil
	return next
}
