// Package plist implements a persistent singly-linked list: a value never
// changes once built, every operation that looks like a mutation returns a
// new List and leaves the old one valid. Lists derived from each other share
// their common tail instead of copying it.
//
// Each node keeps a count of its owners (list handles and the nodes linking
// to it). Prepend, Tail and Clone produce a new owned handle; Release gives
// a handle's ownership back and eagerly clears every node that nobody else
// owns. Release walks the chain in a loop and stops at the first node still
// owned elsewhere, so tearing down a list of millions of elements uses
// constant stack.
//
//	base := plist.Of(1, 2)
//	a := base.Prepend(10) // (10 1 2)
//	b := base.Prepend(20) // (20 1 2), shares (1 2) with a
//	a.Release()           // clears only the 10 node
//	fmt.Println(b)        // (20 1 2)
//
// Releasing is optional: a handle that is simply dropped is left to the
// garbage collector. A List is a small value; assigning it moves the
// handle, use Clone to obtain a second owner. Lists are not safe for
// concurrent use.
package plist
