// Package iterator provides tree iterators for use
// by tree implementations.
//
// The iterators here replay a snapshot: the tree is walked once when
// the iterator is created and the keys are copied out. Mutating the
// tree afterwards is never observed by an existing iterator, and there
// is no way to mutate the tree through one.
package iterator

import (
	"go.lepak.sg/sfmovies/chops"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Next may be called any number of times.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.Iterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)
