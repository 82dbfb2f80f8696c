package iterator

import (
	"errors"
	"fmt"
	"iter"
)

// ErrRemoveUnsupported is returned by Snapshot.Remove.
var ErrRemoveUnsupported = fmt.Errorf("iterator: remove: %w", errors.ErrUnsupported)

var _ Iterator[int] = (*Snapshot[int])(nil)

// Snapshot is an iterator over keys that were copied out of a tree
// when it was created.
// It is restartable only by asking the tree for a new one.
type Snapshot[T any] struct {
	items []T
	// index of the item returned by Item, -1 before the first Next
	at int
}

// NewSnapshot takes ownership of items; the caller must not modify
// the slice afterwards.
// Note: This is meant to be called by tree implementations.
func NewSnapshot[T any](items []T) *Snapshot[T] {
	return &Snapshot[T]{
		items: items,
		at:    -1,
	}
}

// Next advances the iterator and returns true if there is
// an item to read with Item.
func (i *Snapshot[T]) Next() bool {
	if i == nil {
		return false
	}
	if i.at < len(i.items) {
		i.at++
	}
	return i.at < len(i.items)
}

// Item returns the current item of the iterator.
func (i *Snapshot[T]) Item() T {
	return i.items[i.at]
}

// HasNext reports whether a following call to Next would return true,
// without advancing.
func (i *Snapshot[T]) HasNext() bool {
	return i != nil && i.at+1 < len(i.items)
}

// Len returns the number of items not yet returned by Next.
func (i *Snapshot[T]) Len() int {
	if !i.HasNext() {
		return 0
	}
	return len(i.items) - i.at - 1
}

// Remaining returns a copy of the items not yet returned by Next.
// It does not advance the iterator.
func (i *Snapshot[T]) Remaining() []T {
	out := make([]T, i.Len())
	if len(out) > 0 {
		copy(out, i.items[i.at+1:])
	}
	return out
}

// Remove always fails: the snapshot is detached from the tree.
func (i *Snapshot[T]) Remove() error {
	return ErrRemoveUnsupported
}

// Seq returns the remaining items as a range-over-func sequence.
// Ranging over it consumes the iterator.
func (i *Snapshot[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i.Next() {
			if !yield(i.Item()) {
				return
			}
		}
	}
}
