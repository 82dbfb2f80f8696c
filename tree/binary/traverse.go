package binary

import (
	"iter"

	"go.lepak.sg/sfmovies/chops"
	"go.lepak.sg/sfmovies/tree/iterator"
)

type order int

const (
	inOrder order = iota
	preOrder
	postOrder
	reverseOrder
)

// collect copies every key out of the tree in the given order.
func (t *Tree[E]) collect(o order) []E {
	out := make([]E, 0, t.size)

	var visit func(n *node[E])
	visit = func(n *node[E]) {
		if n == nil {
			return
		}
		switch o {
		case inOrder:
			visit(n.left)
			out = append(out, n.key)
			visit(n.right)
		case preOrder:
			out = append(out, n.key)
			visit(n.left)
			visit(n.right)
		case postOrder:
			visit(n.left)
			visit(n.right)
			out = append(out, n.key)
		case reverseOrder:
			visit(n.right)
			out = append(out, n.key)
			visit(n.left)
		default:
			panic("unreachable")
		}
	}
	visit(t.root)

	return out
}

// ToSlice returns the keys of the tree in ascending order.
func (t *Tree[E]) ToSlice() []E {
	return t.collect(inOrder)
}

// Iterator returns an iterator over the keys in ascending order.
// The keys are captured when Iterator is called; changes to the tree
// after that are not seen by the iterator.
func (t *Tree[E]) Iterator() *iterator.Snapshot[E] {
	return iterator.NewSnapshot(t.collect(inOrder))
}

// PreorderIterator is like Iterator, but visits each node
// before its left and then its right subtree.
func (t *Tree[E]) PreorderIterator() *iterator.Snapshot[E] {
	return iterator.NewSnapshot(t.collect(preOrder))
}

// PostorderIterator is like Iterator, but visits each node
// after its left and then its right subtree.
func (t *Tree[E]) PostorderIterator() *iterator.Snapshot[E] {
	return iterator.NewSnapshot(t.collect(postOrder))
}

// DescendingIterator is like Iterator, but starts from the
// largest key and runs to the smallest.
func (t *Tree[E]) DescendingIterator() *iterator.Snapshot[E] {
	return iterator.NewSnapshot(t.collect(reverseOrder))
}

// All returns the keys in ascending order, for use with range:
//
//	for k := range someTree.All() {
//		...
//	}
//
// Each range over the returned sequence takes a fresh snapshot.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		t.Iterator().Seq()(yield)
	}
}

// Preorder is like All, in pre-order.
func (t *Tree[E]) Preorder() iter.Seq[E] {
	return func(yield func(E) bool) {
		t.PreorderIterator().Seq()(yield)
	}
}

// Postorder is like All, in post-order.
func (t *Tree[E]) Postorder() iter.Seq[E] {
	return func(yield func(E) bool) {
		t.PostorderIterator().Seq()(yield)
	}
}

// Backward is like All, in descending order.
func (t *Tree[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		t.DescendingIterator().Seq()(yield)
	}
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
// f must not modify the tree.
func (t *Tree[E]) InOrder(f func(k E) bool) {
	t.visitInOrder(t.root, f)
}

func (t *Tree[E]) visitInOrder(n *node[E], f func(k E) bool) bool {
	// Classic recursive in-order walk, without the snapshot.
	if n == nil {
		return true
	}

	if !t.visitInOrder(n.left, f) {
		return false
	}

	if !f(n.key) {
		return false
	}

	return t.visitInOrder(n.right, f)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// The goroutine reads from a snapshot, so the tree may be modified
// while the coroutine is running.
func (t *Tree[E]) InOrderCoroutine() chops.CoIterator[E] {
	return chops.CoIterate[E](t.Iterator())
}
