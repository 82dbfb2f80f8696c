package binary

import (
	"go.lepak.sg/sfmovies/tree"
)

// First returns the smallest key in the tree.
// If the tree is empty, p is the zero E and ok is false.
func (t *Tree[E]) First() (p E, ok bool) {
	if t.root == nil {
		return
	}
	return leftmost(t.root).key, true
}

// Last returns the largest key in the tree.
// If the tree is empty, p is the zero E and ok is false.
func (t *Tree[E]) Last() (p E, ok bool) {
	if t.root == nil {
		return
	}
	return rightmost(t.root).key, true
}

// Floor returns the largest key in the tree
// that is less than or equal to k. If k is present, k itself is
// returned rather than the stored key.
// If there is no such key, p is the zero E and ok is false.
func (t *Tree[E]) Floor(k E) (p E, ok bool) {
	if t.root == nil || t.isNil(k) {
		return
	}

	first := leftmost(t.root).key
	if t.compare(first, k) == tree.Greater {
		return
	}

	if t.find(k) != nil {
		return k, true
	}

	return t.floor(t.root, k)
}

func (t *Tree[E]) floor(n *node[E], k E) (p E, ok bool) {
	if n == nil {
		return
	}

	switch t.compare(k, n.key) {
	case tree.Less:
		return t.floor(n.left, k)
	case tree.Equal:
		return n.key, true
	case tree.Greater:
		// n is a candidate, but there may be a closer one on the right
		if p, ok = t.floor(n.right, k); ok {
			return
		}
		return n.key, true
	default:
		panic("unreachable")
	}
}

// Ceiling returns the smallest key in the tree
// that is greater than or equal to k. If k is present, k itself is
// returned rather than the stored key.
// If there is no such key, p is the zero E and ok is false.
func (t *Tree[E]) Ceiling(k E) (p E, ok bool) {
	if t.root == nil || t.isNil(k) {
		return
	}

	last := rightmost(t.root).key
	if t.compare(last, k) == tree.Less {
		return
	}

	if t.find(k) != nil {
		return k, true
	}

	return t.ceiling(t.root, k)
}

func (t *Tree[E]) ceiling(n *node[E], k E) (p E, ok bool) {
	if n == nil {
		return
	}

	switch t.compare(k, n.key) {
	case tree.Greater:
		return t.ceiling(n.right, k)
	case tree.Equal:
		return n.key, true
	case tree.Less:
		if p, ok = t.ceiling(n.left, k); ok {
			return
		}
		return n.key, true
	default:
		panic("unreachable")
	}
}

// Lower returns the largest key in the tree
// that is strictly less than k. k itself need not be in the tree,
// and if it is, it is never returned.
// If there is no such key, p is the zero E and ok is false.
func (t *Tree[E]) Lower(k E) (p E, ok bool) {
	if t.root == nil || t.isNil(k) {
		return
	}

	first := leftmost(t.root).key
	if t.compare(first, k) == tree.Greater {
		return
	}

	return t.lower(t.root, k)
}

func (t *Tree[E]) lower(n *node[E], k E) (p E, ok bool) {
	if n == nil {
		return
	}

	if t.compare(n.key, k) != tree.Less {
		// too big, everything lower is on the left
		return t.lower(n.left, k)
	}

	if p, ok = t.lower(n.right, k); ok {
		return
	}
	return n.key, true
}

// Higher returns the smallest key in the tree
// that is strictly greater than k.
// If there is no such key, p is the zero E and ok is false.
func (t *Tree[E]) Higher(k E) (p E, ok bool) {
	if t.root == nil || t.isNil(k) {
		return
	}

	last := rightmost(t.root).key
	if t.compare(last, k) != tree.Greater {
		return
	}

	return t.higher(t.root, k)
}

func (t *Tree[E]) higher(n *node[E], k E) (p E, ok bool) {
	if n == nil {
		return
	}

	if t.compare(n.key, k) != tree.Greater {
		return t.higher(n.right, k)
	}

	if p, ok = t.higher(n.left, k); ok {
		return
	}
	return n.key, true
}
