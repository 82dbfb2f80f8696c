package binary

import (
	"go.lepak.sg/sfmovies/tree"
)

// Equal reports whether t and other hold the same keys, compared
// with t's ordering. The shape of the trees does not matter: two trees
// built from the same keys inserted in different orders are equal.
func (t *Tree[E]) Equal(other *Tree[E]) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.size != other.size {
		return false
	}

	a, b := t.collect(inOrder), other.collect(inOrder)
	if len(a) != len(b) {
		// size is out of sync with the nodes
		panic("impossible")
	}

	for i := range a {
		if t.compare(a[i], b[i]) != tree.Equal {
			return false
		}
	}

	return true
}

// Clone returns a copy of the tree with the same shape and keys.
// The copy has its own nodes, so adding to or removing from one tree
// never affects the other. Keys are copied by value: if E is a pointer,
// both trees point at the same elements.
func (t *Tree[E]) Clone() *Tree[E] {
	return &Tree[E]{
		root:     cloneNode(t.root),
		size:     t.size,
		cmp:      t.cmp,
		nillable: t.nillable,
	}
}

func cloneNode[E any](n *node[E]) *node[E] {
	if n == nil {
		return nil
	}

	return &node[E]{
		key:   n.key,
		left:  cloneNode(n.left),
		right: cloneNode(n.right),
	}
}
