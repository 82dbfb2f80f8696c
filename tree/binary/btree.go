package binary

import (
	"errors"
	"fmt"
	"reflect"

	"go.lepak.sg/sfmovies/tree"
	"golang.org/x/exp/constraints"
)

// ErrBulkUnsupported is returned by AddAll, RemoveAll and RetainAll.
// There is no merge policy for adding a collection that may contain
// keys already in the tree, so keys must be added one at a time.
var ErrBulkUnsupported = fmt.Errorf("binary: bulk operation: %w", errors.ErrUnsupported)

// Tree is an unbalanced binary search tree holding unique keys.
// It is not safe for concurrent use.
//
// Use New, NewFunc or NewComparable to create one; the zero Tree
// has no ordering and is not ready for use.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.left
//     will be less than N.key
//   - At any node N in the tree, all node keys in the subtree rooted at N.right
//     will be greater than N.key
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
//   - size is the number of nodes reachable from root
//
// The tree never rebalances. Inserting keys in sorted order builds a
// tree with height equal to its size, and the recursive operations will
// recurse that deep.
type Tree[E any] struct {
	// the tree is rooted here.
	// don't return nodes - client could mutate keys or children!
	root *node[E]
	size int
	cmp  func(a, b E) int
	// set when E has a nil value (pointers, interfaces, maps...)
	nillable bool
}

// node is owned by exactly one parent (or the tree, for the root).
type node[E any] struct {
	key         E
	left, right *node[E]
}

// New returns an empty tree ordered by the natural order of E.
// Floating point NaNs are not ordered and must not be used as keys.
func New[E constraints.Ordered]() *Tree[E] {
	return NewFunc(func(a, b E) int {
		return int(tree.Compare(a, b))
	})
}

// NewComparable returns an empty tree ordered by E's CompareTo method.
func NewComparable[E tree.Comparable[E]]() *Tree[E] {
	return NewFunc(func(a, b E) int {
		return a.CompareTo(b)
	})
}

// NewFunc returns an empty tree ordered by cmp, which must return a
// negative number, zero or a positive number when a sorts before,
// together with or after b. cmp must describe a total order.
func NewFunc[E any](cmp func(a, b E) int) *Tree[E] {
	if cmp == nil {
		panic("binary: nil comparison function")
	}

	return &Tree[E]{
		cmp:      cmp,
		nillable: nillable(reflect.TypeOf((*E)(nil)).Elem()),
	}
}

func nillable(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// isNil reports whether k is the nil value of a nillable E.
// A nil key is never stored and never matches anything.
func (t *Tree[E]) isNil(k E) bool {
	if !t.nillable {
		return false
	}

	v := reflect.ValueOf(any(k))
	// a nil interface E gives the zero Value
	if !v.IsValid() {
		return true
	}

	return nillable(v.Type()) && v.IsNil()
}

func (t *Tree[E]) compare(a, b E) tree.Order {
	return tree.OrderOf(t.cmp(a, b))
}

// Size returns the number of keys in the tree.
func (t *Tree[E]) Size() int {
	return t.size
}

// IsEmpty returns true if the tree holds no keys.
func (t *Tree[E]) IsEmpty() bool {
	return t.size == 0
}

// find returns the node holding k, or nil.
func (t *Tree[E]) find(k E) *node[E] {
	if t.isNil(k) {
		return nil
	}

	n := t.root

	for n != nil {
		switch t.compare(k, n.key) {
		case tree.Less:
			n = n.left
		case tree.Greater:
			n = n.right
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[E]) Contains(k E) bool {
	return t.find(k) != nil
}

// ContainsAny is Contains for callers holding an untyped value.
// It returns false if v is not an E.
func (t *Tree[E]) ContainsAny(v any) bool {
	k, ok := v.(E)
	if !ok {
		return false
	}
	return t.Contains(k)
}

// ContainsAll returns true if every one of keys is in the tree.
func (t *Tree[E]) ContainsAll(keys ...E) bool {
	for _, k := range keys {
		if !t.Contains(k) {
			return false
		}
	}
	return true
}

// Get returns the key stored in the tree that compares equal to k.
// For pointer keys this is the tree's own instance, which callers may
// use to update data that does not take part in the ordering.
// If there is no such key, p is the zero E and ok is false.
func (t *Tree[E]) Get(k E) (p E, ok bool) {
	n := t.find(k)
	if n == nil {
		return
	}
	return n.key, true
}

// Add inserts k into the tree.
// If k is already in the tree, or k is nil, Add returns false
// and the tree is left untouched.
func (t *Tree[E]) Add(k E) bool {
	if t.isNil(k) || t.Contains(k) {
		return false
	}

	t.root = t.add(t.root, k)
	t.size++

	return true
}

// add returns the subtree rooted at n with k inserted as a new leaf.
func (t *Tree[E]) add(n *node[E], k E) *node[E] {
	if n == nil {
		return &node[E]{key: k}
	}

	switch t.compare(k, n.key) {
	case tree.Less:
		n.left = t.add(n.left, k)
	case tree.Greater:
		n.right = t.add(n.right, k)
	case tree.Equal:
		panic("impossible")
	default:
		panic("unreachable")
	}

	return n
}

// Remove removes k from the tree.
// If k is not in the tree, Remove returns false.
func (t *Tree[E]) Remove(k E) bool {
	if !t.Contains(k) {
		return false
	}

	t.root = t.remove(t.root, k)

	return true
}

// RemoveAny is Remove for callers holding an untyped value.
// It returns false if v is not an E.
func (t *Tree[E]) RemoveAny(v any) bool {
	k, ok := v.(E)
	if !ok {
		return false
	}
	return t.Remove(k)
}

// remove returns the subtree rooted at n with k removed.
func (t *Tree[E]) remove(n *node[E], k E) *node[E] {
	if n == nil {
		return nil
	}

	switch t.compare(k, n.key) {
	case tree.Less:
		n.left = t.remove(n.left, k)
	case tree.Greater:
		n.right = t.remove(n.right, k)
	case tree.Equal:
		return t.unlink(n)
	default:
		panic("unreachable")
	}

	return n
}

// unlink returns what should take n's place in its parent.
func (t *Tree[E]) unlink(n *node[E]) *node[E] {
	switch {
	case n.left == nil && n.right == nil:
		t.size--
		return nil
	case n.left == nil:
		t.size--
		return n.right
	case n.right == nil:
		t.size--
		return n.left
	}

	// Two children: take over the key of the smallest node on the
	// right, then remove that node instead. It has no left child,
	// so the recursion ends in one of the cases above, which is
	// where size is decremented.
	succ := leftmost(n.right).key
	n.key = succ
	n.right = t.remove(n.right, succ)

	return n
}

// leftmost returns the node with the smallest key under n.
// n must not be nil.
func leftmost[E any](n *node[E]) *node[E] {
	if n == nil {
		panic("binary: leftmost of empty subtree, tree invariant broken")
	}

	for n.left != nil {
		n = n.left
	}

	return n
}

// rightmost returns the node with the largest key under n.
// n must not be nil.
func rightmost[E any](n *node[E]) *node[E] {
	if n == nil {
		panic("binary: rightmost of empty subtree, tree invariant broken")
	}

	for n.right != nil {
		n = n.right
	}

	return n
}

// Clear removes all keys from the tree.
func (t *Tree[E]) Clear() {
	t.root = nil
	t.size = 0
}

// AddAll is not supported. It always returns ErrBulkUnsupported
// and does not modify the tree.
func (t *Tree[E]) AddAll(keys ...E) error {
	return fmt.Errorf("AddAll: %w", ErrBulkUnsupported)
}

// RemoveAll is not supported. It always returns ErrBulkUnsupported
// and does not modify the tree.
func (t *Tree[E]) RemoveAll(keys ...E) error {
	return fmt.Errorf("RemoveAll: %w", ErrBulkUnsupported)
}

// RetainAll is not supported. It always returns ErrBulkUnsupported
// and does not modify the tree.
func (t *Tree[E]) RetainAll(keys ...E) error {
	return fmt.Errorf("RetainAll: %w", ErrBulkUnsupported)
}
