// Package tree holds the ordering vocabulary shared by the tree
// implementations in its subpackages.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Comparable is implemented by keys that know how to order themselves.
// CompareTo returns a negative number, zero or a positive number when the
// receiver sorts before, together with or after the argument.
//
// Keys must not change their ordering while they are stored in a tree.
// A pointer key whose pointee is mutated in a way that affects CompareTo
// will silently break the tree's invariants.
type Comparable[T any] interface {
	CompareTo(T) int
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// Compare orders two naturally ordered values.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// OrderOf folds the result of a three-way comparison function
// (anything negative, zero, anything positive) into an Order.
func OrderOf(c int) Order {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}
