package binary

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/xlab/treeprint"
	"go.lepak.sg/sfmovies/tree"
)

const (
	dumpIndent = "   "
	dumpBranch = "|--"
	dumpNil    = "null"
)

// Dump returns the shape of the tree, one node per line in pre-order.
// Children are indented under their parent, left before right, and a
// missing child is shown as null. Every line, the first included, is
// preceded by a newline, so the output starts with one and has no
// trailing newline. The tree built by adding 50, 30 and 70 dumps as:
//
//	50
//	|--30
//	   |--null
//	   |--null
//	|--70
//	   |--null
//	   |--null
//
// An empty tree dumps as a single null line.
func (t *Tree[E]) Dump() string {
	var sb strings.Builder

	dumpvisit(&sb, t.root, 0)

	return sb.String()
}

func dumpvisit[E any](sb *strings.Builder, n *node[E], depth int) {
	sb.WriteByte('\n')
	if depth > 0 {
		sb.WriteString(strings.Repeat(dumpIndent, depth-1))
		sb.WriteString(dumpBranch)
	}

	if n == nil {
		sb.WriteString(dumpNil)
		return
	}

	sb.WriteString(fmt.Sprint(n.key))

	dumpvisit(sb, n.left, depth+1)
	dumpvisit(sb, n.right, depth+1)
}

// String returns the keys in ascending order, one per line.
func (t *Tree[E]) String() string {
	if t.root == nil {
		return "Empty list."
	}

	var sb strings.Builder
	t.InOrder(func(k E) bool {
		sb.WriteString(fmt.Sprint(k))
		sb.WriteByte('\n')
		return true
	})

	return sb.String()
}

// Pretty returns a box-drawing rendering of the tree, with each child
// labelled L or R. A complete binary tree with height 2 looks like this:
//
//	4
//	├── L 2
//	│   ├── L 1
//	│   └── R 3
//	└── R 6
//	    ├── L 5
//	    └── R 7
func (t *Tree[E]) Pretty() string {
	if t.root == nil {
		return ""
	}

	pt := treeprint.NewWithRoot(fmt.Sprint(t.root.key))
	prettyvisit(pt, t.root)

	return pt.String()
}

func prettyvisit[E any](pt treeprint.Tree, n *node[E]) {
	for _, c := range []struct {
		side  string
		child *node[E]
	}{{"L", n.left}, {"R", n.right}} {
		if c.child == nil {
			continue
		}

		label := c.side + " " + fmt.Sprint(c.child.key)
		if c.child.left == nil && c.child.right == nil {
			pt.AddNode(label)
		} else {
			prettyvisit(pt.AddBranch(label), c.child)
		}
	}
}

// Height returns the actual height of the tree, and the smallest
// height a binary tree with the same number of keys could have.
// An empty tree has height 0 and a single node has height 1.
func (t *Tree[E]) Height() (actual, ideal int) {
	return height(t.root), bits.Len(uint(t.size))
}

func height[E any](n *node[E]) int {
	if n == nil {
		return 0
	}

	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Balanced returns true if the tree is as short as it can be
// for the number of keys it holds.
func (t *Tree[E]) Balanced() bool {
	actual, ideal := t.Height()
	return actual == ideal
}

// Check walks the whole tree and returns an error describing the first
// broken invariant it finds: a key on the wrong side of an ancestor,
// a duplicate key, a nil key, or a size that does not match the
// number of nodes.
func (t *Tree[E]) Check() error {
	count := 0
	if err := t.checkvisit(t.root, nil, nil, &count); err != nil {
		return err
	}

	if count != t.size {
		return fmt.Errorf("size is %d but tree has %d nodes", t.size, count)
	}

	return nil
}

// checkvisit checks that every key under n is strictly between
// lo and hi, where nil means unbounded.
func (t *Tree[E]) checkvisit(n *node[E], lo, hi *E, count *int) error {
	if n == nil {
		return nil
	}
	*count++

	if t.isNil(n.key) {
		return errors.New("nil key in tree")
	}
	if lo != nil && t.compare(n.key, *lo) != tree.Greater {
		return fmt.Errorf("key %v is not greater than ancestor %v", n.key, *lo)
	}
	if hi != nil && t.compare(n.key, *hi) != tree.Less {
		return fmt.Errorf("key %v is not less than ancestor %v", n.key, *hi)
	}

	if err := t.checkvisit(n.left, lo, &n.key, count); err != nil {
		return err
	}
	return t.checkvisit(n.right, &n.key, hi, count)
}
