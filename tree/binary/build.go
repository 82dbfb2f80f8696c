package binary

import (
	"errors"
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	tr := New[int]()
	for _, k := range rd.Perm(num) {
		tr.Add(k)
	}

	return tr
}

// BuildRandomBalanced is like BuildRandom, but keeps shuffling
// until the result is balanced, giving up after maxAttempts.
// The number of attempts made is returned along with the tree.
func BuildRandomBalanced(num int, seed int64, maxAttempts int) (*Tree[int], int, error) {
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := range keys {
		keys[i] = i
	}

	for attempts := 1; attempts <= maxAttempts; attempts++ {
		rd.Shuffle(num, func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})

		tr := New[int]()
		for _, k := range keys {
			tr.Add(k)
		}

		if tr.Balanced() {
			return tr, attempts, nil
		}
	}

	return nil, maxAttempts, fmt.Errorf("no balanced tree after %d attempts", maxAttempts)
}

// BuildFromPreAndInOrder rebuilds the tree whose pre-order traversal
// is pre and whose in-order traversal is in.
// Time O(N^2) Space O(N) (stack frames, worst case)
func BuildFromPreAndInOrder[S ~[]E, E constraints.Ordered](pre, in S) (*Tree[E], error) {
	tr := New[E]()

	if len(in) != len(pre) {
		return nil, errors.New("pre- and in-order traversals have different lengths")
	}

	seen := make(map[E]struct{}, len(in))
	for i, v := range in {
		if _, ok := seen[v]; ok {
			return nil, errors.New("duplicated key in in-order traversal")
		}
		if i > 0 && in[i-1] > v {
			return nil, errors.New("in-order traversal is not sorted")
		}
		seen[v] = struct{}{}
	}

	root, err := buildvisit(pre, in)
	if err != nil {
		return nil, err
	}

	tr.root = root
	tr.size = len(in)

	return tr, nil
}

func buildvisit[S ~[]E, E constraints.Ordered](pre, in S) (*node[E], error) {
	// N = len(pre) = len(in)
	// At least N calls to this function
	if len(pre) != len(in) {
		panic(fmt.Sprintf("invariant broken: "+
			"(len(pre) == %d) != (len(in) == %d)", len(pre), len(in)))
	}

	if len(pre) == 0 {
		return nil, nil
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		return nil, fmt.Errorf("key %v in pre-order traversal not found in in-order traversal", x)
	}

	n := &node[E]{key: x}

	var err error
	if n.left, err = buildvisit(pre[1:xi+1], in[:xi]); err != nil {
		return nil, err
	}
	if n.right, err = buildvisit(pre[xi+1:], in[xi+1:]); err != nil {
		return nil, err
	}

	return n, nil
}
