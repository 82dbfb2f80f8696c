package slices

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// GroupBy splits data into groups of elements with the same key f(e).
// The groups are in order of the first appearance of their key in data,
// and elements keep their relative order within a group.
func GroupBy[K comparable, E any, S ~[]E](
	data S, f func(E) K,
) [][]E {
	// index into out, so out can grow without invalidating anything
	groups := make(map[K]int)
	var out [][]E

	for _, el := range data {
		key := f(el)
		i, ok := groups[key]
		if !ok {
			i = len(out)
			groups[key] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], el)
	}

	return out
}

// GroupAndOrderBy is like GroupBy, but the groups are sorted by key.
func GroupAndOrderBy[
	K constraints.Ordered, E any, S ~[]E,
](
	data S, f func(E) K,
) [][]E {
	out := GroupBy(data, f)

	slices.SortFunc(out, func(a, b []E) bool {
		return f(a[0]) < f(b[0])
	})

	return out
}
