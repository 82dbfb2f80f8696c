// Package slices holds slice helpers that the standard slices
// package does not have: flattening and grouping.
package slices

// Flatten turns a two-dimensional slice into a one-dimensional one,
// appending to flat. Example:
//
//	{ {1, 2, 3}, {4, 5}, {}, {6} } -> {1, 2, 3, 4, 5, 6}
func Flatten[E any, S ~[]E, SS ~[]S](super SS, flat S) []E {
	if flat == nil {
		n := 0
		for _, sl := range super {
			n += len(sl)
		}
		flat = make([]E, 0, n)
	}

	for _, sl := range super {
		flat = append(flat, sl...)
	}

	return flat
}
