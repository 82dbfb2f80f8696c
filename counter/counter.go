// Package counter counts occurrences of elements in slices
// and returns their k most- or least-frequent elements.
package counter

// Counter counts occurrences of each element of the slice
// and returns a map of elements to their counts.
func Counter[S ~[]E, E comparable](slice S) map[E]int {
	c := make(map[E]int)

	for _, v := range slice {
		c[v]++
	}

	return c
}

// Add adds counters a and b together and returns a new counter.
// Neither a nor b is modified.
func Add[E comparable](a, b map[E]int) map[E]int {
	sum := make(map[E]int, len(a))

	for el, cnt := range a {
		sum[el] = cnt
	}
	for el, cnt := range b {
		sum[el] += cnt
	}

	return sum
}

// Total sums up all counts in the counter.
func Total[E comparable](ctr map[E]int) int {
	sum := 0

	for _, cnt := range ctr {
		sum += cnt
	}

	return sum
}
