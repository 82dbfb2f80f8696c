package counter

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// Entry represents an element-count pair.
type Entry[E comparable] struct {
	Element E
	Count   int
}

// entries is a heap of element-count pairs ordered by less.
type entries[E comparable] struct {
	s    []Entry[E]
	less func(a, b Entry[E]) bool
}

var _ heap.Interface = (*entries[int])(nil)

func (e *entries[_]) Len() int           { return len(e.s) }
func (e *entries[_]) Less(i, j int) bool { return e.less(e.s[i], e.s[j]) }
func (e *entries[_]) Swap(i, j int)      { e.s[i], e.s[j] = e.s[j], e.s[i] }

func (e *entries[E]) Push(x any) {
	e.s = append(e.s, x.(Entry[E]))
}

func (e *entries[E]) Pop() any {
	x := e.s[len(e.s)-1]
	e.s = e.s[:len(e.s)-1]
	return x
}

// heapk heaps the element-count pairs in ctr so that the first one
// by less is on top, then pops off k of them.
func heapk[E comparable](ctr map[E]int, k int, less func(a, b Entry[E]) bool) []Entry[E] {
	if k == 0 {
		return []Entry[E]{}
	} else if k > len(ctr) {
		panic("k is larger than number of elements in ctr")
	} else if k < 0 {
		panic("k is negative")
	}

	h := &entries[E]{
		s:    make([]Entry[E], 0, len(ctr)),
		less: less,
	}
	for el, cnt := range ctr {
		h.s = append(h.s, Entry[E]{Element: el, Count: cnt})
	}
	heap.Init(h)

	out := make([]Entry[E], k)
	for i := range out {
		out[i] = heap.Pop(h).(Entry[E])
	}

	return out
}

// byCount orders entries by count, highest first when desc is set,
// then by ascending element so equal counts come out the same way
// however the map iterates.
func byCount[E constraints.Ordered](desc bool) func(a, b Entry[E]) bool {
	return func(a, b Entry[E]) bool {
		if a.Count != b.Count {
			return (a.Count > b.Count) == desc
		}
		return a.Element < b.Element
	}
}

// TopK returns the k most-frequent elements from the counter,
// in descending order of frequency. Elements with the same count
// are in ascending order.
// TopK panics if k is negative or larger than len(ctr).
func TopK[E constraints.Ordered](ctr map[E]int, k int) []Entry[E] {
	return heapk(ctr, k, byCount[E](true))
}

// BottomK returns the k least-frequent elements from the counter,
// in ascending order of frequency. Ties are as in TopK.
func BottomK[E constraints.Ordered](ctr map[E]int, k int) []Entry[E] {
	return heapk(ctr, k, byCount[E](false))
}
