// Package lmap provides a map that remembers the order of its keys.
// Keys can be moved to the back of the order when they are used,
// which is what the lru package builds on.
package lmap

import "iter"

// LinkedMap is a map threaded through a doubly linked list.
// Iteration runs from the least recently placed key at the head
// to the most recently placed one at the tail.
// LinkedMap is not safe for concurrent use.
type LinkedMap[K comparable, V any] struct {
	m map[K]*entry[K, V]

	head, tail *entry[K, V]
}

type entry[K comparable, V any] struct {
	k K
	v V

	prev, next *entry[K, V]
}

// New returns a pointer to a new, empty LinkedMap.
func New[K comparable, V any]() *LinkedMap[K, V] {
	return &LinkedMap[K, V]{
		m: make(map[K]*entry[K, V]),
	}
}

func (l *LinkedMap[K, V]) unlink(e *entry[K, V]) {
	if l.head == nil || l.tail == nil {
		panic("lmap: unlink from empty list")
	}

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		if l.head != e {
			panic("lmap: entry has no prev but is not the head")
		}
		l.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		if l.tail != e {
			panic("lmap: entry has no next but is not the tail")
		}
		l.tail = e.prev
	}

	e.prev, e.next = nil, nil
}

func (l *LinkedMap[K, V]) pushBack(e *entry[K, V]) {
	if l.tail == nil {
		l.head, l.tail = e, e
		return
	}

	e.prev = l.tail
	l.tail.next = e
	l.tail = e
}

// Get is like `v, ok := l[k]`. If bump is true and k is present,
// k is moved to the tail.
func (l *LinkedMap[K, V]) Get(k K, bump bool) (v V, ok bool) {
	e, ok := l.m[k]
	if !ok {
		return
	}

	if bump && e != l.tail {
		l.unlink(e)
		l.pushBack(e)
	}

	return e.v, true
}

// Set is like `l[k] = v`. A new key goes to the tail. An existing key
// keeps its place, unless bump is true, in which case it is moved to
// the tail.
func (l *LinkedMap[K, V]) Set(k K, v V, bump bool) {
	if e, ok := l.m[k]; ok {
		e.v = v
		if bump && e != l.tail {
			l.unlink(e)
			l.pushBack(e)
		}
		return
	}

	e := &entry[K, V]{k: k, v: v}
	l.m[k] = e
	l.pushBack(e)
}

// Delete is like `delete(l, k)`, and reports whether k was present.
func (l *LinkedMap[K, _]) Delete(k K) bool {
	e, ok := l.m[k]
	if !ok {
		return false
	}

	l.unlink(e)
	delete(l.m, k)

	return true
}

// Len is like `len(l)`.
func (l *LinkedMap[_, _]) Len() int {
	return len(l.m)
}

// Head returns the key and value at the head. If pop is true, that entry
// is also removed. ok is false if the map is empty.
func (l *LinkedMap[K, V]) Head(pop bool) (k K, v V, ok bool) {
	e := l.head
	if e == nil {
		return
	}

	if pop {
		l.unlink(e)
		delete(l.m, e.k)
	}

	return e.k, e.v, true
}

// All returns the entries from head to tail, for use with range.
// The map must not be modified during the range.
func (l *LinkedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		i := l.Iterator()
		for i.Next() {
			if !yield(i.Entry()) {
				return
			}
		}
	}
}

// Iterator returns an iterator starting at the head:
//
//	i := l.Iterator()
//	for i.Next() {
//		k, v := i.Entry()
//		...
//	}
//
// A broken list that loops back on itself is detected and
// panics instead of iterating forever.
func (l *LinkedMap[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{head: l.head}
}

type Iterator[K comparable, V any] struct {
	head, cur, hare *entry[K, V]
}

// Next advances the iterator, and returns false at the end.
func (i *Iterator[K, V]) Next() bool {
	switch {
	case i.cur == nil && i.head == nil:
		return false
	case i.cur == nil:
		i.cur, i.hare = i.head, i.head
	case i.cur.next == nil:
		return false
	default:
		i.cur = i.cur.next
	}

	// the hare runs at twice the speed, and only catches up in a loop
	if i.hare != nil && i.hare.next != nil {
		i.hare = i.hare.next.next
	} else {
		i.hare = nil
	}
	if i.cur == i.hare {
		panic("lmap: cycle detected, iteration will not end")
	}

	return true
}

// Entry returns the current key and value.
func (i *Iterator[K, V]) Entry() (K, V) {
	return i.cur.k, i.cur.v
}
