package movie

import (
	"iter"
	"strings"

	"go.lepak.sg/sfmovies/tree/binary"
)

// List is an ordered collection of movies without duplicates.
// The zero List is not usable; use NewList.
type List struct {
	tree *binary.Tree[*Movie]
}

func NewList() *List {
	return &List{tree: binary.NewComparable[*Movie]()}
}

// Add inserts m. If an equal movie is already in the list, m is not
// inserted; instead its locations are added to the stored movie,
// and Add returns false.
func (l *List) Add(m *Movie) bool {
	if m == nil {
		return false
	}

	if stored, ok := l.tree.Get(m); ok {
		if stored != m {
			stored.locations = append(stored.locations, m.locations...)
		}
		return false
	}

	return l.tree.Add(m)
}

// Get returns the stored movie equal to m.
func (l *List) Get(m *Movie) (*Movie, bool) {
	return l.tree.Get(m)
}

func (l *List) Len() int {
	return l.tree.Size()
}

// All returns the movies in order, for use with range.
func (l *List) All() iter.Seq[*Movie] {
	return l.tree.All()
}

// Movies returns the movies in order.
func (l *List) Movies() []*Movie {
	return l.tree.ToSlice()
}

// Tree exposes the underlying tree, for diagnostics.
func (l *List) Tree() *binary.Tree[*Movie] {
	return l.tree
}

func (l *List) String() string {
	return l.tree.String()
}

// MatchingTitles returns the movies whose title contains keyword,
// ignoring case and surrounding space. The movies are shared with l,
// not copied. If keyword is blank or nothing matches, it returns nil.
func (l *List) MatchingTitles(keyword string) *List {
	return l.matching(keyword, func(m *Movie, kw string) bool {
		return strings.Contains(strings.ToLower(strings.TrimSpace(m.title)), kw)
	})
}

// MatchingActor is like MatchingTitles, but matches against the names
// of the cast.
func (l *List) MatchingActor(keyword string) *List {
	return l.matching(keyword, (*Movie).hasActor)
}

func (l *List) matching(keyword string, match func(*Movie, string) bool) *List {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return nil
	}

	out := NewList()
	for m := range l.tree.All() {
		if match(m, kw) {
			out.tree.Add(m)
		}
	}

	if out.Len() == 0 {
		return nil
	}
	return out
}
