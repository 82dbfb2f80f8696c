// Package movie models films shot on location in San Francisco,
// and keeps them in an ordered list keyed by release year and title.
package movie

import (
	"errors"
	"fmt"
	"strings"

	"go.lepak.sg/sfmovies/tree"
)

const (
	MinYear = 1900
	MaxYear = 2020
)

var (
	ErrInvalidTitle    = errors.New("movie: title is empty")
	ErrInvalidYear     = fmt.Errorf("movie: year is not in [%d, %d]", MinYear, MaxYear)
	ErrInvalidActor    = errors.New("movie: actor name is blank")
	ErrInvalidLocation = errors.New("movie: location name is blank")
)

// Actor is a named cast member.
type Actor struct {
	name string
}

// NewActor returns an Actor with the given name, which must not be blank.
func NewActor(name string) (Actor, error) {
	if strings.TrimSpace(name) == "" {
		return Actor{}, ErrInvalidActor
	}
	return Actor{name: name}, nil
}

func (a Actor) Name() string {
	return a.name
}

func (a Actor) String() string {
	return a.name
}

// Location is a place a movie was filmed at, with an optional fun fact.
type Location struct {
	name    string
	funFact string
}

// NewLocation returns a Location. name must not be blank,
// funFact may be empty.
func NewLocation(name, funFact string) (Location, error) {
	if strings.TrimSpace(name) == "" {
		return Location{}, ErrInvalidLocation
	}
	return Location{name: name, funFact: funFact}, nil
}

func (l Location) Name() string {
	return l.name
}

func (l Location) FunFact() string {
	return l.funFact
}

func (l Location) String() string {
	if l.funFact == "" {
		return l.name
	}
	return l.name + " (" + l.funFact + ") "
}

// Movie is identified by its year and its title, ignoring case.
// Everything else is carried along.
type Movie struct {
	title    string
	year     int
	director string
	writer   string
	actors   []Actor

	locations []Location
}

var _ tree.Comparable[*Movie] = (*Movie)(nil)

// New returns a Movie with no locations. The title must be non-empty,
// the year must be within [MinYear, MaxYear], and a1 must be a valid
// actor. a2 and a3 may be nil.
func New(title string, year int, director, writer string, a1 Actor, a2, a3 *Actor) (*Movie, error) {
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	if a1.name == "" {
		return nil, fmt.Errorf("first actor: %w", ErrInvalidActor)
	}

	m := &Movie{
		title:    title,
		year:     year,
		director: director,
		writer:   writer,
		actors:   []Actor{a1},
	}
	for _, a := range []*Actor{a2, a3} {
		if a != nil {
			m.actors = append(m.actors, *a)
		}
	}

	return m, nil
}

func (m *Movie) Title() string    { return m.title }
func (m *Movie) Year() int        { return m.year }
func (m *Movie) Director() string { return m.director }
func (m *Movie) Writer() string   { return m.writer }

// Actors returns the cast, lead first.
func (m *Movie) Actors() []Actor {
	return append([]Actor(nil), m.actors...)
}

// AddLocation records another place the movie was filmed at.
func (m *Movie) AddLocation(l Location) error {
	if l.name == "" {
		return ErrInvalidLocation
	}
	m.locations = append(m.locations, l)
	return nil
}

// Locations returns the filming locations in the order they were added.
func (m *Movie) Locations() []Location {
	return append([]Location(nil), m.locations...)
}

// Compare orders movies by year, then by title ignoring case.
func Compare(a, b *Movie) int {
	switch {
	case a.year < b.year:
		return -1
	case a.year > b.year:
		return 1
	}
	return strings.Compare(strings.ToLower(a.title), strings.ToLower(b.title))
}

func (m *Movie) CompareTo(o *Movie) int {
	return Compare(m, o)
}

// hasActor reports whether any cast member's name contains keyword,
// ignoring case and surrounding space. keyword must already be
// lower case and trimmed.
func (m *Movie) hasActor(keyword string) bool {
	for _, a := range m.actors {
		if strings.Contains(strings.ToLower(strings.TrimSpace(a.name)), keyword) {
			return true
		}
	}
	return false
}

func (m *Movie) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s (%d) \n", m.title, m.year)
	sb.WriteString(strings.Repeat("-", 30))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "director:\t%s\n", m.director)
	fmt.Fprintf(&sb, "writer:\t%s\n", m.writer)
	sb.WriteString("starring:\t")
	for i, a := range m.actors {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.name)
	}
	sb.WriteString("\nfilmed on location at:\n")
	for _, l := range m.locations {
		fmt.Fprintf(&sb, "\t%s\n", l)
	}

	return sb.String()
}
