// Package stats summarizes a movie list: who appears most,
// where filming happens most, and how many movies each year has.
package stats

import (
	"fmt"
	"io"
	"text/tabwriter"

	"go.lepak.sg/sfmovies/counter"
	"go.lepak.sg/sfmovies/movie"
	"go.lepak.sg/sfmovies/slices"
)

type YearCount struct {
	Year   int
	Movies int
}

type Summary struct {
	Movies    int
	Locations int

	// TopActors counts every role, TopLeads only the first billed.
	TopActors    []counter.Entry[string]
	TopLeads     []counter.Entry[string]
	TopLocations []counter.Entry[string]

	// RareLocations are the least-filmed places.
	RareLocations []counter.Entry[string]

	ByYear []YearCount
}

// topK and bottomK ask for no more than there is.
func topK(ctr map[string]int, k int) []counter.Entry[string] {
	return counter.TopK(ctr, min(k, len(ctr)))
}

func bottomK(ctr map[string]int, k int) []counter.Entry[string] {
	return counter.BottomK(ctr, min(k, len(ctr)))
}

// Compute summarizes list, keeping k entries in each ranking.
func Compute(list *movie.List, k int) Summary {
	movies := list.Movies()

	var (
		leads      = make([]string, 0, len(movies))
		supporting = make([][]string, 0, len(movies))
		places     = make([][]string, 0, len(movies))
	)
	for _, m := range movies {
		actors := m.Actors()
		leads = append(leads, actors[0].Name())

		var rest []string
		for _, a := range actors[1:] {
			rest = append(rest, a.Name())
		}
		supporting = append(supporting, rest)

		var names []string
		for _, l := range m.Locations() {
			names = append(names, l.Name())
		}
		places = append(places, names)
	}

	leadCtr := counter.Counter(leads)
	actorCtr := counter.Add(leadCtr, counter.Counter(slices.Flatten(supporting, nil)))
	placeCtr := counter.Counter(slices.Flatten(places, nil))

	s := Summary{
		Movies:        len(movies),
		Locations:     counter.Total(placeCtr),
		TopActors:     topK(actorCtr, k),
		TopLeads:      topK(leadCtr, k),
		TopLocations:  topK(placeCtr, k),
		RareLocations: bottomK(placeCtr, k),
	}

	for _, group := range slices.GroupAndOrderBy(movies, (*movie.Movie).Year) {
		s.ByYear = append(s.ByYear, YearCount{Year: group[0].Year(), Movies: len(group)})
	}

	return s
}

// Write prints the summary as aligned columns.
func (s Summary) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "movies:\t%d\n", s.Movies)
	fmt.Fprintf(tw, "locations:\t%d\n", s.Locations)

	for _, r := range []struct {
		title   string
		entries []counter.Entry[string]
	}{
		{"top actors", s.TopActors},
		{"top leads", s.TopLeads},
		{"top locations", s.TopLocations},
		{"least-filmed locations", s.RareLocations},
	} {
		fmt.Fprintf(tw, "\n%s:\n", r.title)
		for _, e := range r.entries {
			fmt.Fprintf(tw, "\t%s\t%d\n", e.Element, e.Count)
		}
	}

	fmt.Fprint(tw, "\nmovies per year:\n")
	for _, y := range s.ByYear {
		fmt.Fprintf(tw, "\t%d\t%d\n", y.Year, y.Movies)
	}

	return tw.Flush()
}
