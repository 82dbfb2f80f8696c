package slices

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupBy(t *testing.T) {
	firstLetter := func(s string) byte { return s[0] }

	tests := []struct {
		name string
		data []string
		want [][]string
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name: "one group",
			data: []string{"alcatraz", "angel island"},
			want: [][]string{{"alcatraz", "angel island"}},
		},
		{
			name: "first appearance order",
			data: []string{"coit", "bay", "castro", "alcatraz", "bernal", "crissy"},
			want: [][]string{
				{"coit", "castro", "crissy"},
				{"bay", "bernal"},
				{"alcatraz"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupBy(tt.data, firstLetter))
		})
	}
}

func TestGroupAndOrderBy(t *testing.T) {
	type film struct {
		title string
		year  int
	}
	data := []film{
		{"The Rock", 1996},
		{"Vertigo", 1958},
		{"Bullitt", 1968},
		{"Mrs. Doubtfire", 1993},
		{"Harold and Maude", 1971},
		{"Dirty Harry", 1971},
	}

	decade := func(f film) int { return f.year / 10 * 10 }
	got := GroupAndOrderBy(data, decade)

	assert.Equal(t, [][]film{
		{{"Vertigo", 1958}},
		{{"Bullitt", 1968}},
		{{"Harold and Maude", 1971}, {"Dirty Harry", 1971}},
		{{"The Rock", 1996}, {"Mrs. Doubtfire", 1993}},
	}, got)

	byTitle := GroupAndOrderBy(data, func(f film) string { return strings.ToLower(f.title[:1]) })
	assert.Len(t, byTitle, 6)
	assert.Equal(t, "Bullitt", byTitle[0][0].title)
}
