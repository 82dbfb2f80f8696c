package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var shoots = Counter([]string{
	"Alcatraz Island", "City Hall", "Alcatraz Island", "Lombard Street",
	"Coit Tower", "City Hall", "Alcatraz Island", "Fort Point",
})

func TestTopK(t *testing.T) {
	tests := []struct {
		name string
		ctr  map[string]int
		k    int
		want []Entry[string]
	}{
		{
			name: "k zero",
			ctr:  shoots,
			want: []Entry[string]{},
		},
		{
			name: "nil counter",
			want: []Entry[string]{},
		},
		{
			name: "most filmed",
			ctr:  shoots,
			k:    2,
			want: []Entry[string]{
				{Element: "Alcatraz Island", Count: 3},
				{Element: "City Hall", Count: 2},
			},
		},
		{
			name: "ties in name order",
			ctr:  shoots,
			k:    4,
			want: []Entry[string]{
				{Element: "Alcatraz Island", Count: 3},
				{Element: "City Hall", Count: 2},
				{Element: "Coit Tower", Count: 1},
				{Element: "Fort Point", Count: 1},
			},
		},
		{
			name: "all equal",
			ctr:  map[string]int{"Pier 39": 1, "Ferry Building": 1, "Presidio": 1},
			k:    3,
			want: []Entry[string]{
				{Element: "Ferry Building", Count: 1},
				{Element: "Pier 39", Count: 1},
				{Element: "Presidio", Count: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// map iteration order varies, so repeat
			for i := 0; i < 20; i++ {
				assert.Equal(t, tt.want, TopK(tt.ctr, tt.k))
			}
		})
	}
}

func TestBottomK(t *testing.T) {
	tests := []struct {
		name string
		ctr  map[string]int
		k    int
		want []Entry[string]
	}{
		{
			name: "k zero",
			ctr:  shoots,
			want: []Entry[string]{},
		},
		{
			name: "least filmed",
			ctr:  shoots,
			k:    3,
			want: []Entry[string]{
				{Element: "Coit Tower", Count: 1},
				{Element: "Fort Point", Count: 1},
				{Element: "Lombard Street", Count: 1},
			},
		},
		{
			name: "whole counter",
			ctr:  shoots,
			k:    5,
			want: []Entry[string]{
				{Element: "Coit Tower", Count: 1},
				{Element: "Fort Point", Count: 1},
				{Element: "Lombard Street", Count: 1},
				{Element: "City Hall", Count: 2},
				{Element: "Alcatraz Island", Count: 3},
			},
		},
		{
			name: "negative counts first",
			ctr:  map[string]int{"Twin Peaks": 1, "Pier 39": -1, "Presidio": 0},
			k:    2,
			want: []Entry[string]{
				{Element: "Pier 39", Count: -1},
				{Element: "Presidio", Count: 0},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				assert.Equal(t, tt.want, BottomK(tt.ctr, tt.k))
			}
		})
	}
}

func TestTopK_Panic(t *testing.T) {
	tests := []struct {
		name string
		ctr  map[string]int
		k    int
		want string
	}{
		{
			name: "more than counted",
			ctr:  map[string]int{"Coit Tower": 1},
			k:    2,
			want: "k is larger than number of elements in ctr",
		},
		{
			name: "negative k",
			k:    -1,
			want: "k is negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, tt.want, func() {
				_ = TopK(tt.ctr, tt.k)
			})
			assert.PanicsWithValue(t, tt.want, func() {
				_ = BottomK(tt.ctr, tt.k)
			})
		})
	}
}
