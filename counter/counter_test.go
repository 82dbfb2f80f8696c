package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	tests := []struct {
		name   string
		places []string
		want   map[string]int
	}{
		{
			name: "nothing filmed",
			want: map[string]int{},
		},
		{
			name:   "single shoot",
			places: []string{"Coit Tower"},
			want:   map[string]int{"Coit Tower": 1},
		},
		{
			name: "repeat locations",
			places: []string{
				"Alcatraz Island", "Lombard Street", "Alcatraz Island",
				"City Hall", "Alcatraz Island", "Lombard Street",
			},
			want: map[string]int{
				"Alcatraz Island": 3,
				"Lombard Street":  2,
				"City Hall":       1,
			},
		},
		{
			name:   "case sensitive",
			places: []string{"city hall", "City Hall"},
			want:   map[string]int{"city hall": 1, "City Hall": 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Counter(tt.places))
		})
	}
}

func TestAdd(t *testing.T) {
	leads := map[string]int{"Clint Eastwood": 3, "Sean Connery": 1}
	support := map[string]int{"Clint Eastwood": 1, "Tyne Daly": 1}

	tests := []struct {
		name string
		a, b map[string]int
		want map[string]int
	}{
		{
			name: "both nil",
			want: map[string]int{},
		},
		{
			name: "left only",
			a:    leads,
			want: map[string]int{"Clint Eastwood": 3, "Sean Connery": 1},
		},
		{
			name: "right only",
			b:    support,
			want: map[string]int{"Clint Eastwood": 1, "Tyne Daly": 1},
		},
		{
			name: "overlapping",
			a:    leads,
			b:    support,
			want: map[string]int{"Clint Eastwood": 4, "Sean Connery": 1, "Tyne Daly": 1},
		},
		{
			name: "cancelling",
			a:    map[string]int{"Fort Point": 2, "Pier 39": -1},
			b:    map[string]int{"Fort Point": -2, "Pier 39": 1},
			want: map[string]int{"Fort Point": 0, "Pier 39": 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acopy, bcopy := mapcopy(tt.a), mapcopy(tt.b)

			assert.Equal(t, tt.want, Add(tt.a, tt.b))
			assert.Equal(t, acopy, tt.a, "a modified")
			assert.Equal(t, bcopy, tt.b, "b modified")
		})
	}
}

func mapcopy[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	cp := make(map[K]V, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name string
		ctr  map[string]int
		want int
	}{
		{
			name: "nil",
			want: 0,
		},
		{
			name: "shoots",
			ctr:  Counter([]string{"Alcatraz Island", "Alcatraz Island", "Twin Peaks"}),
			want: 3,
		},
		{
			name: "negative counts",
			ctr:  map[string]int{"Twin Peaks": 2, "Pier 39": -2},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Total(tt.ctr))
		})
	}
}
