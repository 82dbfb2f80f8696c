package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		want string
	}{
		{
			name: "empty",
			want: "\nnull",
		},
		{
			name: "one",
			keys: []int{1},
			want: "\n1" +
				"\n|--null" +
				"\n|--null",
		},
		{
			name: "left only",
			keys: []int{2, 1},
			want: "\n2" +
				"\n|--1" +
				"\n   |--null" +
				"\n   |--null" +
				"\n|--null",
		},
		{
			name: "scenario",
			keys: scenarioKeys,
			want: "\n50" +
				"\n|--30" +
				"\n   |--20" +
				"\n      |--null" +
				"\n      |--null" +
				"\n   |--40" +
				"\n      |--null" +
				"\n      |--null" +
				"\n|--70" +
				"\n   |--60" +
				"\n      |--null" +
				"\n      |--null" +
				"\n   |--80" +
				"\n      |--null" +
				"\n      |--null",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newTree(tt.keys...).Dump())
		})
	}
}

func TestDump_AfterTwoChildRemoval(t *testing.T) {
	tr := newTree(scenarioKeys...)
	require.True(t, tr.Remove(50))

	assert.Equal(t, 60, tr.root.key)
	assert.Equal(t, []int{20, 30, 40, 60, 70, 80}, tr.ToSlice())
	assert.Equal(t, 6, tr.Size())
	assert.Equal(t, ""+
		"\n60"+
		"\n|--30"+
		"\n   |--20"+
		"\n      |--null"+
		"\n      |--null"+
		"\n   |--40"+
		"\n      |--null"+
		"\n      |--null"+
		"\n|--70"+
		"\n   |--null"+
		"\n   |--80"+
		"\n      |--null"+
		"\n      |--null",
		tr.Dump())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Empty list.", New[int]().String())
	assert.Equal(t, "20\n50\n70\n", newTree(50, 20, 70).String())
}

func TestPretty(t *testing.T) {
	assert.Equal(t, "", New[int]().Pretty())

	out := newTree(4, 2, 6, 1, 3, 5, 7).Pretty()
	for _, want := range []string{"4", "L 2", "R 6", "L 1", "R 3", "L 5", "R 7"} {
		assert.Contains(t, out, want)
	}
}

func TestHeight(t *testing.T) {
	tests := []struct {
		keys          []int
		actual, ideal int
	}{
		{nil, 0, 0},
		{[]int{1}, 1, 1},
		{[]int{2, 1, 3}, 2, 2},
		{[]int{1, 2, 3}, 3, 2},
		{scenarioKeys, 3, 3},
		{[]int{50, 30, 70, 20}, 3, 3},
	}
	for _, tt := range tests {
		actual, ideal := newTree(tt.keys...).Height()
		assert.Equal(t, tt.actual, actual, "%v", tt.keys)
		assert.Equal(t, tt.ideal, ideal, "%v", tt.keys)
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, New[int]().Check())
	assert.NoError(t, newTree(scenarioKeys...).Check())

	tr := newTree(scenarioKeys...)
	tr.root.left.right.key = 55
	assert.EqualError(t, tr.Check(), "key 55 is not less than ancestor 50")

	tr = newTree(scenarioKeys...)
	tr.root.right.left.key = 50
	assert.EqualError(t, tr.Check(), "key 50 is not greater than ancestor 50")

	tr = newTree(scenarioKeys...)
	tr.size++
	assert.EqualError(t, tr.Check(), "size is 8 but tree has 7 nodes")
}
