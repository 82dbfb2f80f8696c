package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert.Equal(t, Less, Compare(1, 2))
	assert.Equal(t, Equal, Compare("a", "a"))
	assert.Equal(t, Greater, Compare(2.5, 1.0))
}

func TestOrderOf(t *testing.T) {
	tests := []struct {
		in   int
		want Order
	}{
		{-42, Less},
		{-1, Less},
		{0, Equal},
		{1, Greater},
		{1 << 20, Greater},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OrderOf(tt.in), "OrderOf(%d)", tt.in)
	}
}

func TestOrder_String(t *testing.T) {
	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, "Greater", Greater.String())
	assert.Equal(t, "<invalid tree.Order>", Order(7).String())
}
