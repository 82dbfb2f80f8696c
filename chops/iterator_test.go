package chops_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/sfmovies/chops"
	"go.lepak.sg/sfmovies/testutils"
	"go.uber.org/goleak"
)

var _ chops.Iterator[int] = (*sliter)(nil)

type sliter struct {
	s []int
	i int
}

func newSliter(s ...int) *sliter {
	return &sliter{s: s, i: -1}
}

func (sl *sliter) Next() bool {
	sl.i++
	return sl.i < len(sl.s)
}

func (sl *sliter) Item() int {
	return sl.s[sl.i]
}

func TestCoIterate_Nil(t *testing.T) {
	co := chops.CoIterate[int](nil)
	_, ok := <-co.Items()
	assert.False(t, ok)
}

func TestCoIterate(t *testing.T) {
	tests := []struct {
		name string
		sl   *sliter
		do   func(t *testing.T, co chops.CoIterator[int])
	}{
		{
			name: "empty",
			sl:   newSliter(),
			do: func(t *testing.T, co chops.CoIterator[int]) {
				testutils.DrainBlocking(t, nil, co.Items(), time.Second)
			},
		},
		{
			name: "one",
			sl:   newSliter(1),
			do: func(t *testing.T, co chops.CoIterator[int]) {
				testutils.DrainBlocking(t, []int{1}, co.Items(), time.Second)
			},
		},
		{
			name: "stopping",
			sl:   newSliter(1, 2, 3),
			do: func(t *testing.T, co chops.CoIterator[int]) {
				assert.Equal(t, 1, <-co.Items())
				co.Stop()
				// at most one more item may already be in flight
				deadline := time.After(time.Second)
				for {
					select {
					case _, ok := <-co.Items():
						if !ok {
							return
						}
					case <-deadline:
						t.Error("items channel was not closed after Stop")
						return
					}
				}
			},
		},
		{
			name: "usage",
			sl:   newSliter(1, 2, 3),
			do: func(t *testing.T, co chops.CoIterator[int]) {
				var a []int
				for i := range co.Items() {
					a = append(a, i)
					if i == 1 {
						co.Stop()
						break
					}
				}
				assert.Equal(t, []int{1}, a)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do(t, chops.CoIterate[int](tt.sl))
			goleak.VerifyNone(t)
		})
	}
}

func TestCoIterate_Concurrent(t *testing.T) {
	s := make([]int, 100)
	for i := range s {
		s[i] = i + 1
	}
	co := chops.CoIterate[int](newSliter(s...))

	barrier := make(chan struct{})
	var once sync.Once
	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			<-barrier
			for j := range co.Items() {
				if j > 50 {
					once.Do(co.Stop)
				}
			}
		}()
	}

	close(barrier)
	wg.Wait()

	goleak.VerifyNone(t)
}
