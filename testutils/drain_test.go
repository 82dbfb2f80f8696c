package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder collects failures instead of failing the enclosing test.
type recorder struct {
	errors []string
}

func (r *recorder) Log(...any)          {}
func (r *recorder) Logf(string, ...any) {}

func (r *recorder) Error(args ...any) {
	r.errors = append(r.errors, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestDrain(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	close(ch)

	r := &recorder{}
	Drain(r, []int{1, 2}, ch)
	assert.Empty(t, r.errors)
}

func TestDrain_Unclosed(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 1

	r := &recorder{}
	Drain(r, []int{1}, ch)
	assert.Len(t, r.errors, 1)
}

func TestDrainBlocking(t *testing.T) {
	ch := make(chan string)
	go func() {
		defer close(ch)
		for _, s := range []string{"a", "b"} {
			time.Sleep(time.Millisecond)
			ch <- s
		}
	}()

	r := &recorder{}
	DrainBlocking(r, []string{"a", "b"}, ch, time.Second)
	assert.Empty(t, r.errors)
}

func TestDrainBlocking_ClosedEarly(t *testing.T) {
	ch := make(chan string)
	close(ch)

	r := &recorder{}
	DrainBlocking(r, []string{"a"}, ch, time.Second)
	assert.Len(t, r.errors, 1)
}
