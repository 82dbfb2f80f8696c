// Package must turns errors that can only come from a programming
// mistake into panics, for call sites that would otherwise need
// an unreachable error branch.
package must

// Must2 returns p1, or panics with err if it is not nil.
func Must2[T1 any](p1 T1, err error) T1 {
	if err != nil {
		panic(err)
	}
	return p1
}
