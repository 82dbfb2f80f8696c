package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	"go.lepak.sg/sfmovies/must"
	"go.lepak.sg/sfmovies/tree/binary"
)

var (
	seed     = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num      = flag.Int("n", 10, "number of nodes in the tree")
	balanced = flag.Int("b", 0, "if > 0, reshuffle up to this many times until the tree is balanced")
	remove   = flag.Int("r", -1, "if >= 0, remove this key before printing")
	pretty   = flag.Bool("p", false, "print the tree with box drawing instead of the shape dump")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var tr *binary.Tree[int]
	attempts := 0

	if *balanced > 0 {
		var err error
		tr, attempts, err = binary.BuildRandomBalanced(*num, *seed, *balanced)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		tr = binary.BuildRandom(*num, *seed)
	}

	if *remove >= 0 {
		fmt.Println("removed", *remove, tr.Remove(*remove))
	}

	preorder := slices.Collect(tr.Preorder())
	inorder := make([]int, 0, tr.Size())
	for k := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, k)
	}

	fmt.Println("seed:", *seed)
	fmt.Println("preorder:", preorder)
	fmt.Println("inorder:", inorder)
	fmt.Println("postorder:", slices.Collect(tr.Postorder()))

	// the shape is fully determined by the pre- and in-order traversals
	rebuilt := must.Must2(binary.BuildFromPreAndInOrder(preorder, inorder))
	if rebuilt.Dump() != tr.Dump() {
		fmt.Fprintln(os.Stderr, "rebuilt tree has a different shape")
		os.Exit(1)
	}

	if *pretty {
		fmt.Println("tree:")
		fmt.Println(tr.Pretty())
	} else {
		fmt.Print("tree:")
		fmt.Println(tr.Dump())
	}

	if first, ok := tr.First(); ok {
		last, _ := tr.Last()
		mid := (first + last) / 2
		fl, _ := tr.Floor(mid)
		ce, _ := tr.Ceiling(mid)
		fmt.Println("first:", first, "last:", last, "floor/ceiling of", mid, "=", fl, ce)
	}

	actual, ideal := tr.Height()
	fmt.Println("height:", actual, "ideal:", ideal)

	if err := tr.Check(); err != nil {
		fmt.Fprintln(os.Stderr, "check:", err)
		os.Exit(1)
	}

	if *balanced > 0 {
		fmt.Println("attempts:", attempts)
	}
}
