package disjointset_test

import (
	"fmt"

	"github.com/hupe1980/rangekit/disjointset"
)

func ExampleDisjointSet() {
	ds, err := disjointset.New(5)
	if err != nil {
		panic(err)
	}

	_ = ds.Unite(0, 1)
	_ = ds.Unite(1, 2)
	_ = ds.Unite(3, 4)

	same, _ := ds.SameSubset(0, 2)
	fmt.Println(same)
	fmt.Println(ds.SubsetCount())
	// Output:
	// true
	// 2
}

func ExampleDisjointSet_MakeSet() {
	ds, err := disjointset.New(0)
	if err != nil {
		panic(err)
	}

	// Elements do not have to be dense.
	_ = ds.MakeSet(10)
	_ = ds.MakeSet(1000)
	_ = ds.Unite(10, 1000)

	fmt.Println(ds.SubsetCount())
	// Output:
	// 1
}
