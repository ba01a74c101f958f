package quicksort

import (
	"context"
	"fmt"

	"github.com/agbru/partviz/internal/sequence"
	"github.com/agbru/partviz/internal/viz"
)

// ExampleNewDefaultRegistry lists the built-in partition schemes.
func ExampleNewDefaultRegistry() {
	fmt.Println(NewDefaultRegistry().List())
	// Output:
	// [hoare lomuto]
}

// ExampleDriver_Sort sorts the same input with both schemes.
func ExampleDriver_Sort() {
	for _, scheme := range []Scheme{Lomuto{}, Hoare{}} {
		store := sequence.New([]int{4, 2, 8, 3, 1, 5, 7, 6})
		if err := NewDriver(scheme, store, viz.Discard).Sort(context.Background()); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(scheme.Name(), store.Snapshot())
	}
	// Output:
	// lomuto [1 2 3 4 5 6 7 8]
	// hoare [1 2 3 4 5 6 7 8]
}

// ExampleLomuto_Partition shows a single Lomuto partition: the pivot 6 ends
// at index 5 with smaller keys on its left.
func ExampleLomuto_Partition() {
	run := NewRun(sequence.New([]int{4, 2, 8, 3, 1, 5, 7, 6}), viz.Discard, viz.DefaultTiming())
	p, err := Lomuto{}.Partition(context.Background(), run, Range{0, 7})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(p, run.Store.Snapshot())
	// Output:
	// 5 [4 2 3 1 5 6 7 8]
}
