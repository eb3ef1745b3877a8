package boruvka_test

import (
	"fmt"

	"github.com/parlab/parmst/boruvka"
	"github.com/parlab/parmst/csr"
	"github.com/parlab/parmst/frontier"
)

// ExampleMinimumSpanningForest computes the MST of a 4-vertex cycle:
//
//	0 ──1── 1
//	│       │
//	3       2
//	│       │
//	3 ──1── 2
//
// The weight-3 chord 0-3 is the only edge left out.
func ExampleMinimumSpanningForest() {
	// 1. Describe the graph as an undirected weighted edge list.
	edges := []csr.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 1},
		{U: 0, V: 3, Weight: 3},
	}

	// 2. Build the flat CSR arena.
	st, err := csr.FromEdgeList(4, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Run the contraction rounds.
	forest, total, err := boruvka.MinimumSpanningForest(st)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4. Print the total weight and the tree edges.
	fmt.Printf("Total: %d, Edges: ", total)
	for i, e := range forest {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d-%d", e.U, e.V)
	}
	// Output: Total: 4, Edges: 0-1 1-2 2-3
}

// ExampleMinimumSpanningForest_workers pins the engine to a fixed worker
// count; tuning options never change the forest.
func ExampleMinimumSpanningForest_workers() {
	st, err := csr.FromEdgeList(3, []csr.Edge{
		{U: 0, V: 1, Weight: 4},
		{U: 1, V: 2, Weight: 6},
		{U: 0, V: 2, Weight: 5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	forest, total, err := boruvka.MinimumSpanningForest(st,
		frontier.WithWorkers(2),
		frontier.WithGrain(64),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges: %d\n", total, len(forest))
	// Output: Total: 9, Edges: 2
}
