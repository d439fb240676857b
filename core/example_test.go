package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-aoc/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph with int weights and no payloads.
	g := core.NewGraph[struct{}, int]("routes")

	// 2) Vertices must exist before edges reference them.
	for _, id := range []string{"A", "B", "C"} {
		g.AddVertexID(id)
	}
	g.AddWeightedEdge("A", "B", 3)
	g.AddWeightedEdge("B", "C", 4)
	fmt.Println("A->C added?", g.AddWeightedEdge("A", "C", 9))
	fmt.Println("A->X added?", g.AddWeightedEdge("A", "X", 1))
	fmt.Println("A->B again?", g.AddWeightedEdge("A", "B", 1))

	// 3) Remove a vertex: every edge into it disappears too.
	g.RemoveVertex("B")
	fmt.Println("Vertices:", g.VertexIDs())
	for _, e := range g.Edges() {
		w, _ := e.Weight()
		fmt.Printf("%s->%s %d\n", e.Source(), e.Target(), w)
	}

	// Output:
	// A->C added? true
	// A->X added? false
	// A->B again? false
	// Vertices: [A C]
	// A->C 9
}
