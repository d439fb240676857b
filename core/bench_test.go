// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlath-aoc/core"
)

// BenchmarkAddWeightedEdge measures edge insertion in a star topology.
func BenchmarkAddWeightedEdge(b *testing.B) {
	g := core.NewGraph[struct{}, int]("star")
	g.AddVertexID("Root")
	ids := make([]string, b.N)
	for i := range ids {
		ids[i] = fmt.Sprintf("N%d", i)
		g.AddVertexID(ids[i])
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddWeightedEdge("Root", ids[i], i)
	}
}

// BenchmarkRemoveVertex measures the incoming-edge purge on a 300-vertex ring.
func BenchmarkRemoveVertex(b *testing.B) {
	const n = 300
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewGraph[struct{}, int]("ring")
		for j := 0; j < n; j++ {
			g.AddVertexID(fmt.Sprintf("V%d", j))
		}
		for j := 0; j < n; j++ {
			g.AddUndirectedEdge(fmt.Sprintf("V%d", j), fmt.Sprintf("V%d", (j+1)%n), core.WithWeight(j))
		}
		b.StartTimer()
		g.RemoveVertex("V0")
	}
}
