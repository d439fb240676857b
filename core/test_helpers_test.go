// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"github.com/katalvlaran/lvlath-aoc/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
)

// intGraph is the graph flavour most tests use: string payloads, int weights.
type intGraph = core.Graph[string, int]

// newGraphABCD returns a graph with vertices A..D and no edges.
func newGraphABCD() *intGraph {
	g := core.NewGraph[string, int]("abcd")
	for _, id := range []string{VertexA, VertexB, VertexC, VertexD} {
		g.AddVertexID(id)
	}

	return g
}

// newDiamond returns A→B, A→C, B→D, C→D with weights 1, 2, 3, 5.
func newDiamond() *intGraph {
	g := newGraphABCD()
	g.AddWeightedEdge(VertexA, VertexB, Weight1)
	g.AddWeightedEdge(VertexA, VertexC, Weight2)
	g.AddWeightedEdge(VertexB, VertexD, Weight3)
	g.AddWeightedEdge(VertexC, VertexD, Weight5)

	return g
}

// edgeKeys flattens edges into "S->T" strings, preserving order.
func edgeKeys(edges []*core.Edge[int]) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Key().String()
	}

	return out
}
