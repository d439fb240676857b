// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and edge enumeration.
//
// Determinism:
//   - Edges() is sorted by (source, target); EdgesTo/EdgesFrom by the opposite endpoint.
//
// Policy:
//   - First writer wins: a second AddEdge for the same ordered pair is rejected
//     and the existing edge is left untouched.

package core

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// AddEdge creates a directed edge source→target.
//
// Returns false when either endpoint is missing or when an edge source→target
// already exists. Without WithLabel the label is "{source}-{target}-{random}";
// without WithWeight the edge is unweighted.
// Complexity: O(1).
func (g *Graph[T, W]) AddEdge(source, target string, opts ...EdgeOption[W]) bool {
	from, ok := g.vertices[source]
	if !ok {
		return false
	}
	if _, ok = g.vertices[target]; !ok {
		return false
	}
	if from.HasEdgeTo(target) {
		return false
	}
	from.addEdge(newEdge(source, target, opts...))
	g.edgeCount++

	return true
}

// AddWeightedEdge is AddEdge with WithWeight(weight).
func (g *Graph[T, W]) AddWeightedEdge(source, target string, weight W) bool {
	return g.AddEdge(source, target, WithWeight(weight))
}

// AddUndirectedEdge adds a→b and b→a with the same options (and therefore the
// same label when WithLabel is given). It is all-or-nothing: if the second
// direction cannot be added, the first one is rolled back.
//
// A self-loop (a == b) is a single edge.
func (g *Graph[T, W]) AddUndirectedEdge(a, b string, opts ...EdgeOption[W]) bool {
	if !g.AddEdge(a, b, opts...) {
		return false
	}
	if a == b {
		return true
	}
	if !g.AddEdge(b, a, opts...) {
		g.RemoveEdge(a, b)
		return false
	}

	return true
}

// RemoveEdge deletes the edge source→target from the source vertex only.
// Complexity: O(1).
func (g *Graph[T, W]) RemoveEdge(source, target string) (*Edge[W], bool) {
	from, ok := g.vertices[source]
	if !ok {
		return nil, false
	}
	e, ok := from.removeEdge(target)
	if ok {
		g.edgeCount--
	}

	return e, ok
}

// Edge returns the edge source→target, if any.
func (g *Graph[T, W]) Edge(source, target string) (*Edge[W], bool) {
	from, ok := g.vertices[source]
	if !ok {
		return nil, false
	}

	return from.Edge(target)
}

// HasEdge reports whether the edge source→target exists.
func (g *Graph[T, W]) HasEdge(source, target string) bool {
	_, ok := g.Edge(source, target)

	return ok
}

// Edges returns the union of all outgoing edges, sorted by (source, target).
// Duplicates are impossible by construction.
// Complexity: O(E log E).
func (g *Graph[T, W]) Edges() []*Edge[W] {
	out := make([]*Edge[W], 0, g.edgeCount)
	for _, v := range g.vertices {
		for _, e := range v.edges {
			out = append(out, e)
		}
	}
	SortEdges(out)

	return out
}

// EdgesFrom returns the outgoing edges of source sorted by target.
// Unknown sources yield nil.
func (g *Graph[T, W]) EdgesFrom(source string) []*Edge[W] {
	from, ok := g.vertices[source]
	if !ok {
		return nil
	}

	return from.Edges()
}

// EdgesTo returns every edge whose target is target, sorted by source.
// There is no reverse index, so this scans all vertices.
// Complexity: O(V + d log d).
func (g *Graph[T, W]) EdgesTo(target string) []*Edge[W] {
	var out []*Edge[W]
	for _, v := range g.vertices {
		if e, ok := v.edges[target]; ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].source < out[j].source })

	return out
}

// Neighbors returns the target IDs of source's outgoing edges in ascending order.
func (g *Graph[T, W]) Neighbors(source string) []string {
	from, ok := g.vertices[source]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(from.edges))
	for target := range from.edges {
		ids = append(ids, target)
	}
	sort.Strings(ids)

	return ids
}

// EdgeCount returns the sum of out-degrees.
func (g *Graph[T, W]) EdgeCount() int { return g.edgeCount }

// SortEdges orders edges in place by (source, target).
func SortEdges[W constraints.Ordered](edges []*Edge[W]) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].source != edges[j].source {
			return edges[i].source < edges[j].source
		}

		return edges[i].target < edges[j].target
	})
}
