// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Whole-graph utilities: cloning, stats snapshot, views.
// Policy:
//   - Views never mutate the input graph; they return fresh instances.

package core

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	Name              string
	VertexCount       int
	EdgeCount         int
	WeightedEdgeCount int
	ValuedVertexCount int
}

// Stats scans the graph once and returns its size summary.
// Complexity: O(V + E).
func (g *Graph[T, W]) Stats() GraphStats {
	stats := GraphStats{
		Name:        g.name,
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
	}
	for _, v := range g.vertices {
		if v.hasValue {
			stats.ValuedVertexCount++
		}
		for _, e := range v.edges {
			if e.weighted {
				stats.WeightedEdgeCount++
			}
		}
	}

	return stats
}

// Clone returns a deep copy: same name, vertices (ID, name, value) and edges.
// Edges are immutable, so the copy shares nothing mutable with g.
// Complexity: O(V + E).
func (g *Graph[T, W]) Clone() *Graph[T, W] {
	return g.filtered(g.name, func(*Vertex[T, W]) bool { return true }, func(*Edge[W]) bool { return true })
}

// InducedSubgraph returns a new graph named name holding only the vertices in
// keep and the edges with both endpoints kept. Unknown IDs in keep are ignored.
// Complexity: O(V + E).
func (g *Graph[T, W]) InducedSubgraph(name string, keep []string) *Graph[T, W] {
	set := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		set[id] = struct{}{}
	}
	inSet := func(id string) bool {
		_, ok := set[id]
		return ok
	}

	return g.filtered(name,
		func(v *Vertex[T, W]) bool { return inSet(v.id) },
		func(e *Edge[W]) bool { return inSet(e.source) && inSet(e.target) },
	)
}

// WeightedView returns a copy of g that keeps every vertex but only weighted edges.
func (g *Graph[T, W]) WeightedView(name string) *Graph[T, W] {
	return g.filtered(name,
		func(*Vertex[T, W]) bool { return true },
		func(e *Edge[W]) bool { return e.weighted },
	)
}

// filtered copies the vertices accepted by keepV and, among edges whose
// endpoints both survived, those accepted by keepE.
func (g *Graph[T, W]) filtered(name string, keepV func(*Vertex[T, W]) bool, keepE func(*Edge[W]) bool) *Graph[T, W] {
	out := NewGraph[T, W](name)
	for id, v := range g.vertices {
		if !keepV(v) {
			continue
		}
		nv := NewVertex[T, W](id)
		nv.name = v.name
		nv.value = v.value
		nv.hasValue = v.hasValue
		nv.owned = true
		out.vertices[id] = nv
	}
	for _, v := range g.vertices {
		nv, ok := out.vertices[v.id]
		if !ok {
			continue
		}
		for target, e := range v.edges {
			if _, ok = out.vertices[target]; !ok || !keepE(e) {
				continue
			}
			ne := *e
			nv.edges[target] = &ne
			out.edgeCount++
		}
	}

	return out
}
