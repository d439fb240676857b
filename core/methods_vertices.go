// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex accessors and the Graph's vertex lifecycle.
//
// Determinism:
//   - VertexIDs() and Vertex.Edges() return results sorted by ID.

package core

import "sort"

// ID returns the immutable vertex identifier.
func (v *Vertex[T, W]) ID() string { return v.id }

// Name returns the display name (defaults to the ID).
func (v *Vertex[T, W]) Name() string { return v.name }

// SetName changes the display name. An empty name resets it to the ID so the
// name is never empty.
func (v *Vertex[T, W]) SetName(name string) {
	if name == "" {
		name = v.id
	}
	v.name = name
}

// Value returns the payload and whether one is set.
func (v *Vertex[T, W]) Value() (T, bool) { return v.value, v.hasValue }

// SetValue attaches a payload.
func (v *Vertex[T, W]) SetValue(value T) {
	v.value = value
	v.hasValue = true
}

// ClearValue drops the payload.
func (v *Vertex[T, W]) ClearValue() {
	var zero T
	v.value = zero
	v.hasValue = false
}

// Equal compares vertices by ID only.
func (v *Vertex[T, W]) Equal(other *Vertex[T, W]) bool {
	if v == nil || other == nil {
		return v == other
	}

	return v.id == other.id
}

// Edge returns the outgoing edge to target, if any.
func (v *Vertex[T, W]) Edge(target string) (*Edge[W], bool) {
	e, ok := v.edges[target]

	return e, ok
}

// HasEdgeTo reports whether an outgoing edge to target exists.
func (v *Vertex[T, W]) HasEdgeTo(target string) bool {
	_, ok := v.edges[target]

	return ok
}

// Edges returns the outgoing edges sorted by target ID.
// Complexity: O(d log d).
func (v *Vertex[T, W]) Edges() []*Edge[W] {
	out := make([]*Edge[W], 0, len(v.edges))
	for _, e := range v.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].target < out[j].target })

	return out
}

// OutDegree returns the number of outgoing edges.
func (v *Vertex[T, W]) OutDegree() int { return len(v.edges) }

// addEdge inserts e if no edge to e.target exists yet.
func (v *Vertex[T, W]) addEdge(e *Edge[W]) bool {
	if _, exists := v.edges[e.target]; exists {
		return false
	}
	v.edges[e.target] = e

	return true
}

// removeEdge deletes and returns the edge to target.
func (v *Vertex[T, W]) removeEdge(target string) (*Edge[W], bool) {
	e, ok := v.edges[target]
	if ok {
		delete(v.edges, target)
	}

	return e, ok
}

// clearEdges drops every outgoing edge and returns how many were removed.
func (v *Vertex[T, W]) clearEdges() int {
	n := len(v.edges)
	v.edges = make(map[string]*Edge[W])

	return n
}

// Name returns the graph name.
func (g *Graph[T, W]) Name() string { return g.name }

// Equal reports whether both graphs share a name. This is bookkeeping
// equality, not a structural comparison.
func (g *Graph[T, W]) Equal(other *Graph[T, W]) bool {
	if g == nil || other == nil {
		return g == other
	}

	return g.name == other.name
}

// AddVertexID creates a bare vertex with the given ID.
// Returns false if id is empty or already present.
// Complexity: O(1).
func (g *Graph[T, W]) AddVertexID(id string) bool {
	if id == "" {
		return false
	}

	return g.AddVertex(NewVertex[T, W](id))
}

// AddVertex registers a pre-built vertex.
// Returns false if v is nil, has an empty ID, its ID is already present, or it
// is already owned by a graph.
//
// Edges the vertex may carry must point at vertices of this graph; AddVertex
// only accepts edge-free vertices to keep that invariant cheap to hold.
// Complexity: O(1).
func (g *Graph[T, W]) AddVertex(v *Vertex[T, W]) bool {
	if v == nil || v.id == "" || v.owned || len(v.edges) > 0 {
		return false
	}
	if _, exists := g.vertices[v.id]; exists {
		return false
	}
	if v.edges == nil {
		v.edges = make(map[string]*Edge[W])
	}
	v.owned = true
	g.vertices[v.id] = v

	return true
}

// Vertex looks up a vertex by ID.
func (g *Graph[T, W]) Vertex(id string) (*Vertex[T, W], bool) {
	v, ok := g.vertices[id]

	return v, ok
}

// Contains reports whether id is a vertex of the graph.
func (g *Graph[T, W]) Contains(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// Size returns the vertex count.
func (g *Graph[T, W]) Size() int { return len(g.vertices) }

// VertexIDs returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph[T, W]) VertexIDs() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// RemoveVertex deletes the vertex, every edge across the graph that targets
// it, and its own outgoing edges. The detached vertex is returned and may be
// registered again (in this or another graph).
//
// Complexity: O(V) for the incoming-edge purge.
func (g *Graph[T, W]) RemoveVertex(id string) (*Vertex[T, W], bool) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	for _, other := range g.vertices {
		if _, removed := other.removeEdge(id); removed {
			g.edgeCount--
		}
	}
	g.edgeCount -= v.clearEdges()
	delete(g.vertices, id)
	v.owned = false

	return v, true
}
