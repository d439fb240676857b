// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph declarations, functional options and constructors.
// Policy:
//   - Edges hold endpoint IDs only; the Graph is the single owner of vertices.
//   - Vertex edge sets are mutated exclusively through Graph methods.

package core

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

// EdgeKey is the identity of an Edge: the ordered (source, target) pair.
type EdgeKey struct {
	Source string
	Target string
}

// String renders the key as "source->target".
func (k EdgeKey) String() string { return k.Source + "->" + k.Target }

// Edge is a directed, labeled, optionally weighted connection between two vertex IDs.
//
// Edges are immutable once created; replace an edge by removing and re-adding it.
type Edge[W constraints.Ordered] struct {
	source   string
	target   string
	label    string
	weight   W
	weighted bool
}

// Source returns the ID of the vertex owning this edge.
func (e *Edge[W]) Source() string { return e.source }

// Target returns the ID of the vertex this edge points to.
func (e *Edge[W]) Target() string { return e.target }

// Label returns the edge label (never empty).
func (e *Edge[W]) Label() string { return e.label }

// Weight returns the weight and whether one was set.
func (e *Edge[W]) Weight() (W, bool) { return e.weight, e.weighted }

// Weighted reports whether the edge carries a weight.
func (e *Edge[W]) Weighted() bool { return e.weighted }

// Key returns the (source, target) identity of the edge.
func (e *Edge[W]) Key() EdgeKey { return EdgeKey{Source: e.source, Target: e.target} }

// Equal compares edges by (source, target) only; label and weight are ignored.
func (e *Edge[W]) Equal(other *Edge[W]) bool {
	if e == nil || other == nil {
		return e == other
	}

	return e.source == other.source && e.target == other.target
}

// String renders "source->target[label]" with the weight when present.
func (e *Edge[W]) String() string {
	if e.weighted {
		return fmt.Sprintf("%s->%s[%s](%v)", e.source, e.target, e.label, e.weight)
	}

	return fmt.Sprintf("%s->%s[%s]", e.source, e.target, e.label)
}

// EdgeOption configures an edge at creation time.
type EdgeOption[W constraints.Ordered] func(e *Edge[W])

// WithLabel sets the edge label. An empty label keeps the generated default.
func WithLabel[W constraints.Ordered](label string) EdgeOption[W] {
	return func(e *Edge[W]) {
		if label != "" {
			e.label = label
		}
	}
}

// WithWeight sets the edge weight.
func WithWeight[W constraints.Ordered](weight W) EdgeOption[W] {
	return func(e *Edge[W]) {
		e.weight = weight
		e.weighted = true
	}
}

// newEdge builds an edge with a generated "{source}-{target}-{random}" label,
// then applies opts in order.
func newEdge[W constraints.Ordered](source, target string, opts ...EdgeOption[W]) *Edge[W] {
	e := &Edge[W]{
		source: source,
		target: target,
		label:  fmt.Sprintf("%s-%s-%s", source, target, uuid.NewString()),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Vertex is a node of the Graph. It owns its outgoing edges keyed by target ID.
//
// T is the optional payload type, W the edge weight type.
type Vertex[T comparable, W constraints.Ordered] struct {
	id       string
	name     string
	value    T
	hasValue bool
	edges    map[string]*Edge[W] // target ID → edge
	owned    bool                // registered in a Graph
}

// NewVertex creates a standalone, value-less vertex whose name defaults to its ID.
// Register it with Graph.AddVertex.
func NewVertex[T comparable, W constraints.Ordered](id string) *Vertex[T, W] {
	return &Vertex[T, W]{
		id:    id,
		name:  id,
		edges: make(map[string]*Edge[W]),
	}
}

// Graph is a named, directed adjacency-list graph.
//
// vertices is the arena: every edge endpoint is resolved through it.
// edgeCount mirrors the sum of out-degrees so EdgeCount stays O(1).
type Graph[T comparable, W constraints.Ordered] struct {
	name      string
	vertices  map[string]*Vertex[T, W]
	edgeCount int
}

// NewGraph creates an empty graph with the given name.
// Complexity: O(1).
func NewGraph[T comparable, W constraints.Ordered](name string) *Graph[T, W] {
	return &Graph[T, W]{
		name:     name,
		vertices: make(map[string]*Vertex[T, W]),
	}
}
