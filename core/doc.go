// SPDX-License-Identifier: MIT
//
// Package core provides the generic directed Graph used by the puzzle
// solutions: a named adjacency-list container owning Vertex records, each of
// which owns its outgoing Edges keyed by target ID.
//
// The Graph G = (V,E) follows a small set of rules:
//
//   - Vertices are identified by an immutable string ID and compared by ID only.
//   - A Vertex owns at most one outgoing Edge per distinct target ("insert if
//     absent": the first writer wins, later AddEdge calls are rejected).
//   - Edges refer to their endpoints by ID, never by pointer. Lookups always go
//     through the Graph, so there is no reference cycle between Vertex and Edge.
//   - Edges carry a non-empty label and an optional weight. Edge equality is the
//     ordered (source, target) pair, independent of label and weight.
//   - Every edge endpoint must exist when the edge is added.
//   - Removing a vertex purges every edge that targets it across the graph and
//     clears its own outgoing edges.
//   - Two graphs are Equal iff they share a name (bookkeeping, not structure).
//
// Structural failures (duplicate vertex, duplicate edge, missing endpoint) are
// reported through boolean results. They are expected outcomes in puzzle
// code, not errors.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertexID(id string) bool              // O(1)
//	AddVertex(v *Vertex) bool                // O(1)
//	RemoveVertex(id string) (*Vertex, bool)  // O(V)
//
//	// Edge lifecycle
//	AddEdge(source, target string, opts ...EdgeOption) bool   // O(1)
//	AddWeightedEdge(source, target string, weight W) bool      // O(1)
//	AddUndirectedEdge(a, b string, opts ...EdgeOption) bool    // O(1)
//	RemoveEdge(source, target string) (*Edge, bool)            // O(1)
//
//	// Query
//	Edges() []*Edge            // O(E log E), sorted by (source, target)
//	EdgesTo(target) []*Edge    // O(V + d log d)
//	EdgesFrom(source) []*Edge  // O(d log d)
//	VertexIDs() []string       // O(V log V)
//	Contains(id) bool          // O(1)
//	Size() int                 // O(1), vertex count
//	EdgeCount() int            // O(1), sum of out-degrees
//
// Concurrency:
//
//	A Graph is NOT synchronized. Mutation is single-threaded and synchronous;
//	callers sharing a Graph across goroutines must serialize access themselves.
//
// Weights are any constraints.Ordered type (ints, floats, strings), which is all
// the spanning-tree builders need to sort and compare them.
package core
