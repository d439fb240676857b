// SPDX-License-Identifier: MIT
//
// Package prim_kruskal builds spanning trees (or forests) over a *core.Graph:
// Kruskal's algorithm in a minimum and a maximum variant, and Prim's algorithm.
//
// What & Why
//
//   - A spanning tree of a connected graph G = (V, E) is an acyclic edge subset
//     that connects every vertex using exactly |V|-1 edges. The minimum
//     (maximum) spanning tree minimizes (maximizes) the total edge weight.
//   - Puzzle code uses them for "cheapest network", "longest route skeleton"
//     and clustering style questions.
//
// Algorithms Provided
//
//   - KruskalMin(g) / KruskalMax(g) []*core.Edge[W]
//
//   - Collect every weighted edge (unweighted edges are excluded, by policy).
//
//   - Stable-sort ascending (Min) or descending (Max) by weight.
//
//   - Scan greedily; a disjointset.CycleDetector rejects edges that would
//     close a cycle. Stop once |V|-1 edges are accepted.
//
//   - Complexity: O(E log E + E·α(V)).
//
//   - Prim(g, minSentinel, maxSentinel) []*core.Edge[W]
//
//   - Every vertex with at least one weighted edge is keyed with maxSentinel,
//     except the start vertex (the first, in VertexIDs order, with a weighted
//     outgoing edge) which gets minSentinel. All are pushed into a
//     pqueue.Queue.
//
//   - Pop the minimum, record the edge from its predecessor, relax outgoing
//     weighted edges to queued neighbours with decrease-key.
//
//   - Complexity: O((V + E) log V).
//
// Direction
//
//	The graph is directed. Kruskal treats every edge as a connection between
//	its endpoints. Prim only follows outgoing edges, so undirected inputs
//	should be built with Graph.AddUndirectedEdge.
//
// Disconnected graphs
//
//	Builders never fail on a disconnected graph: they return a spanning forest
//	with fewer than |V|-1 edges. Callers that need connectivity check
//	len(result) == g.Size()-1.
//
// Tie-breaking
//
//	Equal weights keep the order of Graph.Edges() (sorted by source, target),
//	so results are reproducible but not semantically meaningful.
package prim_kruskal
