// SPDX-License-Identifier: MIT
//
// Package prim_kruskal provides Prim's spanning-tree algorithm with
// caller-supplied key sentinels and decrease-key on a keyed heap.
package prim_kruskal

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/pqueue"
)

// Prim returns a minimum spanning tree (forest when g is disconnected),
// growing it along outgoing weighted edges.
//
// minSentinel must compare below every edge weight and maxSentinel above (or
// equal to) every edge weight; typical choices are math.MinInt / math.MaxInt.
//
// Steps:
//  1. Keep only vertices touching at least one weighted edge.
//  2. Start = first such vertex, in VertexIDs order, with a weighted outgoing
//     edge. It is keyed minSentinel, every other vertex maxSentinel.
//  3. Pop the minimum key, mark visited, record the edge from its predecessor
//     (none for the start, none for a vertex reached by no relaxation).
//  4. Relax outgoing weighted edges u→v to unvisited v: if w < key[v], set
//     key[v] = w, prev[v] = edge, decrease-key in the queue.
//  5. Stop at |V|-1 edges or when the queue is empty.
//
// Complexity: O((V + E) log V). Memory: O(V).
func Prim[T comparable, W constraints.Ordered](g *core.Graph[T, W], minSentinel, maxSentinel W) []*core.Edge[W] {
	n := g.Size()
	if n < 2 {
		return []*core.Edge[W]{}
	}

	ids := g.VertexIDs()
	touched, hasOut := weightedIncidence(g)

	start := ""
	for _, id := range ids {
		if hasOut[id] {
			start = id
			break
		}
	}
	if start == "" {
		return []*core.Edge[W]{}
	}

	queue := pqueue.NewMin[string, W]()
	for _, id := range ids {
		if !touched[id] {
			continue
		}
		key := maxSentinel
		if id == start {
			key = minSentinel
		}
		queue.Push(id, key)
	}

	prev := make(map[string]*core.Edge[W], len(touched))
	tree := make([]*core.Edge[W], 0, n-1)
	for queue.Len() > 0 && len(tree) < n-1 {
		u, _, _ := queue.Pop()
		if e, ok := prev[u]; ok {
			tree = append(tree, e)
		}
		for _, e := range g.EdgesFrom(u) {
			w, weighted := e.Weight()
			if !weighted {
				continue
			}
			v := e.Target()
			key, queued := queue.Priority(v)
			if !queued || !(w < key) {
				continue
			}
			prev[v] = e
			queue.Update(v, w)
		}
	}

	return tree
}

// weightedIncidence marks vertices touching a weighted edge (either end), and
// separately those with a weighted outgoing edge.
func weightedIncidence[T comparable, W constraints.Ordered](g *core.Graph[T, W]) (touched, hasOut map[string]bool) {
	touched = make(map[string]bool)
	hasOut = make(map[string]bool)
	for _, e := range weightedEdges(g) {
		touched[e.Source()] = true
		touched[e.Target()] = true
		hasOut[e.Source()] = true
	}

	return touched, hasOut
}
