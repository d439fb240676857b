// SPDX-License-Identifier: MIT
//
// Package prim_kruskal provides Kruskal's spanning-tree algorithm in minimum
// and maximum flavours.
package prim_kruskal

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/disjointset"
)

// KruskalMin returns a minimum spanning tree (forest when g is disconnected).
//
// Steps:
//  1. Collect weighted edges; unweighted edges are never considered.
//  2. Stable-sort by ascending weight.
//  3. Accept each edge whose endpoints the CycleDetector has not joined yet.
//  4. Stop at |V|-1 accepted edges or when the edges run out.
//
// Complexity: O(E log E + E·α(V)). Memory: O(V + E).
func KruskalMin[T comparable, W constraints.Ordered](g *core.Graph[T, W]) []*core.Edge[W] {
	return kruskal(g, func(a, b W) bool { return a < b })
}

// KruskalMax returns a maximum spanning tree (forest when g is disconnected).
// Identical to KruskalMin with the sort order reversed.
func KruskalMax[T comparable, W constraints.Ordered](g *core.Graph[T, W]) []*core.Edge[W] {
	return kruskal(g, func(a, b W) bool { return a > b })
}

// kruskal runs the greedy scan with edges ordered by before.
func kruskal[T comparable, W constraints.Ordered](g *core.Graph[T, W], before func(a, b W) bool) []*core.Edge[W] {
	n := g.Size()
	if n < 2 {
		return []*core.Edge[W]{}
	}

	edges := weightedEdges(g)
	sort.SliceStable(edges, func(i, j int) bool {
		wi, _ := edges[i].Weight()
		wj, _ := edges[j].Weight()
		return before(wi, wj)
	})

	detector := disjointset.NewCycleDetector(g.VertexIDs())
	tree := make([]*core.Edge[W], 0, n-1)
	for _, e := range edges {
		if detector.Detect(e.Source(), e.Target()) {
			continue
		}
		tree = append(tree, e)
		if len(tree) == n-1 {
			break
		}
	}

	return tree
}
