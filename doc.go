// SPDX-License-Identifier: MIT
//
// Package lvlath is the root of lvlath-aoc: a small in-memory toolkit of
// graph algorithms and a randomized search engine for puzzle-style inputs.
//
// What is inside
//
//	core/          generic directed Graph[T, W] with Vertex and Edge, id-based
//	               edges, first-writer-wins insertion, bool results for
//	               structural failures, clone/subgraph/stats helpers
//	disjointset/   CycleDetector: union-find with path halving and union by rank
//	pqueue/        keyed binary heap with decrease/increase-key (Update)
//	prim_kruskal/  KruskalMin, KruskalMax and Prim spanning trees and forests
//	solver/        ValueDomain, Builder, SimpleSolver: generate-and-test
//	               optimization with iteration refunds on improvement
//	internal/      config (viper), logger (zap), input parsers, cobra commands
//	cmd/lvlath-aoc  the command-line front end
//	examples/      runnable walkthroughs
//
// Quick ASCII example:
//
//	    A──1──B
//	    │ ╲   │
//	    3  4  2
//	    │   ╲ │
//	    D──6──C      (B-D: 5)
//
//	KruskalMin → {A-B, B-C, A-D}, total 6
//	KruskalMax → {C-D, B-D, A-C}, total 15
//
// Concurrency: nothing here is synchronized. A Graph, a queue, a domain or a
// solver belongs to one goroutine at a time.
package lvlath
