// SPDX-License-Identifier: MIT
//
// Package prim_kruskal defines method selection, sentinel errors and result
// helpers shared by the spanning-tree builders.
package prim_kruskal

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/disjointset"
)

// ErrNilGraph indicates Compute received a nil graph.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrBadSentinels indicates Prim was configured with MinSentinel >= MaxSentinel.
var ErrBadSentinels = errors.New("prim_kruskal: min sentinel must be below max sentinel")

// MethodKruskalMin selects Kruskal's algorithm, ascending weights.
const MethodKruskalMin = "kruskal-min"

// MethodKruskalMax selects Kruskal's algorithm, descending weights.
const MethodKruskalMax = "kruskal-max"

// MethodPrim selects Prim's algorithm.
const MethodPrim = "prim"

// Number is the weight set for which totals make sense.
type Number interface {
	constraints.Integer | constraints.Float
}

// MSTOptions configures Compute.
//
// Fields:
//
//	Method      string  MethodKruskalMin, MethodKruskalMax or MethodPrim.
//	MinSentinel W       Prim only: key of the start vertex.
//	MaxSentinel W       Prim only: initial key of every other vertex.
type MSTOptions[W constraints.Ordered] struct {
	Method      string
	MinSentinel W
	MaxSentinel W
}

// DefaultOptions returns MSTOptions for KruskalMin.
func DefaultOptions[W constraints.Ordered]() MSTOptions[W] {
	return MSTOptions[W]{Method: MethodKruskalMin}
}

// PrimOptions returns MSTOptions for Prim with the given sentinels.
func PrimOptions[W constraints.Ordered](minSentinel, maxSentinel W) MSTOptions[W] {
	return MSTOptions[W]{Method: MethodPrim, MinSentinel: minSentinel, MaxSentinel: maxSentinel}
}

// Methods lists the accepted method names.
func Methods() []string {
	return []string{MethodKruskalMin, MethodKruskalMax, MethodPrim}
}

// Compute dispatches on opts.Method.
//
// Errors:
//   - ErrNilGraph      : graph == nil.
//   - ErrUnknownMethod : unrecognised method.
//   - ErrBadSentinels  : Prim with MinSentinel >= MaxSentinel.
//
// A disconnected graph is not an error; the result is a forest.
func Compute[T comparable, W constraints.Ordered](g *core.Graph[T, W], opts MSTOptions[W]) ([]*core.Edge[W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	switch opts.Method {
	case MethodKruskalMin:
		return KruskalMin(g), nil
	case MethodKruskalMax:
		return KruskalMax(g), nil
	case MethodPrim:
		if !(opts.MinSentinel < opts.MaxSentinel) {
			return nil, errors.Wrapf(ErrBadSentinels, "min=%v max=%v", opts.MinSentinel, opts.MaxSentinel)
		}
		return Prim(g, opts.MinSentinel, opts.MaxSentinel), nil
	default:
		return nil, errors.WithHintf(
			errors.Wrapf(ErrUnknownMethod, "method %q", opts.Method),
			"valid methods: %v", Methods(),
		)
	}
}

// TotalWeight sums the weights of edges; unweighted edges contribute nothing.
func TotalWeight[W Number](edges []*core.Edge[W]) W {
	var total W
	for _, e := range edges {
		if w, ok := e.Weight(); ok {
			total += w
		}
	}

	return total
}

// IsForest reports whether edges, read as undirected connections, contain no cycle.
func IsForest[W constraints.Ordered](edges []*core.Edge[W]) bool {
	d := disjointset.NewCycleDetector(nil)
	for _, e := range edges {
		if d.Detect(e.Source(), e.Target()) {
			return false
		}
	}

	return true
}

// weightedEdges returns g's weighted edges in Graph.Edges order.
func weightedEdges[T comparable, W constraints.Ordered](g *core.Graph[T, W]) []*core.Edge[W] {
	all := g.Edges()
	out := make([]*core.Edge[W], 0, len(all))
	for _, e := range all {
		if e.Weighted() {
			out = append(out, e)
		}
	}

	return out
}
