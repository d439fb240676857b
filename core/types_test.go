// SPDX-License-Identifier: MIT
// Package core_test verifies vertex and edge identity contracts.

package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-aoc/core"
)

// TestVertex_Defaults checks a fresh vertex: name = id, no value, no edges.
func TestVertex_Defaults(t *testing.T) {
	v := core.NewVertex[int, int](VertexA)

	assert.Equal(t, VertexA, v.ID())
	assert.Equal(t, VertexA, v.Name())
	_, ok := v.Value()
	assert.False(t, ok)
	assert.Zero(t, v.OutDegree())
	assert.Empty(t, v.Edges())
}

// TestVertex_NameAndValue checks the mutable attributes.
func TestVertex_NameAndValue(t *testing.T) {
	v := core.NewVertex[int, int](VertexA)

	v.SetName("Alpha")
	assert.Equal(t, "Alpha", v.Name())
	v.SetName("")
	assert.Equal(t, VertexA, v.Name(), "empty name falls back to the id")

	v.SetValue(42)
	val, ok := v.Value()
	require.True(t, ok)
	assert.Equal(t, 42, val)

	v.ClearValue()
	_, ok = v.Value()
	assert.False(t, ok)
}

// TestVertex_EqualByID checks that only the id matters for equality.
func TestVertex_EqualByID(t *testing.T) {
	a1 := core.NewVertex[int, int](VertexA)
	a2 := core.NewVertex[int, int](VertexA)
	a2.SetName("other")
	a2.SetValue(7)
	b := core.NewVertex[int, int](VertexB)

	assert.True(t, a1.Equal(a2))
	assert.False(t, a1.Equal(b))
	assert.False(t, a1.Equal(nil))
}

// TestEdge_DefaultLabelAndEquality checks generated labels and (source, target) equality.
func TestEdge_DefaultLabelAndEquality(t *testing.T) {
	g := newGraphABCD()
	require.True(t, g.AddEdge(VertexA, VertexB))
	require.True(t, g.AddEdge(VertexB, VertexA, core.WithLabel[int]("back"), core.WithWeight(Weight3)))

	ab, ok := g.Edge(VertexA, VertexB)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(ab.Label(), "A-B-"), "label %q", ab.Label())
	assert.Greater(t, len(ab.Label()), len("A-B-"))
	_, weighted := ab.Weight()
	assert.False(t, weighted)

	ba, ok := g.Edge(VertexB, VertexA)
	require.True(t, ok)
	assert.Equal(t, "back", ba.Label())
	w, weighted := ba.Weight()
	assert.True(t, weighted)
	assert.Equal(t, Weight3, w)

	assert.False(t, ab.Equal(ba), "direction is part of identity")
	assert.Equal(t, core.EdgeKey{Source: VertexA, Target: VertexB}, ab.Key())

	// Removing and re-adding with different attributes yields an equal edge.
	g.RemoveEdge(VertexA, VertexB)
	require.True(t, g.AddWeightedEdge(VertexA, VertexB, Weight5))
	ab2, _ := g.Edge(VertexA, VertexB)
	assert.True(t, ab.Equal(ab2))
}

// TestEdge_LabelsAreUnique checks that generated labels differ between edges.
func TestEdge_LabelsAreUnique(t *testing.T) {
	g := newGraphABCD()
	g.AddEdge(VertexA, VertexB)
	g.RemoveEdge(VertexA, VertexB)
	first := g.Edges()
	require.Empty(t, first)

	g.AddEdge(VertexA, VertexB)
	e1, _ := g.Edge(VertexA, VertexB)
	g.RemoveEdge(VertexA, VertexB)
	g.AddEdge(VertexA, VertexB)
	e2, _ := g.Edge(VertexA, VertexB)

	assert.NotEqual(t, e1.Label(), e2.Label())
}

// TestEdge_String checks the debug rendering.
func TestEdge_String(t *testing.T) {
	g := newGraphABCD()
	g.AddEdge(VertexA, VertexB, core.WithLabel[int]("ab"), core.WithWeight(Weight2))
	g.AddEdge(VertexB, VertexC, core.WithLabel[int]("bc"))

	ab, _ := g.Edge(VertexA, VertexB)
	bc, _ := g.Edge(VertexB, VertexC)
	assert.Equal(t, "A->B[ab](2)", ab.String())
	assert.Equal(t, "B->C[bc]", bc.String())
}
