package prim_kruskal_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/prim_kruskal"
)

// undirected builds a graph from "a b w" triples, adding each edge both ways.
func undirected(t testing.TB, name string, ids []string, edges [][3]any) *core.Graph[string, int] {
	t.Helper()
	g := core.NewGraph[string, int](name)
	for _, id := range ids {
		g.AddVertexID(id)
	}
	for _, e := range edges {
		require.True(t, g.AddUndirectedEdge(e[0].(string), e[1].(string), core.WithWeight(e[2].(int))))
	}

	return g
}

// buildSquare returns the 4-vertex graph A-B(1), A-C(4), A-D(3), B-C(2), B-D(5), C-D(6).
func buildSquare(t testing.TB) *core.Graph[string, int] {
	return undirected(t, "square", []string{"A", "B", "C", "D"}, [][3]any{
		{"A", "B", 1}, {"A", "C", 4}, {"A", "D", 3},
		{"B", "C", 2}, {"B", "D", 5}, {"C", "D", 6},
	})
}

// buildMediumGraph returns a connected undirected graph with n vertices and
// about m edges: a random-weight chain V0..Vn-1 plus random chords.
func buildMediumGraph(t testing.TB, n, m int, seed int64) *core.Graph[string, int] {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph[string, int](fmt.Sprintf("medium-%d", seed))
	for i := 0; i < n; i++ {
		g.AddVertexID(fmt.Sprintf("V%d", i))
	}
	for i := 1; i < n; i++ {
		g.AddUndirectedEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), core.WithWeight(r.Intn(100)+1))
	}
	for added := n - 1; added < m; added++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		g.AddUndirectedEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), core.WithWeight(r.Intn(100)+1))
	}

	return g
}

func keys(edges []*core.Edge[int]) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Key().String()
	}

	return out
}

func TestKruskalMin_Square(t *testing.T) {
	g := buildSquare(t)
	tree := prim_kruskal.KruskalMin(g)

	require.Len(t, tree, g.Size()-1)
	assert.Equal(t, 6, prim_kruskal.TotalWeight(tree))
	assert.Equal(t, []string{"A->B", "B->C", "A->D"}, keys(tree))
	assert.True(t, prim_kruskal.IsForest(tree))
}

func TestKruskalMax_Square(t *testing.T) {
	g := buildSquare(t)
	tree := prim_kruskal.KruskalMax(g)

	require.Len(t, tree, g.Size()-1)
	assert.Equal(t, 15, prim_kruskal.TotalWeight(tree))
	assert.Equal(t, []string{"C->D", "B->D", "A->C"}, keys(tree))
	assert.True(t, prim_kruskal.IsForest(tree))
}

func TestPrim_Square(t *testing.T) {
	g := buildSquare(t)
	tree := prim_kruskal.Prim(g, math.MinInt, math.MaxInt)

	require.Len(t, tree, g.Size()-1)
	assert.Equal(t, 6, prim_kruskal.TotalWeight(tree))
	assert.Equal(t, []string{"A->B", "B->C", "A->D"}, keys(tree))
}

// TestPrim_MatchesKruskal compares total weights on random connected graphs.
func TestPrim_MatchesKruskal(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := buildMediumGraph(t, 60, 200, seed)
		k := prim_kruskal.KruskalMin(g)
		p := prim_kruskal.Prim(g, math.MinInt, math.MaxInt)

		require.Len(t, k, g.Size()-1, "seed %d", seed)
		require.Len(t, p, g.Size()-1, "seed %d", seed)
		assert.Equal(t, prim_kruskal.TotalWeight(k), prim_kruskal.TotalWeight(p), "seed %d", seed)
		assert.True(t, prim_kruskal.IsForest(p), "seed %d", seed)
		assert.GreaterOrEqual(t,
			prim_kruskal.TotalWeight(prim_kruskal.KruskalMax(g)),
			prim_kruskal.TotalWeight(k), "seed %d", seed)
	}
}

// TestBuilders_Forest checks a disconnected graph yields one tree per component.
func TestBuilders_Forest(t *testing.T) {
	g := undirected(t, "forest", []string{"A", "B", "C", "D", "E"}, [][3]any{
		{"A", "B", 1}, {"C", "D", 2},
	})

	for name, tree := range map[string][]*core.Edge[int]{
		"kruskal-min": prim_kruskal.KruskalMin(g),
		"kruskal-max": prim_kruskal.KruskalMax(g),
		"prim":        prim_kruskal.Prim(g, math.MinInt, math.MaxInt),
	} {
		assert.Len(t, tree, 2, name)
		assert.Equal(t, 3, prim_kruskal.TotalWeight(tree), name)
		assert.True(t, prim_kruskal.IsForest(tree), name)
	}
}

// TestBuilders_IgnoreUnweighted checks unweighted edges never enter a tree.
func TestBuilders_IgnoreUnweighted(t *testing.T) {
	g := core.NewGraph[string, int]("mixed")
	for _, id := range []string{"A", "B", "C"} {
		g.AddVertexID(id)
	}
	require.True(t, g.AddUndirectedEdge("A", "B"))
	require.True(t, g.AddUndirectedEdge("A", "C", core.WithWeight(5)))

	assert.Equal(t, []string{"A->C"}, keys(prim_kruskal.KruskalMin(g)))
	assert.Equal(t, []string{"A->C"}, keys(prim_kruskal.KruskalMax(g)))
	assert.Equal(t, []string{"A->C"}, keys(prim_kruskal.Prim(g, math.MinInt, math.MaxInt)))
}

func TestBuilders_Degenerate(t *testing.T) {
	empty := core.NewGraph[string, int]("empty")
	assert.Empty(t, prim_kruskal.KruskalMin(empty))
	assert.Empty(t, prim_kruskal.Prim(empty, math.MinInt, math.MaxInt))

	single := core.NewGraph[string, int]("single")
	single.AddVertexID("A")
	assert.Empty(t, prim_kruskal.KruskalMax(single))
	assert.Empty(t, prim_kruskal.Prim(single, math.MinInt, math.MaxInt))

	bare := core.NewGraph[string, int]("bare")
	bare.AddVertexID("A")
	bare.AddVertexID("B")
	bare.AddEdge("A", "B")
	assert.Empty(t, prim_kruskal.KruskalMin(bare))
	assert.Empty(t, prim_kruskal.Prim(bare, math.MinInt, math.MaxInt))
}

// TestPrim_DirectedOnly checks Prim follows outgoing edges from the first
// vertex that has one.
func TestPrim_DirectedOnly(t *testing.T) {
	g := core.NewGraph[string, int]("directed")
	for _, id := range []string{"A", "B", "C"} {
		g.AddVertexID(id)
	}
	g.AddWeightedEdge("B", "A", 4)
	g.AddWeightedEdge("B", "C", 1)

	tree := prim_kruskal.Prim(g, math.MinInt, math.MaxInt)
	assert.Equal(t, []string{"B->C", "B->A"}, keys(tree))
}

func TestPrim_FloatWeights(t *testing.T) {
	g := core.NewGraph[string, float64]("float")
	for _, id := range []string{"A", "B", "C"} {
		g.AddVertexID(id)
	}
	g.AddUndirectedEdge("A", "B", core.WithWeight(0.5))
	g.AddUndirectedEdge("B", "C", core.WithWeight(0.25))
	g.AddUndirectedEdge("A", "C", core.WithWeight(2.0))

	tree := prim_kruskal.Prim(g, math.Inf(-1), math.Inf(1))
	require.Len(t, tree, 2)
	assert.InDelta(t, 0.75, prim_kruskal.TotalWeight(tree), 1e-9)
}

func TestCompute(t *testing.T) {
	g := buildSquare(t)

	tree, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions[int]())
	require.NoError(t, err)
	assert.Equal(t, 6, prim_kruskal.TotalWeight(tree))

	tree, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions[int]{Method: prim_kruskal.MethodKruskalMax})
	require.NoError(t, err)
	assert.Equal(t, 15, prim_kruskal.TotalWeight(tree))

	tree, err = prim_kruskal.Compute(g, prim_kruskal.PrimOptions(math.MinInt, math.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, 6, prim_kruskal.TotalWeight(tree))
}

func TestCompute_Errors(t *testing.T) {
	g := buildSquare(t)

	_, err := prim_kruskal.Compute[string, int](nil, prim_kruskal.DefaultOptions[int]())
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	_, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions[int]{Method: "boruvka"})
	require.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
	assert.Contains(t, errors.FlattenHints(err), prim_kruskal.MethodPrim)

	_, err = prim_kruskal.Compute(g, prim_kruskal.PrimOptions(10, 10))
	assert.ErrorIs(t, err, prim_kruskal.ErrBadSentinels)
}

func TestIsForest(t *testing.T) {
	g := buildSquare(t)
	assert.True(t, prim_kruskal.IsForest[int](nil))
	assert.False(t, prim_kruskal.IsForest(g.Edges()), "both directions of an edge form a cycle")

	ab, _ := g.Edge("A", "B")
	bc, _ := g.Edge("B", "C")
	ca, _ := g.Edge("C", "A")
	assert.True(t, prim_kruskal.IsForest([]*core.Edge[int]{ab, bc}))
	assert.False(t, prim_kruskal.IsForest([]*core.Edge[int]{ab, bc, ca}))
}
