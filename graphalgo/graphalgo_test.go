package graphalgo

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cyclostatic/csdf/ratio"
)

func TestAddEdgeAutoKeysParallelEdges(t *testing.T) {
	g := NewGraph()
	g.AddEdge("a", "b", "", ratio.FromInt(1), 0)
	g.AddEdge("a", "b", "", ratio.FromInt(2), 0)

	require.Equal(t, 2, g.EdgeCount())
	out := g.OutEdges("a")
	require.Len(t, out, 2)
	require.NotEqual(t, out[0].Key, out[1].Key, "expected two distinctly keyed parallel edges")
}

func TestVerticesSorted(t *testing.T) {
	g := NewGraph()
	g.AddVertex("c")
	g.AddVertex("a")
	g.AddVertex("b")

	require.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

func TestLongestDistancesOnDAG(t *testing.T) {
	g := NewGraph()
	g.AddEdge("a", "b", "", ratio.FromInt(2), 0)
	g.AddEdge("b", "c", "", ratio.FromInt(3), 0)
	g.AddEdge("a", "c", "", ratio.FromInt(1), 0)

	parents, dist, err := LongestDistances(g, "a")
	require.NoError(t, err)
	require.Zerof(t, dist["c"].Cmp(ratio.FromInt(5)), "dist[c] should be 5 (via b, the longer path)")
	require.Equal(t, "b", parents["c"].From)
}

func TestShortestDistancesOnDAG(t *testing.T) {
	g := NewGraph()
	g.AddEdge("a", "b", "", ratio.FromInt(2), 0)
	g.AddEdge("b", "c", "", ratio.FromInt(3), 0)
	g.AddEdge("a", "c", "", ratio.FromInt(1), 0)

	_, dist, err := ShortestDistances(g, "a")
	require.NoError(t, err)
	require.Zerof(t, dist["c"].Cmp(ratio.FromInt(1)), "dist[c] should be 1 (direct edge, the shorter path)")
}

func TestLongestDistancesDetectsPositiveCycle(t *testing.T) {
	g := NewGraph()
	g.AddEdge("a", "b", "", ratio.FromInt(1), 0)
	g.AddEdge("b", "a", "", ratio.FromInt(1), 0)

	_, _, err := LongestDistances(g, "a")
	require.Error(t, err)
	cycleErr, ok := err.(*PositiveCycleError)
	require.Truef(t, ok, "got %T, want *PositiveCycleError", err)
	require.Len(t, cycleErr.Cycle.Edges, 2)
}

func TestShortestDistancesDetectsNegativeCycle(t *testing.T) {
	g := NewGraph()
	g.AddEdge("a", "b", "", ratio.FromInt(-1), 0)
	g.AddEdge("b", "a", "", ratio.FromInt(-1), 0)

	_, _, err := ShortestDistances(g, "a")
	_, ok := err.(*NegativeCycleError)
	require.Truef(t, ok, "got %v, want *NegativeCycleError", err)
}

func TestLongestDistancesNoCycleWhenWeightZero(t *testing.T) {
	// a forward edge and a back edge whose cumulative weight is zero form
	// no positive cycle and must not be reported as one.
	g := NewGraph()
	g.AddEdge("a", "b", "", ratio.FromInt(1), 0)
	g.AddEdge("b", "a", "", ratio.FromInt(-1), 0)

	_, _, err := LongestDistances(g, "a")
	require.NoError(t, err, "unexpected error for a zero-weight cycle")
}

func TestStronglyConnectedComponents(t *testing.T) {
	g := NewGraph()
	g.AddEdge("a", "b", "", ratio.Zero, 0)
	g.AddEdge("b", "c", "", ratio.Zero, 0)
	g.AddEdge("c", "a", "", ratio.Zero, 0)
	g.AddEdge("c", "d", "", ratio.Zero, 0)

	comps := StronglyConnectedComponents(g)
	var sizes []int
	for _, c := range comps {
		sizes = append(sizes, len(c))
	}
	sort.Ints(sizes)
	require.Equal(t, []int{1, 3}, sizes)
}

func TestIsCyclicSelfLoop(t *testing.T) {
	g := NewGraph()
	g.AddEdge("a", "a", "", ratio.Zero, 1)

	comps := StronglyConnectedComponents(g)
	require.Len(t, comps, 1)
	require.True(t, IsCyclic(g, comps[0]), "self-loop component should be reported cyclic")
}

func TestCanonicalizeCycleRotation(t *testing.T) {
	edges := []EdgeRef{{From: "c", To: "a"}, {From: "a", To: "b"}, {From: "b", To: "c"}}
	w := CanonicalizeCycle(edges)
	require.Equal(t, "a", w.Edges[0].From, "canonical cycle should start at the lexicographically smallest edge")
}
