package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cyclostatic/csdf/cyclicvec"
	"github.com/cyclostatic/csdf/mcr"
	"github.com/cyclostatic/csdf/ratio"
	"github.com/cyclostatic/csdf/sdfgraph"
)

var (
	zero = ratio.FromInt(0)
	one  = ratio.FromInt(1)
)

func vec(vals ...int64) cyclicvec.Vector { return cyclicvec.MustNew(vals) }

func buildGraph(t *testing.T, add func(g *sdfgraph.Graph) error) *sdfgraph.Graph {
	t.Helper()
	g := sdfgraph.NewGraph()
	require.NoError(t, add(g), "building graph")
	require.NoError(t, g.Build())

	return g
}

func edgeTokens(t *testing.T, edges []HSDFEdge, want map[[2]string]int64) {
	t.Helper()
	require.Lenf(t, edges, len(want), "edges: %v", edges)
	for _, e := range edges {
		tok, ok := want[[2]string{e.From, e.To}]
		require.Truef(t, ok, "unexpected edge %+v", e)
		require.Equalf(t, tok, e.Tokens, "edge %s->%s tokens", e.From, e.To)
	}
}

func TestSingleRateEquivalentPassthroughForAlreadySingleRate(t *testing.T) {
	g := buildGraph(t, func(g *sdfgraph.Graph) error {
		_, err := g.AddChannel("a", "b", "", vec(1), vec(1), 1)
		return err
	})

	h, err := SingleRateEquivalent(g)
	require.NoError(t, err)
	_, ok := h.Wcet["a"]
	require.True(t, ok, "expected actor a in the single-rate graph")
	require.Len(t, h.Edges, 1)
	e := h.Edges[0]
	require.Equal(t, "a", e.From)
	require.Equal(t, "b", e.To)
	require.Equal(t, int64(1), e.Tokens)
}

func TestSingleRateEquivalentExpandsMultiRatePair(t *testing.T) {
	g := buildGraph(t, func(g *sdfgraph.Graph) error {
		_, err := g.AddChannel("a", "b", "", vec(1, 2), vec(1), 0)
		return err
	})

	h, err := SingleRateEquivalent(g)
	require.NoError(t, err)

	wantActors := []string{"a#1", "a#2", "b#1", "b#2", "b#3"}
	for _, a := range wantActors {
		_, ok := h.Wcet[a]
		require.Truef(t, ok, "missing expected instance actor %s; have %v", a, h.Wcet)
	}

	edgeTokens(t, h.Edges, map[[2]string]int64{
		{"a#1", "b#1"}: 0,
		{"a#2", "b#2"}: 0,
		{"a#2", "b#3"}: 0,
	})
}

func TestPredecessorLinBoundsSingleRatePair(t *testing.T) {
	p, c := vec(2), vec(3)
	optimistic, pessimistic := PredecessorLinBounds(p, c, 0)
	require.Zerof(t, optimistic.Cmp(zero), "optimistic = %s, want 0", optimistic)
	require.Zerof(t, pessimistic.Cmp(zero.Sub(one)), "pessimistic = %s, want -1", pessimistic)
	require.Falsef(t, optimistic.Less(pessimistic), "optimistic (%s) should be >= pessimistic (%s)", optimistic, pessimistic)
}

func TestSingleRateApxAndMarkedGraphFeedMCR(t *testing.T) {
	g := buildGraph(t, func(g *sdfgraph.Graph) error {
		if err := g.AddActor("a", vec(3)); err != nil {
			return err
		}
		if err := g.AddActor("b", vec(2)); err != nil {
			return err
		}
		if _, err := g.AddChannel("a", "b", "0", vec(1), vec(1), 1); err != nil {
			return err
		}
		_, err := g.AddChannel("b", "a", "1", vec(1), vec(1), 0)
		return err
	})

	apx, err := SingleRateApx(g, true)
	require.NoError(t, err)
	require.Equal(t, int64(3), apx.Wcet["a"])
	require.Equal(t, int64(2), apx.Wcet["b"])

	mg, err := SingleRateAsMarkedGraph(apx, true)
	require.NoError(t, err)

	ratioVal, cycle, _, err := mcr.MaxCycleRatio(mg, nil)
	require.NoError(t, err)
	require.Greaterf(t, ratioVal.Sign(), 0, "expected a positive cycle ratio, got %s", ratioVal)
	require.NotEmpty(t, cycle, "expected a non-empty critical cycle")
}

// buildTwoNodeMultiRate builds the two-actor multi-rate graph spec.md's
// scenarios S5 and S6 both run against: node 1 (wcet=2), node 2 (wcet=3),
// edge 1->2 production=2/consumption=3, edge 2->1 production=3/consumption=2
// with 4 initial tokens.
func buildTwoNodeMultiRate(t *testing.T) *sdfgraph.Graph {
	t.Helper()

	return buildGraph(t, func(g *sdfgraph.Graph) error {
		if err := g.AddActor("1", vec(2)); err != nil {
			return err
		}
		if err := g.AddActor("2", vec(3)); err != nil {
			return err
		}
		if _, err := g.AddChannel("1", "2", "", vec(2), vec(3), 0); err != nil {
			return err
		}
		_, err := g.AddChannel("2", "1", "", vec(3), vec(2), 4)
		return err
	})
}

func TestSingleRateEquivalentTwoNodeMultiRate(t *testing.T) {
	g := buildTwoNodeMultiRate(t)

	h, err := SingleRateEquivalent(g)
	require.NoError(t, err)

	wantActors := []string{"1#1", "1#2", "1#3", "2#1", "2#2"}
	for _, a := range wantActors {
		_, ok := h.Wcet[a]
		require.Truef(t, ok, "missing expected instance actor %s; have %v", a, h.Wcet)
	}
	require.Len(t, h.Wcet, len(wantActors))

	edgeTokens(t, h.Edges, map[[2]string]int64{
		{"1#2", "2#1"}: 0,
		{"1#3", "2#2"}: 0,
		{"2#2", "1#1"}: 1,
		{"2#2", "1#2"}: 1,
		{"2#1", "1#3"}: 0,
	})
}

func TestSingleRateApxPessimisticTwoNodeMultiRate(t *testing.T) {
	g := buildTwoNodeMultiRate(t)

	apx, err := SingleRateApx(g, true)
	require.NoError(t, err)

	require.Equal(t, int64(2), apx.Wcet["1"])
	require.Equal(t, int64(3), apx.Wcet["2"])

	edgeTokens(t, apx.Edges, map[[2]string]int64{
		{"1", "2"}: -1,
		{"2", "1"}: 2,
	})
}

func TestMultiRateEquivalentPreservesPhaseCount(t *testing.T) {
	g := buildGraph(t, func(g *sdfgraph.Graph) error {
		_, err := g.AddChannel("a", "b", "", vec(1, 2), vec(1), 0)
		return err
	})

	mr, err := MultiRateEquivalent(g)
	require.NoError(t, err)

	for _, id := range []string{"a#1", "a#2", "b"} {
		require.Truef(t, mr.HasActor(id), "expected phase-expanded actor %s, have %v", id, mr.Actors())
	}
}
