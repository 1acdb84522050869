package sdfgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFireRotatesProducerRatesAndDepositsTokens(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddActor("a", vec(1, 1)))
	require.NoError(t, g.AddActor("b", vec(1)))
	_, err := g.AddChannel("a", "b", "", vec(2, 3), vec(5), 0)
	require.NoError(t, err)
	require.NoError(t, g.Build())

	fired, err := g.Fire(map[string]int64{"a": 1})
	require.NoError(t, err)

	chans := fired.AllChannels()
	require.Len(t, chans, 1)
	c := chans[0]
	require.Equal(t, int64(3), c.Production.At(0))
	require.Equal(t, int64(2), c.Production.At(1))
	require.Equal(t, int64(2), c.Tokens)
	require.Equal(t, int64(5), c.Consumption.At(0), "consumption should be untouched by a firing b did not do")
}

func TestFireNegativeRewindsPositiveFiring(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddActor("a", vec(1, 1)))
	require.NoError(t, g.AddActor("b", vec(1)))
	_, err := g.AddChannel("a", "b", "", vec(2, 3), vec(5), 0)
	require.NoError(t, err)
	require.NoError(t, g.Build())

	forward, err := g.Fire(map[string]int64{"a": 1})
	require.NoError(t, err, "Fire(+1)")
	back, err := forward.Fire(map[string]int64{"a": -1})
	require.NoError(t, err, "Fire(-1)")

	c := back.AllChannels()[0]
	require.Equal(t, int64(2), c.Production.At(0), "production should be the original [2,3]")
	require.Equal(t, int64(3), c.Production.At(1))
	require.Equal(t, int64(0), c.Tokens, "tokens should be the original 0")
}

func TestFireUnknownActorIsAnError(t *testing.T) {
	g := NewGraph()
	_, err := g.AddChannel("a", "b", "", vec(1), vec(1), 0)
	require.NoError(t, err)
	require.NoError(t, g.Build())

	_, err = g.Fire(map[string]int64{"ghost": 1})
	require.Error(t, err, "expected an error for an unknown actor")
}
