package transform

import (
	"fmt"

	"github.com/cyclostatic/csdf/sdfgraph"
)

// SingleRateEquivalent expands every actor v into q[v] copies and every
// channel into the edges of the exact single-rate (HSDF) equivalent
// graph: for each channel (u, v, key) and each of v's q[v] firings j, the
// predecessor function gives the producing firing i that must complete
// first, and the edge (u_{(i-1) mod q[u] + 1}, v_j) carries
// floor((q[u]-i)/q[u]) tokens.
func SingleRateEquivalent(g *sdfgraph.Graph) (*HSDFGraph, error) {
	q, err := g.RepetitionVector()
	if err != nil {
		return nil, err
	}

	h := newHSDFGraph()
	for _, vID := range g.Actors() {
		actor, ok := g.Actor(vID)
		if !ok {
			return nil, fmt.Errorf("transform: actor %q vanished between Build and query", vID)
		}
		qv := q[vID]
		for i := int64(0); i < qv; i++ {
			h.addActor(instanceName(vID, i+1, qv), actor.Wcet.At(i))
		}
	}

	for _, c := range g.AllChannels() {
		qu, qv := q[c.From], q[c.To]
		pred := c.Predecessor()
		for j := int64(1); j <= qv; j++ {
			i := pred(j)
			producerIndex := floorMod(i-1, qu) + 1
			tokens := floorDiv(qu-i, qu)

			from := instanceName(c.From, producerIndex, qu)
			to := instanceName(c.To, j, qv)
			h.addEdge(from, to, c.Key, tokens)
		}
	}

	return h, nil
}
