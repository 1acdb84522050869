package transform

import (
	"fmt"

	"github.com/cyclostatic/csdf/ratio"
	"github.com/cyclostatic/csdf/sdfgraph"
)

// SingleRateApx approximates g as a homogeneous graph in O(|V|+|E|): each
// actor's execution time collapses to the max (pessimistic=true) or min
// (pessimistic=false) of its wcet vector, and each channel's exact
// predecessor function is replaced by the corresponding bound from
// PredecessorLinBounds, scaled by the channel's normalisation factor into
// an integer token count. Errors if a channel's scaled delay is not
// integral, which should not happen for a consistent graph's own
// normalisation vector.
func SingleRateApx(g *sdfgraph.Graph, pessimistic bool) (*HSDFGraph, error) {
	s, err := g.NormalisationVector()
	if err != nil {
		return nil, err
	}

	h := newHSDFGraph()
	for _, vID := range g.Actors() {
		actor, ok := g.Actor(vID)
		if !ok {
			return nil, fmt.Errorf("transform: actor %q vanished between Build and query", vID)
		}

		var wcet int64
		for i := int64(0); i < int64(actor.Wcet.Len()); i++ {
			w := actor.Wcet.At(i)
			switch {
			case i == 0:
				wcet = w
			case pessimistic && w > wcet:
				wcet = w
			case !pessimistic && w < wcet:
				wcet = w
			}
		}
		h.addActor(vID, wcet)
	}

	for _, c := range g.AllChannels() {
		optimistic, pessimisticDelay := PredecessorLinBounds(c.Production, c.Consumption, c.Tokens)
		delay := optimistic
		if pessimistic {
			delay = pessimisticDelay
		}

		factor := ratio.FromInt(s[c.Ref()])
		toks := factor.Mul(delay)
		iv, ok := toks.Int64()
		if !ok {
			return nil, fmt.Errorf("transform: delay(%s) = %s is not integral under s = %d", c.Ref(), delay, s[c.Ref()])
		}
		h.addEdge(c.From, c.To, c.Key, iv)
	}

	return h, nil
}
