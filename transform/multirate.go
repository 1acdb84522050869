package transform

import (
	"fmt"

	"github.com/cyclostatic/csdf/cyclicvec"
	"github.com/cyclostatic/csdf/intkit"
	"github.com/cyclostatic/csdf/sdfgraph"
)

// MultiRateEquivalent expands every actor to its phase count (rather than
// its full repetition count) and reduces every channel to a single phase,
// producing an SDF graph at phase granularity: coarser than
// SingleRateEquivalent but still exact. Each resulting channel carries the
// original channel's production and consumption period sums as constant
// rates; rates are not reduced to one.
func MultiRateEquivalent(g *sdfgraph.Graph) (*sdfgraph.Graph, error) {
	out := sdfgraph.NewGraph()
	phases := make(map[string]int64)

	for _, vID := range g.Actors() {
		actor, ok := g.Actor(vID)
		if !ok {
			return nil, fmt.Errorf("transform: actor %q vanished between Build and query", vID)
		}
		Tv := actor.Phases()
		phases[vID] = Tv
		for i := int64(0); i < Tv; i++ {
			id := instanceName(vID, i+1, Tv)
			if err := out.AddActor(id, cyclicvec.Constant(actor.Wcet.At(i))); err != nil {
				return nil, err
			}
		}
	}

	for _, c := range g.AllChannels() {
		Tv, Tw := phases[c.From], phases[c.To]
		plen := int64(c.Production.Len())

		if Tv != plen || Tw != int64(c.Consumption.Len()) {
			return nil, fmt.Errorf("transform: channel %s rate-vector length does not match actor phase count", c.Ref())
		}

		csum := c.Consumption.SumFull()
		psum := c.Production.SumFull()
		gvw := intkit.GCD(csum, psum)

		for j := int64(0); j < Tw; j++ {
			for i := int64(0); i < plen; i++ {
				deltaIN := c.Tokens + c.Production.Sum(0, i+1, 1) - c.Consumption.Sum(0, j+1, 1)
				deltaI1N := c.Tokens + c.Production.Sum(0, i, 1) - c.Consumption.Sum(0, j+1, 1)
				solMin := floorDiv(gvw-deltaIN-1, gvw)
				solMax := floorDiv(gvw-deltaI1N-1, gvw)

				if solMin >= solMax {
					continue
				}

				tokens := c.Tokens + c.Production.Sum(0, i, 1) + c.Consumption.Sum(j+1, int64(c.Consumption.Len()), 1)
				from := instanceName(c.From, i+1, Tv)
				to := instanceName(c.To, j+1, Tw)
				if _, err := out.AddChannel(from, to, c.Key, cyclicvec.Constant(psum), cyclicvec.Constant(csum), tokens); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := out.Build(); err != nil {
		return nil, err
	}

	return out, nil
}
