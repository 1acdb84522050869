package transform

import (
	"fmt"
	"sort"

	"github.com/cyclostatic/csdf/cyclicvec"
	"github.com/cyclostatic/csdf/intkit"
	"github.com/cyclostatic/csdf/sdfgraph"
)

// samplePrates returns the production rate pattern, and the token offset
// contributed by firings before it, that actor v's [offset]-th copy sees
// when v is unfolded into `period` copies.
func samplePrates(vector cyclicvec.Vector, offset, period int64) (int64, cyclicvec.Vector) {
	L := int64(vector.Len())
	n := L / intkit.GCD(L, period)
	pattern := make([]int64, n)
	for i := int64(0); i < n; i++ {
		start := offset + i*period
		pattern[i] = vector.Sum(start, start+period, 1)
	}

	tokenDelta := vector.Sum(0, offset, 1)

	return tokenDelta, cyclicvec.MustNew(pattern)
}

// sampleCrates is samplePrates' consumption-side counterpart.
func sampleCrates(vector cyclicvec.Vector, offset, period int64) (int64, cyclicvec.Vector) {
	L := int64(vector.Len())
	n := L / intkit.GCD(L, period)
	pattern := make([]int64, n)
	for i := int64(0); i < n; i++ {
		start := offset + 1 + (i-1)*period
		pattern[i] = vector.Sum(start, start+period, 1)
	}

	tokenDelta := pattern[0] - vector.Sum(0, offset+1, 1)

	return tokenDelta, cyclicvec.MustNew(pattern)
}

// Unfold creates, for each actor v named in periods, periods[v] copies of
// v whose production/consumption rates are sums over windows of periods[v]
// consecutive phases: a rate pattern of length |p|/gcd(|p|, periods[v]),
// single-phase only when periods[v] is a multiple of |p| (actors not named
// default to a period of 1, i.e. unchanged). Incoming channels
// for each unfolded consumer copy are determined by solving the
// congruence that the reference thesis' unfolding algorithm reduces the
// problem to: which producer copies can feed this consumer copy without
// violating the channel's token count.
func Unfold(g *sdfgraph.Graph, periods map[string]int64) (*sdfgraph.Graph, error) {
	periodOf := func(v string) int64 {
		if t, ok := periods[v]; ok && t > 0 {
			return t
		}

		return 1
	}

	out := sdfgraph.NewGraph()
	for _, vID := range g.Actors() {
		actor, ok := g.Actor(vID)
		if !ok {
			return nil, fmt.Errorf("transform: actor %q vanished between Build and query", vID)
		}
		Tv := periodOf(vID)
		for i := int64(0); i < Tv; i++ {
			pattern, err := actor.Wcet.SlicePattern(i, Tv)
			if err != nil {
				return nil, err
			}
			if err := out.AddActor(instanceName(vID, i+1, Tv), pattern); err != nil {
				return nil, err
			}
		}
	}

	for _, c := range g.AllChannels() {
		Tv, Tw := periodOf(c.From), periodOf(c.To)
		plen := int64(c.Production.Len())
		clen := int64(c.Consumption.Len())

		csum := c.Consumption.SumFull() * Tw / intkit.GCD(Tw, clen)
		psum := c.Production.SumFull() * Tv / intkit.GCD(Tv, plen)

		gm := intkit.GCD(csum, psum)
		gvw := intkit.GCD(csum, c.Production.SumFull())

		_, mulinv, _ := intkit.ExtendedEuclid(c.Production.SumFull()/gvw, gm/gvw)
		mod := intkit.GCD(Tv, plen*gm/gvw)

		for j := int64(0); j < Tw; j++ {
			sols := make(map[int64]struct{})
			n0Count := clen / intkit.GCD(clen, Tw)
			for n0 := int64(0); n0 < n0Count; n0++ {
				for i0 := int64(0); i0 < plen; i0++ {
					deltaIN := c.Tokens + c.Production.Sum(0, i0+1, 1) - c.Consumption.Sum(0, j+1+n0*Tw, 1)
					deltaI1N := c.Tokens + c.Production.Sum(0, i0, 1) - c.Consumption.Sum(0, j+1+n0*Tw, 1)
					solMin := floorDiv(gvw-deltaIN-1, gvw)
					solMax := floorDiv(gvw-deltaI1N-1, gvw)

					for sol := solMin; sol < solMax; sol++ {
						sols[floorMod(i0+sol*mulinv*plen, mod)] = struct{}{}
					}
				}
			}

			incoming := make(map[int64]struct{})
			for residue := range sols {
				for i0 := residue; i0 < Tv; i0 += mod {
					incoming[i0] = struct{}{}
				}
			}

			tokensC, incomingCrates := sampleCrates(c.Consumption, j, Tw)

			producers := make([]int64, 0, len(incoming))
			for i := range incoming {
				producers = append(producers, i)
			}
			sort.Slice(producers, func(a, b int) bool { return producers[a] < producers[b] })

			for _, i := range producers {
				tokensP, incomingPrates := samplePrates(c.Production, i, Tv)

				vi := instanceName(c.From, i+1, Tv)
				wj := instanceName(c.To, j+1, Tw)
				if _, err := out.AddChannel(vi, wj, c.Key, incomingPrates, incomingCrates, c.Tokens+tokensC+tokensP); err != nil {
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
