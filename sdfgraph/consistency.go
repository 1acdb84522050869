package sdfgraph

import (
	"fmt"
	"sort"

	"github.com/cyclostatic/csdf/intkit"
	"github.com/cyclostatic/csdf/ratio"
)

// InconsistentEdgeError indicates a channel's rate vectors cannot satisfy
// the cyclo-static balance equation against the repetition rates implied
// by the rest of its connected component.
type InconsistentEdgeError struct {
	Channel ChannelRef
}

func (e *InconsistentEdgeError) Error() string {
	return fmt.Sprintf("sdfgraph: inconsistent channel %s", e.Channel)
}

// Build validates every channel's rate vectors, computes each actor's
// phase count, checks the graph for cyclo-static consistency, and solves
// the repetition vector, normalisation vector, and modulus. It must be
// called once before RepetitionVector, NormalisationVector, Modulus, or
// any channel's Predecessor are queried. Build is not safe to call
// concurrently with AddActor/AddChannel.
func (g *Graph) Build() error {
	g.muActor.Lock()
	defer g.muActor.Unlock()
	g.muChannel.Lock()
	defer g.muChannel.Unlock()

	channels := g.allChannelsLocked()

	if err := g.validateChannelsLocked(channels); err != nil {
		return err
	}

	g.computePhasesLocked(channels)

	fractionalQ := g.fractionalRepetitionVectorLocked(channels)

	if err := validateBalance(channels, g.actors, fractionalQ); err != nil {
		return err
	}

	q, m, err := integralise(g.actors, fractionalQ)
	if err != nil {
		return err
	}

	nodeLCMRates := nodeLCMRatesOf(channels)
	tau, err := modulus(fractionalQ, nodeLCMRates, m)
	if err != nil {
		return err
	}

	s := normalisation(channels, q, tau)

	g.q, g.s, g.tau, g.built = q, s, tau, true

	return nil
}

func (g *Graph) allChannelsLocked() []*Channel {
	var out []*Channel
	for _, cs := range g.channels {
		out = append(out, cs...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Key < out[j].Key
	})

	return out
}

// validateChannelsLocked rejects malformed rate vectors and precomputes
// each channel's gcd and predecessor function.
func (g *Graph) validateChannelsLocked(channels []*Channel) error {
	for _, c := range channels {
		if c.Production.SumFull() <= 0 {
			return fmt.Errorf("sdfgraph: channel %s has a non-positive production sum", c.Ref())
		}
		if c.Consumption.SumFull() <= 0 {
			return fmt.Errorf("sdfgraph: channel %s has a non-positive consumption sum", c.Ref())
		}

		c.gcd = intkit.GCD(c.Production.SumFull(), c.Consumption.SumFull())
		c.pred = newPredecessorFunc(c.Production, c.Consumption, c.Tokens)
	}

	return nil
}

// computePhasesLocked sets each actor's phase count to the lcm of its
// wcet vector's length and every incident channel's production or
// consumption vector length.
func (g *Graph) computePhasesLocked(channels []*Channel) {
	for _, a := range g.actors {
		a.phases = int64(a.Wcet.Len())
	}
	for _, c := range channels {
		from := g.actors[c.From]
		from.phases = intkit.LCM(from.phases, int64(c.Production.Len()))

		to := g.actors[c.To]
		to.phases = intkit.LCM(to.phases, int64(c.Consumption.Len()))
	}
}

// neighborEdge is one step of the undirected adjacency used to grow the
// fractional repetition vector across a connected component.
type neighborEdge struct {
	other     string
	channel   *Channel
	curIsFrom bool // true if the node we're walking from is channel.From
}

// fractionalRepetitionVectorLocked derives, for every actor, a rational
// multiple of a per-component reference firing rate, by growing a
// spanning tree over the graph's undirected channel-adjacency (self-loops
// excluded, since they impose no relation between distinct actors) and
// propagating the cyclo-static balance ratio along each tree edge.
// Isolated actors, and actors reachable only via self-loops, become the
// root of their own singleton component with a fractional rate of 1.
//
// This single BFS pass replaces the original's two intertwined checks (one
// assigning fractional rates while walking the undirected DFS tree, one
// separately verifying any reverse channel's rate product): every channel,
// tree or not, forward or reverse, is validated uniformly afterwards in
// validateBalance, so a parallel or reverse channel can no longer be
// silently skipped.
func (g *Graph) fractionalRepetitionVectorLocked(channels []*Channel) map[string]ratio.Ratio {
	adj := make(map[string][]neighborEdge)
	for _, c := range channels {
		if c.From == c.To {
			continue
		}
		adj[c.From] = append(adj[c.From], neighborEdge{other: c.To, channel: c, curIsFrom: true})
		adj[c.To] = append(adj[c.To], neighborEdge{other: c.From, channel: c, curIsFrom: false})
	}

	roots := append([]string(nil), g.actorOrder...)
	sort.Strings(roots)

	fractionalQ := make(map[string]ratio.Ratio, len(g.actors))
	for _, root := range roots {
		if _, done := fractionalQ[root]; done {
			continue
		}
		fractionalQ[root] = ratio.FromInt(1)
		queue := []string{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range adj[cur] {
				if _, done := fractionalQ[nb.other]; done {
					continue
				}
				vPeriod := g.actors[nb.channel.From].phases
				wPeriod := g.actors[nb.channel.To].phases
				pSum := ratio.FromInt(nb.channel.Production.Sum(0, vPeriod, 1))
				cSum := ratio.FromInt(nb.channel.Consumption.Sum(0, wPeriod, 1))

				var q ratio.Ratio
				if nb.curIsFrom {
					// cur is the producer; other is the consumer.
					q = fractionalQ[cur].Mul(pSum).Quo(cSum)
				} else {
					// cur is the consumer; other is the producer.
					q = fractionalQ[cur].Mul(cSum).Quo(pSum)
				}
				fractionalQ[nb.other] = q
				queue = append(queue, nb.other)
			}
		}
	}

	return fractionalQ
}

// validateBalance checks, for every channel, that the cyclo-static balance
// equation holds against the fractional repetition vector derived above.
func validateBalance(channels []*Channel, actors map[string]*Actor, fractionalQ map[string]ratio.Ratio) error {
	for _, c := range channels {
		vPeriod := actors[c.From].phases
		wPeriod := actors[c.To].phases
		pSum := ratio.FromInt(c.Production.Sum(0, vPeriod, 1))
		cSum := ratio.FromInt(c.Consumption.Sum(0, wPeriod, 1))

		lhs := pSum.Mul(fractionalQ[c.From])
		rhs := cSum.Mul(fractionalQ[c.To])
		if lhs.Cmp(rhs) != 0 {
			return &InconsistentEdgeError{Channel: c.Ref()}
		}
	}

	return nil
}

// integralise scales the fractional repetition vector by the lcm of its
// denominators and each actor's phase count, producing the integer
// repetition vector q.
func integralise(actors map[string]*Actor, fractionalQ map[string]ratio.Ratio) (map[string]int64, int64, error) {
	m := int64(1)
	for _, f := range fractionalQ {
		m = intkit.LCM(m, f.Denom())
	}

	q := make(map[string]int64, len(fractionalQ))
	for id, f := range fractionalQ {
		val := f.Mul(ratio.FromInt(m)).Mul(ratio.FromInt(actors[id].phases))
		iv, ok := val.Int64()
		if !ok {
			return nil, 0, fmt.Errorf("sdfgraph: repetition count for actor %q is not integral (%s)", id, val)
		}
		q[id] = iv
	}

	return q, m, nil
}

// nodeLCMRatesOf computes, for every actor, the lcm of the rate-sums of
// every incident channel and the denominators of their per-phase averages.
// Actors with no incident channels are left absent (modulus treats that as
// the neutral element 1).
func nodeLCMRatesOf(channels []*Channel) map[string]int64 {
	rates := make(map[string]int64)
	accumulate := func(id string, sum int64, length int) {
		avg := ratio.New(sum, int64(length))
		cur := rates[id]
		if cur == 0 {
			cur = 1
		}
		rates[id] = intkit.LCM(intkit.LCM(cur, sum), avg.Denom())
	}
	for _, c := range channels {
		accumulate(c.From, c.Production.SumFull(), c.Production.Len())
		accumulate(c.To, c.Consumption.SumFull(), c.Consumption.Len())
	}

	return rates
}

// modulus computes tau, the lcm over every actor of
// numerator(nodeLCMRates[v] * fractionalQ[v] * m).
func modulus(fractionalQ map[string]ratio.Ratio, nodeLCMRates map[string]int64, m int64) (int64, error) {
	tau := int64(1)
	for id, f := range fractionalQ {
		rate := nodeLCMRates[id]
		if rate == 0 {
			rate = 1
		}
		val := ratio.FromInt(rate).Mul(ratio.FromInt(m)).Mul(f)
		iv, ok := val.Int64()
		if !ok {
			return 0, fmt.Errorf("sdfgraph: modulus contribution of actor %q is not integral (%s)", id, val)
		}
		tau = intkit.LCM(tau, iv)
	}

	return tau, nil
}

// normalisation computes s[channel] = (tau * len(production)) / (q[from] *
// sum(production)) for every channel, keyed by the channel's own identity
// rather than its (from, to) actor pair, so parallel channels between the
// same two actors each keep their own normalisation factor instead of
// overwriting one another.
func normalisation(channels []*Channel, q map[string]int64, tau int64) map[ChannelRef]int64 {
	s := make(map[ChannelRef]int64, len(channels))
	for _, c := range channels {
		numerator := tau * int64(c.Production.Len())
		denominator := q[c.From] * c.Production.SumFull()
		s[c.Ref()] = numerator / denominator
	}

	return s
}

// RepetitionVector returns q: the number of firings of each actor per
// graph iteration.
func (g *Graph) RepetitionVector() (map[string]int64, error) {
	if !g.built {
		return nil, ErrNotBuilt
	}

	return g.q, nil
}

// NormalisationVector returns s, keyed by channel identity.
func (g *Graph) NormalisationVector() (map[ChannelRef]int64, error) {
	if !g.built {
		return nil, ErrNotBuilt
	}

	return g.s, nil
}

// Modulus returns tau: the lcm over every actor v of
// numerator(lcm of v's incident rate sums * fractional q[v] * m), a common
// time scale that keeps the normalisation vector s integral. It is not an
// iteration count: a two-actor chain whose state repeats after one
// iteration can have tau = 6.
func (g *Graph) Modulus() (int64, error) {
	if !g.built {
		return 0, ErrNotBuilt
	}

	return g.tau, nil
}
