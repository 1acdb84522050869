package sdfgraph

import (
	"fmt"
	"sort"

	"github.com/cyclostatic/csdf/cyclicvec"
)

// Fire returns a new graph in which every actor named in firings has fired
// that many times (a negative count rewinds). Firing an actor rotates the
// rate vector on each of its incident channels by the firing count and
// adjusts the channel's token count to match: a producer firing once turns
// a production vector [a,b,c] into [b,c,a] and deposits a tokens; a
// consumer firing once rotates its consumption vector the same way and
// withdraws the corresponding tokens. The receiver is untouched — Fire
// clones every affected channel, applies the rotations to the clones, and
// rebuilds a fresh graph from them, so the result's q/s/tau reflect the
// new rates rather than being inherited from the receiver.
func (g *Graph) Fire(firings map[string]int64) (*Graph, error) {
	rotated := make(map[ChannelRef]*Channel)
	for _, c := range g.AllChannels() {
		rotated[c.Ref()] = &Channel{From: c.From, To: c.To, Key: c.Key, Production: c.Production, Consumption: c.Consumption, Tokens: c.Tokens}
	}

	actorIDs := make([]string, 0, len(firings))
	for id := range firings {
		actorIDs = append(actorIDs, id)
	}
	sort.Strings(actorIDs)

	for _, id := range actorIDs {
		n := firings[id]
		if n == 0 {
			continue
		}
		if !g.HasActor(id) {
			return nil, fmt.Errorf("%w: %q", ErrActorNotFound, id)
		}

		for _, c := range g.OutChannels(id) {
			cur := rotated[c.Ref()]
			cur.Production, cur.Tokens = fireProduction(cur.Production, cur.Tokens, n)
		}
		for _, c := range g.InChannels(id) {
			cur := rotated[c.Ref()]
			cur.Consumption, cur.Tokens = fireConsumption(cur.Consumption, cur.Tokens, n)
		}
	}

	out := NewGraph()
	for _, id := range g.Actors() {
		a, _ := g.Actor(id)
		if err := out.AddActor(id, a.Wcet); err != nil {
			return nil, err
		}
	}
	for _, c := range rotated {
		if _, err := out.AddChannel(c.From, c.To, c.Key, c.Production, c.Consumption, c.Tokens); err != nil {
			return nil, err
		}
	}
	if err := out.Build(); err != nil {
		return nil, err
	}

	return out, nil
}

// fireProduction rotates a producer's rate vector by firings positions and
// returns the tokens deposited: firings >= 0 deposits the sum of the
// firings phases rotated away, firings < 0 withdraws the symmetric amount.
func fireProduction(p cyclicvec.Vector, tokens, firings int64) (cyclicvec.Vector, int64) {
	rotated, err := p.SlicePattern(firings, 1)
	if err != nil {
		rotated = p
	}
	if firings >= 0 {
		return rotated, tokens + p.Sum(0, firings, 1)
	}

	return rotated, tokens - p.Sum(firings, 0, 1)
}

// fireConsumption is fireProduction's consumer-side counterpart: it
// withdraws tokens instead of depositing them.
func fireConsumption(c cyclicvec.Vector, tokens, firings int64) (cyclicvec.Vector, int64) {
	rotated, err := c.SlicePattern(firings, 1)
	if err != nil {
		rotated = c
	}
	if firings >= 0 {
		return rotated, tokens - c.Sum(0, firings, 1)
	}

	return rotated, tokens + c.Sum(firings, 0, 1)
}
