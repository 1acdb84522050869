package sdfgraph

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cyclostatic/csdf/cyclicvec"
)

// Sentinel errors for graph construction and analysis.
var (
	// ErrEmptyActorID indicates an actor was registered with an empty ID.
	ErrEmptyActorID = errors.New("sdfgraph: actor ID is empty")

	// ErrActorNotFound indicates an operation referenced a non-existent actor.
	ErrActorNotFound = errors.New("sdfgraph: actor not found")

	// ErrNegativeTokens indicates a channel was given a negative token count.
	ErrNegativeTokens = errors.New("sdfgraph: token count must be non-negative")

	// ErrCapacityTooSmall indicates a channel's capacity is smaller than
	// its current token count.
	ErrCapacityTooSmall = errors.New("sdfgraph: capacity is smaller than token count")

	// ErrNotBuilt indicates an analysis accessor was called before Build.
	ErrNotBuilt = errors.New("sdfgraph: graph has not been built yet")
)

// ChannelRef identifies a channel by its endpoints and disambiguating key,
// the same way graphalgo.EdgeRef identifies a graph edge.
type ChannelRef struct {
	From, To, Key string
}

func (r ChannelRef) String() string {
	if r.Key == "" {
		return fmt.Sprintf("%s->%s", r.From, r.To)
	}

	return fmt.Sprintf("%s->%s[%s]", r.From, r.To, r.Key)
}

// Actor is a node that fires cyclically according to its execution-time
// vector. Attributes besides Wcet are derived during Build.
type Actor struct {
	ID   string
	Wcet cyclicvec.Vector

	phases int64 // lcm of |Wcet| and every incident channel's rate-vector length
}

// Phases returns the actor's hyperperiod: the number of distinct phases
// its wcet, production, and consumption patterns cycle through. Valid
// only after Build.
func (a *Actor) Phases() int64 { return a.phases }

// Channel is a multigraph edge carrying cyclo-static production and
// consumption rate vectors and an initial token count.
type Channel struct {
	From, To, Key string
	Production    cyclicvec.Vector
	Consumption   cyclicvec.Vector
	Tokens        int64

	gcd  int64
	pred PredecessorFunc
}

// Ref returns the channel's identity without its payload.
func (c *Channel) Ref() ChannelRef { return ChannelRef{c.From, c.To, c.Key} }

// GCD returns gcd(sum(Production), sum(Consumption)), valid after Build.
func (c *Channel) GCD() int64 { return c.gcd }

// Predecessor returns the channel's predecessor function, valid after
// Build. See PredecessorFunc.
func (c *Channel) Predecessor() PredecessorFunc { return c.pred }

// Graph is a cyclo-static dataflow graph: actors connected by
// token-carrying, rate-cyclic channels. Construct with NewGraph, populate
// with AddActor/AddChannel, then call Build once before querying q, s, or
// tau. muActor and muChannel are held independently, mirroring the
// teacher's split-lock construction style, since actor and channel
// mutation never need to block each other during incremental assembly.
type Graph struct {
	muActor   sync.RWMutex
	muChannel sync.RWMutex

	actors      map[string]*Actor
	actorOrder  []string
	channels    map[string][]*Channel // from -> channels, in insertion order
	channelsIn  map[string][]*Channel // to -> channels, in insertion order
	autoKey     int

	built bool
	q     map[string]int64
	s     map[ChannelRef]int64
	tau   int64
}

// NewGraph returns an empty, unbuilt Graph.
func NewGraph() *Graph {
	return &Graph{
		actors:     make(map[string]*Actor),
		channels:   make(map[string][]*Channel),
		channelsIn: make(map[string][]*Channel),
	}
}

// AddActor registers an actor with the given execution-time vector.
// Idempotent: re-adding an existing ID overwrites its wcet.
func (g *Graph) AddActor(id string, wcet cyclicvec.Vector) error {
	if id == "" {
		return ErrEmptyActorID
	}

	g.muActor.Lock()
	defer g.muActor.Unlock()

	if _, exists := g.actors[id]; !exists {
		g.actorOrder = append(g.actorOrder, id)
	}
	g.actors[id] = &Actor{ID: id, Wcet: wcet}

	return nil
}

// ensureActor registers id with a constant zero wcet if not already
// present, the same auto-vivification AddEdge applies to vertices.
func (g *Graph) ensureActor(id string) {
	g.muActor.Lock()
	defer g.muActor.Unlock()

	if _, exists := g.actors[id]; exists {
		return
	}
	g.actors[id] = &Actor{ID: id, Wcet: cyclicvec.Constant(0)}
	g.actorOrder = append(g.actorOrder, id)
}

// Actor returns the actor registered under id, for callers (such as the
// rate-transform package) that need its wcet vector or phase count.
func (g *Graph) Actor(id string) (*Actor, bool) {
	g.muActor.RLock()
	defer g.muActor.RUnlock()

	a, ok := g.actors[id]

	return a, ok
}

// HasActor reports whether id has been registered.
func (g *Graph) HasActor(id string) bool {
	g.muActor.RLock()
	defer g.muActor.RUnlock()

	_, ok := g.actors[id]

	return ok
}

// Actors returns all actor IDs in sorted order.
func (g *Graph) Actors() []string {
	g.muActor.RLock()
	defer g.muActor.RUnlock()

	out := append([]string(nil), g.actorOrder...)
	sort.Strings(out)

	return out
}

// AddChannel adds a channel from->to with the given production and
// consumption rate vectors and initial token count. Endpoints not already
// registered are auto-vivified with a constant zero wcet, the way AddEdge
// auto-vivifies vertices. If key is empty, a unique key is generated.
func (g *Graph) AddChannel(from, to, key string, production, consumption cyclicvec.Vector, tokens int64) (*Channel, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyActorID
	}
	if tokens < 0 {
		return nil, ErrNegativeTokens
	}

	g.ensureActor(from)
	g.ensureActor(to)

	g.muChannel.Lock()
	defer g.muChannel.Unlock()

	if key == "" {
		key = fmt.Sprintf("#%d", g.autoKey)
		g.autoKey++
	}

	c := &Channel{From: from, To: to, Key: key, Production: production, Consumption: consumption, Tokens: tokens}
	g.channels[from] = append(g.channels[from], c)
	g.channelsIn[to] = append(g.channelsIn[to], c)
	g.built = false

	return c, nil
}

// AddChannelWithCapacity is AddChannel plus a materialised reverse channel
// to->from carrying the swapped rates and capacity-tokens tokens,
// modelling a bounded FIFO whose free slots flow back as credits.
func (g *Graph) AddChannelWithCapacity(from, to, key string, production, consumption cyclicvec.Vector, tokens, capacity int64) (forward, backward *Channel, err error) {
	if capacity < tokens {
		return nil, nil, ErrCapacityTooSmall
	}

	forward, err = g.AddChannel(from, to, key, production, consumption, tokens)
	if err != nil {
		return nil, nil, err
	}

	backward, err = g.AddChannel(to, from, "", consumption, production, capacity-tokens)
	if err != nil {
		return nil, nil, err
	}

	return forward, backward, nil
}

// OutChannels returns the channels leaving v, in insertion order.
func (g *Graph) OutChannels(v string) []*Channel {
	g.muChannel.RLock()
	defer g.muChannel.RUnlock()

	return append([]*Channel(nil), g.channels[v]...)
}

// InChannels returns the channels arriving at v, in insertion order.
func (g *Graph) InChannels(v string) []*Channel {
	g.muChannel.RLock()
	defer g.muChannel.RUnlock()

	return append([]*Channel(nil), g.channelsIn[v]...)
}

// AllChannels returns every channel in the graph, ordered by (From, To, Key).
func (g *Graph) AllChannels() []*Channel {
	g.muChannel.RLock()
	defer g.muChannel.RUnlock()

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
