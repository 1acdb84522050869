package sdfio

import (
	"fmt"

	"github.com/cyclostatic/csdf/cyclicvec"
	"github.com/cyclostatic/csdf/sdfgraph"
)

// RawActor is one actor entry of a loaded document, before rate vectors
// are turned into cyclicvec.Vector and the actor is registered in a Graph.
type RawActor struct {
	Name string     `json:"name" yaml:"name"`
	Wcet RateVector `json:"wcet,omitempty" yaml:"wcet,omitempty"`
}

// RawChannel is one channel entry of a loaded document.
type RawChannel struct {
	From        string     `json:"from" yaml:"from"`
	To          string     `json:"to" yaml:"to"`
	Key         string     `json:"key,omitempty" yaml:"key,omitempty"`
	Production  RateVector `json:"production,omitempty" yaml:"production,omitempty"`
	Consumption RateVector `json:"consumption,omitempty" yaml:"consumption,omitempty"`
	Tokens      int64      `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// RawGraph is the common intermediate representation every loader decodes
// into before ToGraph assembles and validates a sdfgraph.Graph from it.
type RawGraph struct {
	Actors   []RawActor   `json:"actors" yaml:"actors"`
	Channels []RawChannel `json:"channels" yaml:"channels"`
}

// ToGraph assembles a sdfgraph.Graph from raw, defaulting a missing wcet or
// rate to 1 (reporting a warning for the former) and a missing token count
// to 0. It registers every actor and channel but does not call Build;
// callers that need q/s/tau must do so themselves.
func (raw RawGraph) ToGraph() (*sdfgraph.Graph, []string, error) {
	var warnings []string

	g := sdfgraph.NewGraph()
	known := make(map[string]bool, len(raw.Actors))

	for _, a := range raw.Actors {
		if a.Name == "" {
			return nil, warnings, fmt.Errorf("%w: actor has no name", ErrMissingField)
		}

		wcet := []int64(a.Wcet)
		if len(wcet) == 0 {
			warnings = append(warnings, fmt.Sprintf("actor %q: missing wcet, assuming 1", a.Name))
			wcet = []int64{1}
		}

		vec, err := cyclicvec.New(wcet)
		if err != nil {
			return nil, warnings, fmt.Errorf("sdfio: actor %q: %w", a.Name, err)
		}
		if err := g.AddActor(a.Name, vec); err != nil {
			return nil, warnings, fmt.Errorf("sdfio: actor %q: %w", a.Name, err)
		}
		known[a.Name] = true
	}

	for i, c := range raw.Channels {
		if c.From == "" || c.To == "" {
			return nil, warnings, fmt.Errorf("%w: channel %d has no from/to", ErrMissingField, i)
		}
		if !known[c.From] {
			return nil, warnings, fmt.Errorf("sdfio: channel %d: unknown source actor %q", i, c.From)
		}
		if !known[c.To] {
			return nil, warnings, fmt.Errorf("sdfio: channel %d: unknown destination actor %q", i, c.To)
		}

		production := []int64(c.Production)
		if len(production) == 0 {
			production = []int64{1}
		}
		consumption := []int64(c.Consumption)
		if len(consumption) == 0 {
			consumption = []int64{1}
		}

		pvec, err := cyclicvec.New(production)
		if err != nil {
			return nil, warnings, fmt.Errorf("sdfio: channel %d (%s->%s): %w", i, c.From, c.To, err)
		}
		cvec, err := cyclicvec.New(consumption)
		if err != nil {
			return nil, warnings, fmt.Errorf("sdfio: channel %d (%s->%s): %w", i, c.From, c.To, err)
		}

		if _, err := g.AddChannel(c.From, c.To, c.Key, pvec, cvec, c.Tokens); err != nil {
			return nil, warnings, fmt.Errorf("sdfio: channel %d (%s->%s): %w", i, c.From, c.To, err)
		}
	}

	return g, warnings, nil
}

// fromGraph is the inverse of ToGraph, used by the JSON and XML writers.
func fromGraph(g *sdfgraph.Graph) RawGraph {
	var raw RawGraph
	for _, id := range g.Actors() {
		a, _ := g.Actor(id)
		raw.Actors = append(raw.Actors, RawActor{Name: id, Wcet: RateVector(a.Wcet.Raw())})
	}
	for _, c := range g.AllChannels() {
		raw.Channels = append(raw.Channels, RawChannel{
			From:        c.From,
			To:          c.To,
			Key:         c.Key,
			Production:  RateVector(c.Production.Raw()),
			Consumption: RateVector(c.Consumption.Raw()),
			Tokens:      c.Tokens,
		})
	}

	return raw
}
