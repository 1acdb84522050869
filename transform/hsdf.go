package transform

import (
	"fmt"
	"sort"

	"github.com/cyclostatic/csdf/graphalgo"
	"github.com/cyclostatic/csdf/ratio"
)

// HSDFEdge is a directed edge of a homogeneous (single-rate, single-phase)
// dataflow graph, carrying only a token count: rates are implicitly one
// token per firing on both ends.
type HSDFEdge struct {
	From, To, Key string
	Tokens        int64
}

// HSDFGraph is a homogeneous dataflow graph: every actor fires with a
// constant execution time and every channel has a fixed single-phase
// rate of one. It is the common representation produced by
// SingleRateEquivalent and SingleRateApx, and consumed by
// SingleRateAsMarkedGraph.
type HSDFGraph struct {
	Wcet  map[string]int64
	order []string
	Edges []HSDFEdge
}

func newHSDFGraph() *HSDFGraph {
	return &HSDFGraph{Wcet: make(map[string]int64)}
}

func (h *HSDFGraph) addActor(id string, wcet int64) {
	if _, exists := h.Wcet[id]; !exists {
		h.order = append(h.order, id)
	}
	h.Wcet[id] = wcet
}

func (h *HSDFGraph) addEdge(from, to, key string, tokens int64) {
	h.Edges = append(h.Edges, HSDFEdge{From: from, To: to, Key: key, Tokens: tokens})
}

// Actors returns every actor identity in sorted order.
func (h *HSDFGraph) Actors() []string {
	out := append([]string(nil), h.order...)
	sort.Strings(out)

	return out
}

// SingleRateAsMarkedGraph turns h into the weighted, token-carrying
// multigraph the MCR engine operates on directly. An edge (u, v) with
// weight w and tokens d imposes the constraint t(v,k) >= t(u,k-d) + w on
// firing times t; relateStartTimes selects whether w is the producing
// actor's execution time (constraining start times) or the consuming
// actor's (constraining finish times).
func SingleRateAsMarkedGraph(h *HSDFGraph, relateStartTimes bool) (*graphalgo.Graph, error) {
	mg := graphalgo.NewGraph()
	for _, id := range h.Actors() {
		mg.AddVertex(id)
	}

	for _, e := range h.Edges {
		weightOf := e.From
		if !relateStartTimes {
			weightOf = e.To
		}
		wcet, ok := h.Wcet[weightOf]
		if !ok {
			return nil, fmt.Errorf("transform: actor %q has no execution-time attribute", weightOf)
		}
		mg.AddEdge(e.From, e.To, e.Key, ratio.FromInt(wcet), e.Tokens)
	}

	return mg, nil
}
