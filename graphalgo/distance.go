package graphalgo

import (
	"fmt"
	"strings"

	"github.com/cyclostatic/csdf/ratio"
)

// CycleWitness is a simple directed cycle reconstructed from a distance
// computation, canonicalised to start at its lexicographically smallest
// edge so two representations of the same cycle compare equal.
type CycleWitness struct {
	Edges []EdgeRef
}

func (w CycleWitness) String() string {
	parts := make([]string, len(w.Edges))
	for i, e := range w.Edges {
		parts[i] = e.String()
	}

	return strings.Join(parts, ", ")
}

// CanonicalizeCycle rotates a forward-ordered cycle so it begins at its
// lexicographically smallest edge, mirroring the minimal-rotation
// canonicalisation used elsewhere in the corpus for cycle signatures.
func CanonicalizeCycle(edges []EdgeRef) CycleWitness {
	if len(edges) == 0 {
		return CycleWitness{}
	}

	minIdx := 0
	for i := 1; i < len(edges); i++ {
		if edges[i].less(edges[minIdx]) {
			minIdx = i
		}
	}

	rotated := make([]EdgeRef, len(edges))
	for i := range edges {
		rotated[i] = edges[(minIdx+i)%len(edges)]
	}

	return CycleWitness{Edges: rotated}
}

// PositiveCycleError reports a cycle whose total weight is positive,
// raised by LongestDistances when no finite longest-path tree exists.
type PositiveCycleError struct {
	Cycle CycleWitness
}

func (e *PositiveCycleError) Error() string {
	return fmt.Sprintf("graphalgo: positive-weight cycle: %s", e.Cycle)
}

// NegativeCycleError reports a cycle whose total weight is negative,
// raised by ShortestDistances when no finite shortest-path tree exists.
type NegativeCycleError struct {
	Cycle CycleWitness
}

func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("graphalgo: negative-weight cycle: %s", e.Cycle)
}

// LongestDistances computes, for every vertex reachable from root, the
// weight of a longest path from root along with the tree edge by which it
// is reached. It returns a *PositiveCycleError if a reachable cycle has
// positive total weight, making "longest path" undefined.
func LongestDistances(g *Graph, root string) (map[string]EdgeRef, map[string]ratio.Ratio, error) {
	return distances(g, root, true)
}

// ShortestDistances is the dual of LongestDistances: it returns a
// *NegativeCycleError if a reachable cycle has negative total weight.
func ShortestDistances(g *Graph, root string) (map[string]EdgeRef, map[string]ratio.Ratio, error) {
	return distances(g, root, false)
}

// distances implements the two-phase scheme: an initial depth-first pass
// seeds a spanning tree (first-reach edges) and records a post-order;
// repeated reverse-post-order relaxation sweeps then propagate improvements
// until they stabilize. If a sweep still finds an improvement after
// len(vertices) rounds, the graph has a cycle of the disallowed sign; one
// further sweep locates a still-changing vertex, and the offending cycle
// is walked back out of the current tree via parent pointers.
func distances(g *Graph, root string, longest bool) (map[string]EdgeRef, map[string]ratio.Ratio, error) {
	better := func(a, b ratio.Ratio) bool {
		if longest {
			return a.Cmp(b) > 0
		}

		return a.Cmp(b) < 0
	}

	dist := map[string]ratio.Ratio{root: ratio.Zero}
	parents := make(map[string]EdgeRef)
	postOrder := make([]string, 0, g.VertexCount())
	onStack := make(map[string]bool)

	var visit func(v string)
	visit = func(v string) {
		onStack[v] = true
		for _, e := range g.OutEdges(v) {
			if _, seen := dist[e.To]; seen {
				continue
			}
			dist[e.To] = dist[v].Add(e.Weight)
			parents[e.To] = e.Ref()
			visit(e.To)
		}
		onStack[v] = false
		postOrder = append(postOrder, v)
	}
	visit(root)

	relaxRound := func() (changedVertex string, changed bool) {
		for i := len(postOrder) - 1; i >= 0; i-- {
			v := postOrder[i]
			for _, e := range g.OutEdges(v) {
				if _, seen := dist[e.To]; !seen {
					continue
				}
				via := dist[v].Add(e.Weight)
				if better(via, dist[e.To]) {
					dist[e.To] = via
					parents[e.To] = e.Ref()
					changed = true
					changedVertex = e.To
				}
			}
		}

		return changedVertex, changed
	}

	stable := false
	for round := 0; round < len(postOrder); round++ {
		if _, changed := relaxRound(); !changed {
			stable = true

			break
		}
	}

	if stable {
		return parents, dist, nil
	}

	changedVertex, changed := relaxRound()
	if !changed {
		return parents, dist, nil
	}

	cur := changedVertex
	for i := 0; i < len(postOrder); i++ {
		e, ok := parents[cur]
		if !ok {
			break
		}
		cur = e.From
	}
	start := cur

	var edges []EdgeRef
	cur = start
	for {
		e, ok := parents[cur]
		if !ok {
			break
		}
		edges = append(edges, e)
		cur = e.From
		if cur == start {
			break
		}
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	witness := CanonicalizeCycle(edges)

	if longest {
		return nil, nil, &PositiveCycleError{Cycle: witness}
	}

	return nil, nil, &NegativeCycleError{Cycle: witness}
}
