package mcr

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cyclostatic/csdf/forest"
	"github.com/cyclostatic/csdf/graphalgo"
	"github.com/cyclostatic/csdf/pqueue"
	"github.com/cyclostatic/csdf/ratio"
)

// ErrAcyclicGraph is returned by MaxCycleRatio when the graph contains no
// cycle at all, so no cycle ratio is defined.
var ErrAcyclicGraph = errors.New("mcr: graph has no cycle, maximum cycle ratio is undefined")

// InfeasibleError reports that a component has a cycle with a positive
// weight sum but zero token sum: no finite repetition count lets that
// cycle's actors fire periodically, so the component can never be
// scheduled regardless of the chosen cycle ratio.
type InfeasibleError struct {
	Cycle graphalgo.CycleWitness
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("mcr: infeasible cycle (zero tokens, positive weight): %s", e.Cycle)
}

// pdist is a parametric distance: a (weight, tokens) pair that stays exact
// under addition/subtraction and evaluates to a plain ratio once divided
// by a candidate cycle ratio.
type pdist struct {
	Weight ratio.Ratio
	Tokens ratio.Ratio
}

func (a pdist) add(b pdist) pdist {
	return pdist{Weight: a.Weight.Add(b.Weight), Tokens: a.Tokens.Add(b.Tokens)}
}

func (a pdist) sub(b pdist) pdist {
	return pdist{Weight: a.Weight.Sub(b.Weight), Tokens: a.Tokens.Sub(b.Tokens)}
}

func edgeDist(e *graphalgo.Edge) pdist {
	return pdist{Weight: e.Weight, Tokens: ratio.FromInt(e.Tokens)}
}

// pivotValue is what the priority queue orders on: the negated candidate
// ratio (so the smallest entry is the tightest, most-improving pivot) and
// the in-edge that achieves it.
type pivotValue struct {
	NegRatio ratio.Ratio
	Edge     graphalgo.EdgeRef
}

func pivotLess(a, b pivotValue) bool { return a.NegRatio.Less(b.NegRatio) }

// biasGraph returns a copy of g whose edge weights are biased by
// -tokens*r, turning the parametric question "is there a cycle with ratio
// > r" into an ordinary (non-parametric) positive-cycle question.
func biasGraph(g *graphalgo.Graph, r ratio.Ratio) *graphalgo.Graph {
	out := graphalgo.NewGraph()
	for _, v := range g.Vertices() {
		out.AddVertex(v)
	}
	for _, v := range g.Vertices() {
		for _, e := range g.OutEdges(v) {
			w := e.Weight.Sub(ratio.FromInt(e.Tokens).Mul(r))
			out.AddEdge(e.From, e.To, e.Key, w, e.Tokens)
		}
	}

	return out
}

func inducedSubgraph(g *graphalgo.Graph, vertices []string) *graphalgo.Graph {
	in := make(map[string]bool, len(vertices))
	for _, v := range vertices {
		in[v] = true
	}

	out := graphalgo.NewGraph()
	for _, v := range vertices {
		out.AddVertex(v)
	}
	for _, v := range vertices {
		for _, e := range g.OutEdges(v) {
			if in[e.To] {
				out.AddEdge(e.From, e.To, e.Key, e.Weight, e.Tokens)
			}
		}
	}

	return out
}

// updateNodeKey recomputes node's best (tightest) incoming pivot candidate
// given the current distances, and installs or clears its queue entry.
func updateNodeKey(g *graphalgo.Graph, node string, distances map[string]pdist, queue *pqueue.IndexedPQ[pivotValue]) {
	var best *ratio.Ratio
	var bestEdge graphalgo.EdgeRef

	for _, e := range g.InEdges(node) {
		du, ok := distances[e.From]
		if !ok {
			continue
		}
		delta := du.add(edgeDist(e)).sub(distances[node])
		if delta.Tokens.Sign() <= 0 {
			continue
		}
		r := delta.Weight.Quo(delta.Tokens)
		if best == nil || r.Cmp(*best) > 0 {
			rr := r
			best = &rr
			bestEdge = e.Ref()
		}
	}

	if best == nil {
		queue.Delete(node)

		return
	}
	queue.Set(node, pivotValue{NegRatio: best.Neg(), Edge: bestEdge})
}

// computeMCRComponent computes the maximum cycle ratio of a single
// strongly connected component. raw's edge weights must be non-negative
// and its token counts non-negative. If estimate is nil, an upper bound
// (one plus the sum of the positive edge weights) is derived from the
// component's own edge weights.
//
// It returns (nil, nil, nil) if the component has no cycle at all (MCR
// undefined, any schedule admissible), or an *InfeasibleError if it has a
// zero-token positive-weight cycle.
func computeMCRComponent(raw *graphalgo.Graph, root string, estimate *ratio.Ratio) (*ratio.Ratio, []graphalgo.EdgeRef, error) {
	est := ratio.FromInt(1)
	if estimate != nil {
		est = *estimate
	} else {
		for _, v := range raw.Vertices() {
			for _, e := range raw.OutEdges(v) {
				if e.Weight.Sign() > 0 {
					est = est.Add(e.Weight)
				}
			}
		}
	}

	biased := biasGraph(raw, est)

	parents, _, err := graphalgo.LongestDistances(biased, root)
	if err != nil {
		var posErr *graphalgo.PositiveCycleError
		if errors.As(err, &posErr) {
			return nil, nil, &InfeasibleError{Cycle: posErr.Cycle}
		}

		return nil, nil, err
	}

	tree := forest.New[graphalgo.EdgeRef]()
	tree.Touch(root)
	for child, ref := range parents {
		tree.AddEdge(ref.From, child, ref)
	}

	distances := map[string]pdist{root: {Weight: ratio.Zero, Tokens: ratio.Zero}}
	for _, ref := range tree.PreOrderEdges(root) {
		e, ok := raw.EdgeByRef(ref)
		if !ok {
			continue
		}
		distances[ref.To] = distances[ref.From].add(edgeDist(e))
	}

	queue := pqueue.New[pivotValue](pivotLess)
	for v := range distances {
		updateNodeKey(raw, v, distances, queue)
	}

	for queue.Len() > 0 {
		_, pv, _ := queue.Pop()
		v, w := pv.Edge.From, pv.Edge.To

		pivotEdge, ok := raw.EdgeByRef(pv.Edge)
		if !ok {
			continue
		}
		delta := distances[v].add(edgeDist(pivotEdge)).sub(distances[w])

		for _, j := range tree.PreOrder(w) {
			distances[j] = distances[j].add(delta)

			if j == v {
				path := []graphalgo.EdgeRef{pv.Edge}
				p := v
				for p != w {
					parentKey, inEdge, ok := tree.Parent(p)
					if !ok {
						break
					}
					path = append([]graphalgo.EdgeRef{inEdge}, path...)
					p = parentKey
				}

				mcrValue := pv.NegRatio.Neg()

				return &mcrValue, path, nil
			}

			for _, e2 := range raw.OutEdges(j) {
				k := e2.To
				deltaK := distances[j].add(edgeDist(e2)).sub(distances[k])
				if deltaK.Tokens.Sign() <= 0 {
					continue
				}
				r := deltaK.Weight.Quo(deltaK.Tokens).Neg()
				if cur, exists := queue.Get(k); !exists || r.Less(cur.NegRatio) {
					queue.Set(k, pivotValue{NegRatio: r, Edge: e2.Ref()})
				}
			}

			updateNodeKey(raw, j, distances, queue)
		}

		tree.AddEdge(v, w, pv.Edge)
	}

	return nil, nil, nil
}

// MaxCycleRatio computes the maximum cycle ratio over the whole graph: it
// decomposes g into strongly connected components, solves each, and keeps
// the largest ratio found. It also returns a combined longest-paths
// forest, built using the final maximum ratio, whose parent pointers
// encode a valid periodic schedule for every vertex reachable from a
// cycle. estimate, if non-nil, seeds every component's policy iteration;
// pass nil to let each component derive its own bound.
func MaxCycleRatio(g *graphalgo.Graph, estimate *ratio.Ratio) (ratio.Ratio, []graphalgo.EdgeRef, *forest.Forest[graphalgo.EdgeRef], error) {
	components := graphalgo.StronglyConnectedComponents(g)

	var maxRatio *ratio.Ratio
	var argCycle []graphalgo.EdgeRef

	for _, comp := range components {
		sorted := append([]string(nil), comp...)
		sort.Strings(sorted)

		sub := inducedSubgraph(g, sorted)
		mcrVal, cycle, err := computeMCRComponent(sub, sorted[0], estimate)
		if err != nil {
			return ratio.Zero, nil, nil, err
		}
		if mcrVal == nil {
			continue
		}
		if maxRatio == nil || mcrVal.Cmp(*maxRatio) > 0 {
			maxRatio = mcrVal
			argCycle = cycle
		}
	}

	if maxRatio == nil {
		return ratio.Zero, nil, nil, ErrAcyclicGraph
	}

	combined := forest.New[graphalgo.EdgeRef]()
	for _, v := range g.Vertices() {
		combined.Touch(v)
	}

	for _, comp := range components {
		sorted := append([]string(nil), comp...)
		sort.Strings(sorted)

		sub := inducedSubgraph(g, sorted)
		if sub.EdgeCount() == 0 {
			continue
		}

		biased := biasGraph(sub, *maxRatio)

		root := sorted[len(sorted)-1]
		parents, _, err := graphalgo.LongestDistances(biased, root)
		if err != nil {
			return ratio.Zero, nil, nil, fmt.Errorf("mcr: building schedule forest: %w", err)
		}
		for child, ref := range parents {
			combined.AddEdge(ref.From, child, ref)
		}
	}

	return *maxRatio, argCycle, combined, nil
}
