package graphalgo

import (
	"fmt"
	"sort"

	"github.com/cyclostatic/csdf/ratio"
)

// EdgeRef identifies an edge by its endpoints and disambiguating key,
// without carrying weight or token payload. It is the currency cycle
// witnesses and tree-parent pointers are expressed in.
type EdgeRef struct {
	From, To, Key string
}

func (r EdgeRef) String() string {
	if r.Key == "" {
		return fmt.Sprintf("%s->%s", r.From, r.To)
	}

	return fmt.Sprintf("%s->%s[%s]", r.From, r.To, r.Key)
}

// less reports whether r sorts before other, lexicographically on
// (From, To, Key). Used to canonicalise cycle witnesses.
func (r EdgeRef) less(other EdgeRef) bool {
	if r.From != other.From {
		return r.From < other.From
	}
	if r.To != other.To {
		return r.To < other.To
	}

	return r.Key < other.Key
}

// Edge is a directed edge carrying an exact rational weight and an
// integer token count, keyed uniquely among parallel edges between the
// same pair of vertices by Key.
type Edge struct {
	From, To, Key string
	Weight        ratio.Ratio
	Tokens        int64
}

// Ref returns the edge's identity without its payload.
func (e *Edge) Ref() EdgeRef { return EdgeRef{e.From, e.To, e.Key} }

// Graph is a directed, weighted, token-annotated multigraph of
// string-identified vertices. The zero value is not usable; use NewGraph.
type Graph struct {
	vertices map[string]struct{}
	order    []string // insertion order, for deterministic iteration
	out      map[string][]*Edge
	in       map[string][]*Edge
	autoKey  int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]struct{}),
		out:      make(map[string][]*Edge),
		in:       make(map[string][]*Edge),
	}
}

// AddVertex registers id, if not already present. Idempotent.
func (g *Graph) AddVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.order = append(g.order, id)
}

// HasVertex reports whether id has been registered.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// AddEdge adds a directed edge from->to, registering either endpoint not
// already present. If key is empty, a unique key is generated so the edge
// can still be distinguished from parallel edges between the same pair.
func (g *Graph) AddEdge(from, to, key string, weight ratio.Ratio, tokens int64) *Edge {
	g.AddVertex(from)
	g.AddVertex(to)

	if key == "" {
		key = fmt.Sprintf("#%d", g.autoKey)
		g.autoKey++
	}

	e := &Edge{From: from, To: to, Key: key, Weight: weight, Tokens: tokens}
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)

	return e
}

// Vertices returns all vertex identities in sorted order.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	sort.Strings(out)

	return out
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the total number of edges in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, es := range g.out {
		n += len(es)
	}

	return n
}

// OutEdges returns v's outgoing edges, sorted by (To, Key) for
// deterministic traversal order.
func (g *Graph) OutEdges(v string) []*Edge {
	es := append([]*Edge(nil), g.out[v]...)
	sort.Slice(es, func(i, j int) bool {
		if es[i].To != es[j].To {
			return es[i].To < es[j].To
		}

		return es[i].Key < es[j].Key
	})

	return es
}

// EdgeByRef looks up a single edge by its identity.
func (g *Graph) EdgeByRef(ref EdgeRef) (*Edge, bool) {
	for _, e := range g.out[ref.From] {
		if e.To == ref.To && e.Key == ref.Key {
			return e, true
		}
	}

	return nil, false
}

// InEdges returns v's incoming edges, sorted by (From, Key).
func (g *Graph) InEdges(v string) []*Edge {
	es := append([]*Edge(nil), g.in[v]...)
	sort.Slice(es, func(i, j int) bool {
		if es[i].From != es[j].From {
			return es[i].From < es[j].From
		}

		return es[i].Key < es[j].Key
	})

	return es
}
