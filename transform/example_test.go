// Package transform_test demonstrates reducing a cyclo-static dataflow
// graph to the single-rate forms mcr.MaxCycleRatio consumes.
package transform_test

import (
	"fmt"

	"github.com/cyclostatic/csdf/cyclicvec"
	"github.com/cyclostatic/csdf/sdfgraph"
	"github.com/cyclostatic/csdf/transform"
)

func vec(vals ...int64) cyclicvec.Vector { return cyclicvec.MustNew(vals) }

// ExampleSingleRateEquivalent expands a two-phase producer feeding a
// single-rate consumer into its exact single-rate (HSDF) equivalent: two
// instances of the producer feed three instances of the consumer.
func ExampleSingleRateEquivalent() {
	g := sdfgraph.NewGraph()
	if _, err := g.AddChannel("a", "b", "", vec(1, 2), vec(1), 0); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := g.Build(); err != nil {
		fmt.Println("error:", err)
		return
	}

	h, err := transform.SingleRateEquivalent(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(h.Actors())
	// Output: [a#1 a#2 b#1 b#2 b#3]
}

// ExampleSingleRateApx approximates a two-actor cycle in O(|V|+|E|) instead
// of unrolling it, collapsing each actor's wcet to the max of its
// pattern and its channels to a single bounding token delta.
func ExampleSingleRateApx() {
	g := sdfgraph.NewGraph()
	if err := g.AddActor("a", vec(3)); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := g.AddActor("b", vec(2)); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := g.AddChannel("a", "b", "0", vec(1), vec(1), 1); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := g.AddChannel("b", "a", "1", vec(1), vec(1), 0); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := g.Build(); err != nil {
		fmt.Println("error:", err)
		return
	}

	apx, err := transform.SingleRateApx(g, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("wcet[a]=%d wcet[b]=%d\n", apx.Wcet["a"], apx.Wcet["b"])
	// Output: wcet[a]=3 wcet[b]=2
}
