// Package sdfgraph_test demonstrates building and analysing cyclo-static
// dataflow graphs with the public Graph API.
package sdfgraph_test

import (
	"fmt"

	"github.com/cyclostatic/csdf/cyclicvec"
	"github.com/cyclostatic/csdf/sdfgraph"
)

// ExampleGraph_singleRate builds the simplest possible channel, a
// single-rate producer/consumer pair, and reads back its repetition
// vector and modulus after Build.
func ExampleGraph_singleRate() {
	g := sdfgraph.NewGraph()
	if _, err := g.AddChannel("a", "b", "", cyclicvec.MustNew([]int64{1}), cyclicvec.MustNew([]int64{1}), 1); err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := g.Build(); err != nil {
		fmt.Println("error:", err)
		return
	}

	q, _ := g.RepetitionVector()
	tau, _ := g.Modulus()
	fmt.Printf("q[a]=%d q[b]=%d tau=%d\n", q["a"], q["b"], tau)
	// Output: q[a]=1 q[b]=1 tau=1
}

// ExampleGraph_multiRate builds a two-phase producer feeding a
// single-rate consumer. The cyclo-static balance equation forces b to
// fire three times for every two firings of a.
func ExampleGraph_multiRate() {
	g := sdfgraph.NewGraph()
	if _, err := g.AddChannel("a", "b", "", cyclicvec.MustNew([]int64{1, 2}), cyclicvec.MustNew([]int64{1}), 0); err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := g.Build(); err != nil {
		fmt.Println("error:", err)
		return
	}

	q, _ := g.RepetitionVector()
	tau, _ := g.Modulus()
	fmt.Printf("q[a]=%d q[b]=%d tau=%d\n", q["a"], q["b"], tau)
	// Output: q[a]=2 q[b]=3 tau=6
}

// ExampleChannel_Predecessor shows the predecessor function a single-rate
// channel exposes after Build: the k-th consumer firing depends on the
// producer firing that deposited its token.
func ExampleChannel_Predecessor() {
	g := sdfgraph.NewGraph()
	c, err := g.AddChannel("a", "b", "", cyclicvec.MustNew([]int64{2}), cyclicvec.MustNew([]int64{3}), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := g.Build(); err != nil {
		fmt.Println("error:", err)
		return
	}

	pred := c.Predecessor()
	fmt.Printf("pred(1)=%d pred(2)=%d pred(3)=%d\n", pred(1), pred(2), pred(3))
	// Output: pred(1)=2 pred(2)=3 pred(3)=5
}
