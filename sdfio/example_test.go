// Package sdfio_test demonstrates loading a cyclo-static dataflow graph
// from its JSON wire format.
package sdfio_test

import (
	"fmt"
	"strings"

	"github.com/cyclostatic/csdf/sdfio"
)

// ExampleLoadJSON parses a two-actor graph and reports its repetition
// vector, the same way a caller would after reading a graph off disk.
func ExampleLoadJSON() {
	const doc = `{
  "actors": [
    {"name": "producer", "wcet": [1, 2]},
    {"name": "consumer", "wcet": [1]}
  ],
  "channels": [
    {"from": "producer", "to": "consumer", "production": [1, 2], "consumption": [1], "tokens": 0}
  ]
}`

	g, warnings, err := sdfio.LoadJSON(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, w := range warnings {
		fmt.Println("warning:", w)
	}

	q, err := g.RepetitionVector()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("q[producer]=%d q[consumer]=%d\n", q["producer"], q["consumer"])
	// Output: q[producer]=2 q[consumer]=3
}

// ExampleParseRateVector shows the bracket grammar rate vectors accept in
// text wire formats: a comma-separated list, or a "count*value" run.
func ExampleParseRateVector() {
	list, err := sdfio.ParseRateVector("[1,2,1]")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	run, err := sdfio.ParseRateVector("[3*2]")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(list, run)
	// Output: [1 2 1] [2 2 2]
}
