package schedule

import (
	"fmt"

	"github.com/cyclostatic/csdf/graphalgo"
	"github.com/cyclostatic/csdf/mcr"
	"github.com/cyclostatic/csdf/ratio"
	"github.com/cyclostatic/csdf/sdfgraph"
	"github.com/cyclostatic/csdf/transform"
)

// Entry is one actor's place in a strictly-periodic schedule: it fires
// first at Start, and every Period time units thereafter.
type Entry struct {
	Start  ratio.Ratio
	Period ratio.Ratio
}

// StrictlyPeriodicSchedule derives a firing schedule for every actor of
// g. admissible selects the pessimistic (true) or optimistic (false)
// single-rate approximation transform.SingleRateApx builds the schedule
// from; the pessimistic approximation yields an admissible (safe, never
// starving) schedule, the optimistic one a tighter but possibly
// infeasible lower bound. g must already be built.
func StrictlyPeriodicSchedule(g *sdfgraph.Graph, admissible bool) (map[string]Entry, error) {
	apx, err := transform.SingleRateApx(g, admissible)
	if err != nil {
		return nil, fmt.Errorf("schedule: approximating graph: %w", err)
	}

	mg, err := transform.SingleRateAsMarkedGraph(apx, true)
	if err != nil {
		return nil, fmt.Errorf("schedule: lowering to marked graph: %w", err)
	}

	cycleTime, cycle, _, err := mcr.MaxCycleRatio(mg, nil)
	if err != nil {
		return nil, fmt.Errorf("schedule: computing max cycle ratio: %w", err)
	}

	wg := graphalgo.NewGraph()
	for _, v := range mg.Vertices() {
		wg.AddVertex(v)
	}
	for _, v := range mg.Vertices() {
		for _, e := range mg.OutEdges(v) {
			weight := e.Weight.Sub(ratio.FromInt(e.Tokens).Mul(cycleTime))
			wg.AddEdge(e.From, e.To, e.Key, weight, 0)
		}
	}

	root := cycle[0].From
	_, eigen, err := graphalgo.LongestDistances(wg, root)
	if err != nil {
		return nil, fmt.Errorf("schedule: longest distances from critical cycle: %w", err)
	}

	q, err := g.RepetitionVector()
	if err != nil {
		return nil, err
	}
	tau, err := g.Modulus()
	if err != nil {
		return nil, err
	}

	result := make(map[string]Entry, len(q))
	var minStart ratio.Ratio
	first := true
	for _, v := range g.Actors() {
		qv, ok := q[v]
		if !ok || qv == 0 {
			continue
		}
		phasesPerIteration := ratio.FromInt(tau / qv)
		period := phasesPerIteration.Mul(cycleTime)
		start := eigen[v].Add(phasesPerIteration.Sub(ratio.FromInt(1)).Mul(cycleTime))

		result[v] = Entry{Start: start, Period: period}
		if first || start.Less(minStart) {
			minStart = start
			first = false
		}
	}

	for v, e := range result {
		e.Start = e.Start.Sub(minStart)
		result[v] = e
	}

	return result, nil
}

// Throughput returns 1/cycleTime, the number of graph iterations
// completed per time unit under the schedule cycleTime was computed
// from.
func Throughput(cycleTime ratio.Ratio) ratio.Ratio {
	return ratio.FromInt(1).Quo(cycleTime)
}
