// Package csdf is an umbrella for a set of libraries analyzing
// cyclo-static dataflow (CSDF) graphs: actors that fire in a fixed cyclic
// pattern, each phase producing and consuming a fixed number of tokens on
// its incident channels.
//
// The packages underneath break the analysis into stages:
//
//	ratio/     — exact rational arithmetic (wraps math/big.Rat)
//	cyclicvec/ — cyclic rate vectors with Euclidean indexing
//	intkit/    — gcd/lcm/extended-Euclid helpers shared across the above
//	graphalgo/ — a weighted multigraph plus longest/shortest distance search
//	forest/    — a generic re-parentable forest used by the MCR policy iteration
//	pqueue/    — a generic binary heap used by Howard's policy iteration
//	sdfgraph/  — the CSDF graph type itself: consistency, repetition
//	             vector, normalisation vector, modulus, single-firing
//	             simulation
//	mcr/       — maximum cycle ratio via parametric policy iteration
//	transform/ — single-rate and marked-graph lowering of a CSDF graph
//	schedule/  — strictly-periodic schedule derivation from the MCR result
//	sdfio/     — JSON, YAML, and SDF3 XML graph document loaders/writers
//
// A typical pipeline loads a graph with sdfio, builds it with
// (*sdfgraph.Graph).Build to get its repetition vector and modulus, then
// hands it to schedule.StrictlyPeriodicSchedule for a per-actor start and
// period, or to mcr.MaxCycleRatio directly for the graph's throughput
// bound after lowering it with transform.
package csdf
