// Package transform derives single-rate and marked-graph views of a
// cyclo-static dataflow graph, the intermediate representations the MCR
// engine and the strictly-periodic scheduler consume.
//
// SingleRateEquivalent expands every actor into its full repetition
// count, producing an exact homogeneous (single-rate) graph (an
// HSDFGraph) whose size is the sum of the repetition vector.
// MultiRateEquivalent and Unfold instead expand actors to a coarser,
// cheaper granularity (phase count, or a caller-chosen period) while
// still yielding a valid cyclo-static graph. SingleRateApx replaces each
// channel's exact predecessor function with a linear envelope, trading
// exactness for an O(1) per-channel token count. SingleRateAsMarkedGraph
// turns any HSDFGraph into the weighted, token-annotated multigraph that
// package mcr operates on.
package transform
