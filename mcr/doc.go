// Package mcr computes the maximum cycle ratio (MCR) of a weighted,
// token-annotated multigraph using Howard-style parametric policy
// iteration.
//
// Given a graph where every edge carries a weight and a non-negative token
// count, the cycle ratio of a directed cycle is the sum of its edge
// weights divided by the sum of its token counts; MCR is the largest such
// ratio over all cycles reachable in the graph. MaxCycleRatio decomposes
// the graph into strongly connected components, solves each independently
// with computeMCRComponent, and returns the overall maximum together with
// its witness cycle and a combined longest-paths forest whose edges encode
// an optimal periodic schedule (every node's distance from the forest root
// equals its earliest admissible start time under the found ratio).
//
// computeMCRComponent builds an initial longest-paths tree under a
// conservative estimate of the ratio, then repeatedly pivots: it pops the
// tightest constraint from a priority queue, re-roots the affected subtree
// at the new parent, and propagates the resulting exact parametric
// distance change. A cycle is found the moment a pivot would make a node
// reachable from a node already in its own subtree; until then, the
// process provably improves the current ratio estimate monotonically. If
// the graph (or the relevant component) has no cycle, the ratio is
// undefined and the queue drains without ever finding one.
package mcr
