// Package graphalgo implements the weighted, token-annotated multigraph
// that underlies both the MCR engine and the rate-transform pipeline, plus
// the longest/shortest-distance solvers with cycle detection they share.
//
// Graph is a directed multigraph of string-identified vertices; each edge
// carries an exact rational Weight (ratio.Ratio, needed for the schedule's
// parametric weights w(e) - ratio*tokens(e)) and an integer Tokens count.
// LongestDistances and ShortestDistances compute a distances/parents tree
// from a root by repeated topological relaxation seeded from an initial
// depth-first spanning tree (the two-phase scheme of the spec: an initial
// DFS orders vertices, then reverse-post-order sweeps relax until they
// stabilize or a bounded number of rounds proves a cycle exists). On
// detecting a cycle, the offending simple directed cycle is reconstructed
// from the relaxation tree and returned as a *PositiveCycleError or
// *NegativeCycleError, canonicalised to start at its lexicographically
// smallest edge so callers can compare cycles for equality.
//
// Complexity: O(V+E) to seed the spanning tree, then up to O(V) relaxation
// rounds of O(E) each — O(V*E) worst case, matching the policy-iteration
// bound the MCR engine documents for itself.
package graphalgo
