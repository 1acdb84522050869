// Package schedule derives a strictly-periodic firing schedule from a
// cyclo-static dataflow graph: for each actor, a first-firing time and a
// period, such that honouring them never starves any channel of tokens.
//
// The derivation runs the single-rate approximation (pessimistic when
// admissible is true, optimistic otherwise) through
// the maximum-cycle-ratio engine to obtain a cycle time, re-expresses
// every edge's weight net of the ratio's contribution from its token
// count, and reads off actor start times from a longest-distance
// traversal rooted on the critical cycle.
package schedule
