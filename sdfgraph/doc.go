// Package sdfgraph models cyclo-static dataflow (CSDF) graphs: actors that
// fire cyclically according to per-phase production/consumption rate
// vectors, connected by token-carrying channels.
//
// A Graph is built incrementally with AddActor/AddChannel (mirroring the
// construction style of a general-purpose graph type: two independently
// locked maps, one for actors and one for channel adjacency) and then
// finalised with Build, which computes each actor's phase count, checks
// the graph for rate consistency, and solves the repetition vector q, the
// normalisation vector s, and the modulus tau (a common time scale, the
// lcm of per-actor scaled rate sums, from which s is derived and which the
// schedule divides by q[v] to get each actor's period).
//
// Consistency checking follows the classical CSDF balance equations: for
// every channel (v, w), the total tokens produced by v over one of v's
// periods must match the total tokens consumed by w over one of w's
// periods, scaled by each actor's repetition count. Build derives this by
// growing a fractional repetition vector over a spanning tree of the
// graph's underlying connectivity, then validating every channel (tree or
// not) against it; any violation is reported as an inconsistency error
// before q, s, or tau are computed.
//
// Fire provides a small, deterministic firing primitive: it returns a new,
// rebuilt graph reflecting the effect of one or more actors firing a given
// number of times, rotating each incident channel's rate vector and
// adjusting its token count. It operates on cloned channels and never
// mutates the receiver; it is a building block for a self-timed simulator,
// not a simulator itself.
package sdfgraph
