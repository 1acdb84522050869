// Package cyclicvec implements Vector, an immutable integer sequence that is
// indexed and summed cyclically.
//
// A CSDF actor's execution-time vector and a channel's production/consumption
// rate vectors are all cyclic: the value used by the k-th firing is entry
// (k mod N) of the underlying vector. Vector caches its full-period sum so
// that windowed sums over many periods are computed in O(period) rather than
// O(window length), per the spec's §4.1 complexity requirement.
package cyclicvec
