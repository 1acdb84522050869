// Package ratio provides exact rational-number arithmetic for throughput
// ratios, normalisation factors, and schedule times.
//
// The spec forbids floating-point throughput: a maximum cycle ratio like
// 785/16 must stay exact through every downstream computation (eigenvector
// distances, per-actor periods, start times). Ratio wraps math/big.Rat —
// the standard library's arbitrary-precision rational type — rather than a
// fixed-width fraction, because repetition vectors, moduli, and the
// products q[v]*period*ratio chained through transform and schedule can
// overflow 64 bits even when every individual CSDF rate fits comfortably.
package ratio
