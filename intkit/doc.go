// Package intkit provides exact integer-arithmetic primitives shared across
// the csdf module: greatest common divisor and least common multiple over
// scalars and iterables, the extended Euclidean algorithm, modular inverse,
// and the Chinese Remainder Theorem.
//
// All functions operate on int64 and never fall back to floating point;
// callers that need values beyond 64 bits should widen before calling in
// (the module's rational type, ratio.Ratio, uses math/big internally for
// exactly this reason).
package intkit
