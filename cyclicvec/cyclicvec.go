package cyclicvec

import (
	"errors"

	"github.com/cyclostatic/csdf/intkit"
)

// ErrEmptyVector indicates an attempt to build a Vector of length 0.
var ErrEmptyVector = errors.New("cyclicvec: vector must have at least one element")

// Vector is an immutable sequence of integers, indexed and summed modulo
// its length. The zero value is not valid; use New.
type Vector struct {
	data []int64
	sum  int64
}

// New copies vals into a new Vector and caches its full-period sum.
// Returns ErrEmptyVector for an empty input.
func New(vals []int64) (Vector, error) {
	if len(vals) == 0 {
		return Vector{}, ErrEmptyVector
	}
	data := append([]int64(nil), vals...)
	var sum int64
	for _, v := range data {
		sum += v
	}

	return Vector{data: data, sum: sum}, nil
}

// MustNew is New, panicking on error. Intended for literal construction
// in tests and examples where the length is known to be non-zero.
func MustNew(vals []int64) Vector {
	v, err := New(vals)
	if err != nil {
		panic(err)
	}

	return v
}

// Constant returns a length-1 Vector holding a single value, equivalent to
// an actor or channel that does not vary cyclically.
func Constant(v int64) Vector {
	return Vector{data: []int64{v}, sum: v}
}

// Len returns the vector's period length.
func (v Vector) Len() int { return len(v.data) }

// Total returns the sum of one full period.
func (v Vector) Total() int64 { return v.sum }

// Raw returns the underlying values as a fresh slice (safe to mutate).
func (v Vector) Raw() []int64 {
	return append([]int64(nil), v.data...)
}

// floorDiv and floorMod implement Euclidean (floor) division for a
// positive divisor b, matching Python's % and // semantics that the
// closed-form predecessor and windowed-sum formulas rely on.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// At returns the element at index i, interpreted modulo Len().
func (v Vector) At(i int64) int64 {
	L := int64(v.Len())

	return v.data[floorMod(i, L)]
}

// Sum computes the exact sum of the window
//
//	v[start], v[start+step], v[start+2*step], ...
//
// up to (but excluding) index stop, i.e. the half-open range matched by
// the number of terms `1 + floor((stop-start-1)/step)`. step must be > 0.
//
// Complexity: O(period + windowLength/period) where
// period = Len()/gcd(step, Len()).
func (v Vector) Sum(start, stop, step int64) int64 {
	if step <= 0 {
		step = 1
	}
	L := int64(v.Len())
	g := intkit.GCD(step, L)
	period := L / g

	startMod := floorMod(start, L)

	var pattern []int64
	var psum int64
	if startMod == 0 && step == 1 {
		pattern = v.data
		psum = v.sum
	} else {
		pattern = make([]int64, period)
		for i := int64(0); i < period; i++ {
			idx := floorMod(start+i*step, L)
			pattern[i] = v.data[idx]
			psum += pattern[i]
		}
	}

	resultLen := 1 + floorDiv(stop-start-1, step)
	if resultLen < 0 {
		resultLen = 0
	}

	numPeriods := resultLen / period
	modPeriods := resultLen % period

	var tail int64
	for i := int64(0); i < modPeriods; i++ {
		tail += pattern[i]
	}

	return numPeriods*psum + tail
}

// SumFull returns Sum(0, Len(), 1), the sum over exactly one period.
func (v Vector) SumFull() int64 {
	return v.sum
}

// SlicePattern returns the new cyclic Vector produced by sampling
// v[start], v[start+step], ... for one full period of the sampled pattern
// (the "stop == None" case in the spec's §4.1 slice semantics). The result
// has length Len()/gcd(step, Len()).
func (v Vector) SlicePattern(start, step int64) (Vector, error) {
	if step <= 0 {
		step = 1
	}
	L := int64(v.Len())
	g := intkit.GCD(step, L)
	period := L / g

	pattern := make([]int64, period)
	for i := int64(0); i < period; i++ {
		pattern[i] = v.At(start + i*step)
	}

	return New(pattern)
}

// SliceWindow returns the finite ordered window
//
//	[v[start], v[start+step], ..., ] up to (excluding) stop
//
// as a plain slice, matching the spec's "stop provided" slice semantics.
func (v Vector) SliceWindow(start, stop, step int64) []int64 {
	if step <= 0 {
		step = 1
	}
	L := int64(v.Len())
	g := intkit.GCD(step, L)
	period := L / g

	pattern := make([]int64, period)
	for i := int64(0); i < period; i++ {
		pattern[i] = v.At(start + i*step)
	}

	resultLen := 1 + floorDiv(stop-start-1, step)
	if resultLen < 0 {
		resultLen = 0
	}

	out := make([]int64, 0, resultLen)
	for int64(len(out)) < resultLen {
		remaining := resultLen - int64(len(out))
		n := period
		if remaining < n {
			n = remaining
		}
		out = append(out, pattern[:n]...)
	}

	return out
}

// Equal reports whether v and other have identical periodic content.
func (v Vector) Equal(other Vector) bool {
	if v.Len() != other.Len() {
		return false
	}
	for i, x := range v.data {
		if other.data[i] != x {
			return false
		}
	}

	return true
}
