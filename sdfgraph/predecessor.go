package sdfgraph

import "github.com/cyclostatic/csdf/cyclicvec"

// PredecessorFunc maps the k-th (1-based) consuming firing on a channel to
// the minimum producing firing index that must have completed beforehand.
// It is monotone non-decreasing in k.
type PredecessorFunc func(k int64) int64

// newPredecessorFunc builds the closed-form predecessor function for a
// channel with production vector p, consumption vector c, and t initial
// tokens:
//
//	pred(k) = max over i in [0, len(p)) of
//	          floor((c.Sum(0,k) - 1 - t - p.Sum(0,i)) / p.SumFull()) * len(p) + i + 1
//
// p.Sum and c.Sum already fold the single-rate case (len == 1) down to
// plain multiplication, so this one formula covers both the general
// cyclo-static channel and the single-rate special case.
func newPredecessorFunc(p, c cyclicvec.Vector, tokens int64) PredecessorFunc {
	period := int64(p.Len())
	total := p.SumFull()

	return func(k int64) int64 {
		var best int64
		for i := int64(0); i < period; i++ {
			num := c.Sum(0, k, 1) - 1 - tokens - p.Sum(0, i, 1)
			val := floorDiv(num, total)*period + i + 1
			if i == 0 || val > best {
				best = val
			}
		}

		return best
	}
}

// floorDiv implements Euclidean floor division for a positive divisor b.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}
