package transform

import (
	"github.com/cyclostatic/csdf/cyclicvec"
	"github.com/cyclostatic/csdf/intkit"
	"github.com/cyclostatic/csdf/ratio"
)

// PredecessorLinBounds computes a linear envelope around a channel's exact
// predecessor function, expressed as token deltas: optimistic is the
// largest token delta over all (i, j) phase pairs, and pessimistic is the
// smallest one plus gcd(sum(production), sum(consumption)) minus the
// average production rate (for a single-rate channel with production 2,
// consumption 3 and no tokens: optimistic 0, pessimistic -1). SingleRateApx picks one or the other
// depending on its own pessimistic/optimistic approximation mode. It walks
// every (i, j) combination of production and consumption phases once,
// tracking a running token offset exactly as the channel's firings would
// deplete and replenish it over one hyperperiod.
func PredecessorLinBounds(production, consumption cyclicvec.Vector, tokens int64) (optimistic, pessimistic ratio.Ratio) {
	g := intkit.GCD(production.SumFull(), consumption.SumFull())
	avgP := ratio.New(production.SumFull(), int64(production.Len()))
	avgC := ratio.New(consumption.SumFull(), int64(consumption.Len()))

	var minVal, maxVal ratio.Ratio
	first := true
	delta := tokens

	P := int64(production.Len())
	C := int64(consumption.Len())
	for i := int64(0); i < P; i++ {
		for j := int64(0); j < C; j++ {
			floored := ratio.FromInt(g * floorDiv(delta, g))
			valIJ := floored.Sub(ratio.FromInt(i).Mul(avgP)).Add(ratio.FromInt(j).Mul(avgC))

			if first {
				minVal, maxVal = valIJ, valIJ
				first = false
			} else {
				minVal = ratio.Min(minVal, valIJ)
				maxVal = ratio.Max(maxVal, valIJ)
			}

			delta -= consumption.At(j)
		}
		delta = delta + production.At(i) + consumption.SumFull()
	}

	return maxVal, minVal.Add(ratio.FromInt(g)).Sub(avgP)
}
