package ratio

import "math/big"

// Ratio is an immutable exact rational number.
type Ratio struct {
	r *big.Rat
}

// Zero is the additive identity.
var Zero = FromInt(0)

// FromInt returns the exact integer n as a Ratio.
func FromInt(n int64) Ratio {
	return Ratio{r: new(big.Rat).SetInt64(n)}
}

// New returns the exact fraction num/den. Panics if den == 0, matching
// math/big.Rat's own SetFrac64 contract.
func New(num, den int64) Ratio {
	return Ratio{r: new(big.Rat).SetFrac64(num, den)}
}

// FromBigRat wraps an existing *big.Rat. The caller must not mutate r
// afterwards; Ratio values are treated as immutable throughout this module.
func FromBigRat(r *big.Rat) Ratio {
	if r == nil {
		return Zero
	}

	return Ratio{r: r}
}

func (a Ratio) rat() *big.Rat {
	if a.r == nil {
		return big.NewRat(0, 1)
	}

	return a.r
}

// Add returns a + b.
func (a Ratio) Add(b Ratio) Ratio {
	return Ratio{r: new(big.Rat).Add(a.rat(), b.rat())}
}

// Sub returns a - b.
func (a Ratio) Sub(b Ratio) Ratio {
	return Ratio{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

// Mul returns a * b.
func (a Ratio) Mul(b Ratio) Ratio {
	return Ratio{r: new(big.Rat).Mul(a.rat(), b.rat())}
}

// Neg returns -a.
func (a Ratio) Neg() Ratio {
	return Ratio{r: new(big.Rat).Neg(a.rat())}
}

// Quo returns a / b. Panics if b is zero, matching math/big.Rat.Quo.
func (a Ratio) Quo(b Ratio) Ratio {
	return Ratio{r: new(big.Rat).Quo(a.rat(), b.rat())}
}

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
func (a Ratio) Cmp(b Ratio) int {
	return a.rat().Cmp(b.rat())
}

// Less reports whether a < b.
func (a Ratio) Less(b Ratio) bool { return a.Cmp(b) < 0 }

// Sign returns -1, 0, or +1 for a negative, zero, or positive.
func (a Ratio) Sign() int { return a.rat().Sign() }

// IsZero reports whether a == 0.
func (a Ratio) IsZero() bool { return a.Sign() == 0 }

// IsInt reports whether a has denominator 1.
func (a Ratio) IsInt() bool { return a.rat().IsInt() }

// Int64 returns a as an int64 and true if a is an exact integer, and 0 and
// false otherwise.
func (a Ratio) Int64() (int64, bool) {
	if !a.IsInt() {
		return 0, false
	}

	return a.rat().Num().Int64(), true
}

// Denom returns the denominator of a in lowest terms (always positive).
func (a Ratio) Denom() int64 { return a.rat().Denom().Int64() }

// FloorInt64 returns floor(a) as an int64.
func (a Ratio) FloorInt64() int64 {
	num := a.rat().Num()
	den := a.rat().Denom()
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(num, den, m) // Euclidean division: m >= 0, matches floor for den > 0
	return q.Int64()
}

// String renders a in "num/den" form, or "num" when integral.
func (a Ratio) String() string {
	if a.IsInt() {
		return a.rat().Num().String()
	}

	return a.rat().RatString()
}

// Max returns the larger of a and b.
func Max(a, b Ratio) Ratio {
	if a.Less(b) {
		return b
	}

	return a
}

// Min returns the smaller of a and b.
func Min(a, b Ratio) Ratio {
	if b.Less(a) {
		return b
	}

	return a
}
