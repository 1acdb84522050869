package intkit

import "errors"

// ErrZeroModulus indicates a modular operation was attempted with modulus <= 0.
var ErrZeroModulus = errors.New("intkit: modulus must be positive")

// ErrEmptyInput indicates a reducing operation (GCDSlice, LCMSlice) was
// called with no elements.
var ErrEmptyInput = errors.New("intkit: empty input")

// GCD returns the greatest common divisor of a and b (always non-negative).
// Complexity: O(log(min(a,b))).
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b. Returns 0 if either
// argument is 0.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	g := GCD(a, b)
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}

	return (a / g) * b
}

// GCDSlice returns the GCD of every element in vals.
// Returns (0, ErrEmptyInput) for an empty slice.
func GCDSlice(vals []int64) (int64, error) {
	if len(vals) == 0 {
		return 0, ErrEmptyInput
	}
	g := vals[0]
	for _, v := range vals[1:] {
		g = GCD(g, v)
	}

	return g, nil
}

// LCMSlice returns the LCM of every element in vals.
// Returns (0, ErrEmptyInput) for an empty slice.
func LCMSlice(vals []int64) (int64, error) {
	if len(vals) == 0 {
		return 0, ErrEmptyInput
	}
	l := vals[0]
	for _, v := range vals[1:] {
		l = LCM(l, v)
	}

	return l, nil
}

// ExtendedEuclid returns (g, x, y) such that a*x + b*y == g == gcd(a, b).
// Mirrors the textbook iterative extended Euclidean algorithm.
func ExtendedEuclid(a, b int64) (g, x, y int64) {
	x0, y0, x1, y1 := int64(1), int64(0), int64(0), int64(1)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}

	return a, x0, y0
}

// ModInverse returns the modular multiplicative inverse of a modulo m.
// The second return value is false if a and m are not coprime or m <= 0.
func ModInverse(a, m int64) (int64, bool) {
	if m <= 0 {
		return 0, false
	}
	g, x, _ := ExtendedEuclid(a, m)
	if g != 1 && g != -1 {
		return 0, false
	}

	inv := ((x % m) + m) % m

	return inv, true
}

// CRT combines a system of congruences x ≡ remainders[i] (mod moduli[i])
// into a single congruence x ≡ result (mod lcmModulus), using the
// pairwise-coprime-free generalisation of the Chinese Remainder Theorem.
// Returns an error if the system is inconsistent or moduli are non-positive.
func CRT(remainders, moduli []int64) (result, lcmModulus int64, err error) {
	if len(remainders) != len(moduli) {
		return 0, 0, errors.New("intkit: CRT: remainders and moduli must have equal length")
	}
	if len(moduli) == 0 {
		return 0, 0, ErrEmptyInput
	}

	x, m := remainders[0], moduli[0]
	if m <= 0 {
		return 0, 0, ErrZeroModulus
	}
	x = ((x % m) + m) % m

	for i := 1; i < len(moduli); i++ {
		mi := moduli[i]
		if mi <= 0 {
			return 0, 0, ErrZeroModulus
		}
		ri := ((remainders[i] % mi) + mi) % mi

		g, p, _ := ExtendedEuclid(m, mi)
		if (ri-x)%g != 0 {
			return 0, 0, errors.New("intkit: CRT: system of congruences is inconsistent")
		}

		lcmMM := LCM(m, mi)
		diff := (ri - x) / g
		x = x + m*((diff*p)%(mi/g))
		x = ((x % lcmMM) + lcmMM) % lcmMM
		m = lcmMM
	}

	return x, m, nil
}
