package transform

import "fmt"

// instanceName names the i-th (1-based) of count instances of actor.
// When count is 1, the actor's own identity is reused unchanged, the same
// collapsing single-rate graphs and multi-rate graphs apply when an actor
// needs no expansion.
func instanceName(actor string, index, count int64) string {
	if count <= 1 {
		return actor
	}

	return fmt.Sprintf("%s#%d", actor, index)
}

// floorDiv implements Euclidean floor division for a positive divisor b.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

// floorMod implements Euclidean floor modulus for a positive divisor b.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
