package vec

import (
	"math"

	"golang.org/x/exp/constraints"
)

// clamp limits v to the closed range [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// smoothT clamps t to [0, 1] and applies the smoothstep ease t²(3−2t).
func smoothT(t float64) float64 {
	t = clamp(t, 0, 1)

	return t * t * (3 - 2*t)
}

// floorDivMod computes floored division and modulo: the
// quotient is floor(a/b) and the remainder takes the divisor's sign, so
// q*b + r == a for finite inputs.
func floorDivMod(a, b float64) (q, r float64) {
	q = math.Floor(a / b)
	r = a - q*b

	return q, r
}
