package floats

import (
	"math"
	"strconv"
)

// epsilon is the machine epsilon for float64, the spacing between 1.0 and the
// next representable value.
const epsilon = 0x1p-52

// Hashable is a float64 with a tolerant identity: equality is relative-epsilon
// comparison and the hash identity buckets values by the nearest multiple of
// epsilon, so values that compare equal collide in hashed containers with high
// probability. NaN equals NaN, and negative zero equals zero.
type Hashable float64

// ApproxEq reports whether two values are equal under scale-invariant
// relative-epsilon comparison. Exact equality (including infinities) short
// circuits; values near zero fall back to an absolute comparison.
func (h Hashable) ApproxEq(other Hashable) bool {
	a, b := float64(h), float64(other)
	if a == b {
		return true
	}
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	absA := math.Abs(a)
	absB := math.Abs(b)
	diff := math.Abs(a - b)

	if absA == 0 || absB == 0 {
		return diff < epsilon
	}
	return diff/math.Max(absA, absB) < epsilon
}

// normalized rounds to the nearest multiple of epsilon.
func (h Hashable) normalized() float64 {
	return math.Round(float64(h)/epsilon) * epsilon
}

// Bits is the hash identity. Values that compare ApproxEq yield identical
// bits with high probability. Both zeroes map to the positive zero pattern
// and all NaNs map to one canonical NaN pattern.
func (h Hashable) Bits() uint64 {
	n := h.normalized()
	if n == 0 {
		return math.Float64bits(0)
	}
	if math.IsNaN(n) {
		return math.Float64bits(math.NaN())
	}
	return math.Float64bits(n)
}

// String renders the value in plain decimal notation, the shortest form that
// round-trips.
func (h Hashable) String() string {
	return strconv.FormatFloat(float64(h), 'f', -1, 64)
}
