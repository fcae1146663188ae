package conditions

import "math"

// Epsilon is the absolute tolerance for the rotation-invariance and
// integer-phase tests. Changing it changes which reflections count as
// absent, so it is a single named constant rather than inline literals.
const Epsilon = 1e-6

// almostEqual reports whether a and b agree within Epsilon.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// nearlyInteger reports whether x is within Epsilon of its nearest integer.
func nearlyInteger(x float64) bool {
	return almostEqual(x, math.Round(x))
}
