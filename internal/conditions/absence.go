package conditions

import (
	"github.com/xtaldev/sgdb/internal/hkl"
	"github.com/xtaldev/sgdb/internal/symmetry"
)

// IsAbsent reports whether a reflection is systematically absent under the
// given operation list.
//
// A reflection H is absent if any operation (R, t) leaves its direction
// invariant under the fractional rotation (H·R = H) while the phase H·t is
// not an integer. One qualifying operation suffices; remaining operations
// are not examined.
func IsAbsent(ref hkl.Triple, ops []symmetry.Op) bool {
	h := [3]float64{float64(ref.H), float64(ref.K), float64(ref.L)}
	for _, op := range ops {
		if !rotationInvariant(h, op) {
			continue
		}
		ht := 0.0
		for i := 0; i < 3; i++ {
			ht += h[i] * float64(op.Tran[i]) / symmetry.DEN
		}
		if !nearlyInteger(ht) {
			return true
		}
	}
	return false
}

// rotationInvariant tests H·R = H with H as a row vector and R the
// fractional rotation matrix.
func rotationInvariant(h [3]float64, op symmetry.Op) bool {
	for j := 0; j < 3; j++ {
		hp := 0.0
		for i := 0; i < 3; i++ {
			hp += h[i] * float64(op.Rot[i][j]) / symmetry.DEN
		}
		if !almostEqual(hp, h[j]) {
			return false
		}
	}
	return true
}
