// Package symmetry provides space-group symmetry operations and the bundled
// table of standard settings.
//
// Operations are stored in the integer convention used by crystallographic
// toolkits: the rotation matrix and translation vector are scaled by a common
// denominator DEN, so the fractional rotation is Rot/DEN and the fractional
// translation is Tran/DEN. All group arithmetic stays exact in integers;
// consumers divide by DEN only at the floating-point boundary.
package symmetry

import (
	"fmt"
	"strings"
)

// DEN is the shared denominator for rotation and translation integers.
// 24 accommodates every translation occurring in the standard settings
// (halves, thirds, quarters, sixths, eighths).
const DEN = 24

// Op is one symmetry operation (rotation + translation) in fractional
// coordinates, scaled by DEN. Tran components are normalized to [0, DEN).
type Op struct {
	Rot  [3][3]int
	Tran [3]int
}

// Identity returns the identity operation.
func Identity() Op {
	return Op{Rot: [3][3]int{{DEN, 0, 0}, {0, DEN, 0}, {0, 0, DEN}}}
}

// Inversion returns the inversion operation -x,-y,-z.
func Inversion() Op {
	return Op{Rot: [3][3]int{{-DEN, 0, 0}, {0, -DEN, 0}, {0, 0, -DEN}}}
}

// Translation returns a pure translation with numerators over DEN.
func Translation(tx, ty, tz int) Op {
	op := Identity()
	op.Tran = [3]int{modDen(tx), modDen(ty), modDen(tz)}
	return op
}

// Mul composes two operations as a Seitz product: a.Mul(b) applies b first,
// then a. The resulting translation is normalized mod DEN.
func (a Op) Mul(b Op) Op {
	var r Op
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0
			for k := 0; k < 3; k++ {
				s += a.Rot[i][k] * b.Rot[k][j]
			}
			r.Rot[i][j] = s / DEN
		}
		t := 0
		for k := 0; k < 3; k++ {
			t += a.Rot[i][k] * b.Tran[k]
		}
		r.Tran[i] = modDen(t/DEN + a.Tran[i])
	}
	return r
}

// IsInversion reports whether the rotational part is -I, regardless of
// translation. A group containing such an operation is centrosymmetric.
func (op Op) IsInversion() bool {
	return op.Rot == Inversion().Rot
}

// String renders the operation as a coordinate triplet, e.g. "-y,x+1/2,z+1/4".
func (op Op) String() string {
	var parts [3]string
	letters := [3]string{"x", "y", "z"}
	for i := 0; i < 3; i++ {
		var b strings.Builder
		for j := 0; j < 3; j++ {
			c := op.Rot[i][j]
			if c == 0 {
				continue
			}
			switch {
			case c == DEN:
				if b.Len() > 0 {
					b.WriteByte('+')
				}
				b.WriteString(letters[j])
			case c == -DEN:
				b.WriteByte('-')
				b.WriteString(letters[j])
			default:
				// Non-unit coefficients do not occur in crystallographic
				// rotation matrices, but render them rather than hide them.
				if c > 0 && b.Len() > 0 {
					b.WriteByte('+')
				}
				fmt.Fprintf(&b, "%d/%d%s", c, DEN, letters[j])
			}
		}
		if t := op.Tran[i]; t != 0 {
			num, den := reduce(t, DEN)
			fmt.Fprintf(&b, "+%d/%d", num, den)
		}
		if b.Len() == 0 {
			b.WriteByte('0')
		}
		parts[i] = b.String()
	}
	return parts[0] + "," + parts[1] + "," + parts[2]
}

func modDen(x int) int {
	return ((x % DEN) + DEN) % DEN
}

func reduce(num, den int) (int, int) {
	g := gcd(num, den)
	return num / g, den / g
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
