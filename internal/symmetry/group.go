package symmetry

import (
	"fmt"
)

// maxOrder bounds closure expansion. The largest space group has 48 point
// operations over an F lattice (4 centering vectors): 192 operations.
const maxOrder = 192

// Group is one space-group setting with its full operation list.
type Group struct {
	Number     int
	Symbol     string
	Qualifier  string
	PointGroup string
	Ops        []Op
}

// CrystalSystem derives the crystal system label from the group number.
func (g *Group) CrystalSystem() string {
	return CrystalSystemOf(g.Number)
}

// Centrosymmetric reports whether any operation has rotational part -I.
func (g *Group) Centrosymmetric() bool {
	for _, op := range g.Ops {
		if op.IsInversion() {
			return true
		}
	}
	return false
}

// CrystalSystemOf maps a space-group number to its crystal system.
func CrystalSystemOf(number int) string {
	switch {
	case number <= 2:
		return "triclinic"
	case number <= 15:
		return "monoclinic"
	case number <= 74:
		return "orthorhombic"
	case number <= 142:
		return "tetragonal"
	case number <= 167:
		return "trigonal"
	case number <= 194:
		return "hexagonal"
	default:
		return "cubic"
	}
}

// centeringVectors maps a lattice centering letter to its non-trivial
// translation vectors, as numerators over DEN. R uses the obverse
// hexagonal setting.
var centeringVectors = map[string][][3]int{
	"P": {},
	"A": {{0, DEN / 2, DEN / 2}},
	"B": {{DEN / 2, 0, DEN / 2}},
	"C": {{DEN / 2, DEN / 2, 0}},
	"I": {{DEN / 2, DEN / 2, DEN / 2}},
	"F": {{0, DEN / 2, DEN / 2}, {DEN / 2, 0, DEN / 2}, {DEN / 2, DEN / 2, 0}},
	"R": {{2 * DEN / 3, DEN / 3, DEN / 3}, {DEN / 3, 2 * DEN / 3, 2 * DEN / 3}},
}

// Closure expands generator triplets and a centering letter into the full
// operation list. The seed is identity, the parsed generators, and the
// centering translations; products are taken until the set is stable.
// Exceeding maxOrder operations means the generator data is corrupt.
func Closure(generators []string, centering string) ([]Op, error) {
	vectors, ok := centeringVectors[centering]
	if !ok {
		return nil, fmt.Errorf("unknown centering %q", centering)
	}

	seed := []Op{Identity()}
	for _, g := range generators {
		op, err := ParseTriplet(g)
		if err != nil {
			return nil, err
		}
		seed = append(seed, op)
	}
	for _, v := range vectors {
		seed = append(seed, Translation(v[0], v[1], v[2]))
	}

	seen := make(map[Op]struct{}, len(seed))
	var ops []Op
	for _, op := range seed {
		if _, dup := seen[op]; dup {
			continue
		}
		seen[op] = struct{}{}
		ops = append(ops, op)
	}

	// Breadth-first products over the growing list; insertion order is
	// deterministic for a given seed.
	for i := 0; i < len(ops); i++ {
		for j := 0; j < len(ops); j++ {
			p := ops[i].Mul(ops[j])
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			ops = append(ops, p)
			if len(ops) > maxOrder {
				return nil, fmt.Errorf("closure exceeded %d operations, generators are inconsistent", maxOrder)
			}
		}
	}
	return ops, nil
}
