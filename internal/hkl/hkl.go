// Package hkl provides Miller index triples and the ten reciprocal-lattice
// zones analyzed for systematic absences.
//
// A zone restricts which index components vary freely: the general zone hkl,
// the three principal axes (h00, 0k0, 00l), the three principal planes
// (hk0, h0l, 0kl), and the three diagonal lines (hhl, hkk, hll) where one
// pair of indices is forced equal.
package hkl

// Triple is a Miller index triple (h, k, l). Components may be negative;
// (0, 0, 0) is excluded from all zone sampling.
type Triple struct {
	H, K, L int
}

// Zone identifies one of the ten fixed reflection zones.
type Zone string

const (
	ZoneHKL Zone = "hkl"
	Zone0KL Zone = "0kl"
	ZoneH0L Zone = "h0l"
	ZoneHK0 Zone = "hk0"
	ZoneHHL Zone = "hhl"
	ZoneHKK Zone = "hkk"
	ZoneHLL Zone = "hll"
	ZoneH00 Zone = "h00"
	Zone0K0 Zone = "0k0"
	Zone00L Zone = "00l"
)

// Zones lists all zones in canonical analysis order. Output structures
// preserve this order for deterministic serialization.
var Zones = []Zone{
	ZoneHKL, Zone0KL, ZoneH0L, ZoneHK0,
	ZoneHHL, ZoneHKK, ZoneHLL,
	ZoneH00, Zone0K0, Zone00L,
}

// Sample generates the bounded candidate set for a zone. Every free
// component ranges over [-maxIndex/2, maxIndex). Degenerate points where
// all free components are zero are excluded; tied components (k=l in hkk,
// for example) follow their partner. A non-positive maxIndex yields an
// empty set.
func Sample(zone Zone, maxIndex int) []Triple {
	lo := -(maxIndex / 2)
	hi := maxIndex
	if lo >= hi {
		return nil
	}

	var refs []Triple
	switch zone {
	case ZoneHKL:
		for h := lo; h < hi; h++ {
			for k := lo; k < hi; k++ {
				for l := lo; l < hi; l++ {
					if h == 0 && k == 0 && l == 0 {
						continue
					}
					refs = append(refs, Triple{h, k, l})
				}
			}
		}
	case ZoneH00:
		for h := lo; h < hi; h++ {
			if h != 0 {
				refs = append(refs, Triple{h, 0, 0})
			}
		}
	case Zone0K0:
		for k := lo; k < hi; k++ {
			if k != 0 {
				refs = append(refs, Triple{0, k, 0})
			}
		}
	case Zone00L:
		for l := lo; l < hi; l++ {
			if l != 0 {
				refs = append(refs, Triple{0, 0, l})
			}
		}
	case ZoneHK0:
		for h := lo; h < hi; h++ {
			for k := lo; k < hi; k++ {
				if h == 0 && k == 0 {
					continue
				}
				refs = append(refs, Triple{h, k, 0})
			}
		}
	case ZoneH0L:
		for h := lo; h < hi; h++ {
			for l := lo; l < hi; l++ {
				if h == 0 && l == 0 {
					continue
				}
				refs = append(refs, Triple{h, 0, l})
			}
		}
	case Zone0KL:
		for k := lo; k < hi; k++ {
			for l := lo; l < hi; l++ {
				if k == 0 && l == 0 {
					continue
				}
				refs = append(refs, Triple{0, k, l})
			}
		}
	case ZoneHHL:
		for h := lo; h < hi; h++ {
			for l := lo; l < hi; l++ {
				if h == 0 && l == 0 {
					continue
				}
				refs = append(refs, Triple{h, h, l})
			}
		}
	case ZoneHKK:
		for h := lo; h < hi; h++ {
			for k := lo; k < hi; k++ {
				if h == 0 && k == 0 {
					continue
				}
				refs = append(refs, Triple{h, k, k})
			}
		}
	case ZoneHLL:
		for h := lo; h < hi; h++ {
			for l := lo; l < hi; l++ {
				if h == 0 && l == 0 {
					continue
				}
				refs = append(refs, Triple{h, l, l})
			}
		}
	}
	return refs
}
