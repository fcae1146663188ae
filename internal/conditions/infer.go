package conditions

import (
	"slices"

	"github.com/xtaldev/sgdb/internal/hkl"
	"github.com/xtaldev/sgdb/internal/symmetry"
)

// Infer classifies the present/absent pattern of a zone's sampled
// candidates into the minimal set of congruence conditions, sorted for
// determinism. It returns nil when the zone carries no condition: empty
// sample, no absences, no present reflections, or no matching rule.
func Infer(zone hkl.Zone, candidates []hkl.Triple, ops []symmetry.Op) []string {
	if len(candidates) == 0 {
		return nil
	}

	present := make([]hkl.Triple, 0, len(candidates))
	for _, ref := range candidates {
		if !IsAbsent(ref, ops) {
			present = append(present, ref)
		}
	}
	if len(present) == len(candidates) || len(present) == 0 {
		return nil
	}

	rs, ok := zoneRules[zone]
	if !ok {
		return nil
	}

	var matched []string
	for _, r := range rs.rules {
		if !r.holds(present) {
			continue
		}
		matched = append(matched, r.cond)
		if rs.firstMatch {
			break
		}
	}
	for _, s := range rs.suppressions {
		all := true
		for _, w := range s.when {
			if !slices.Contains(matched, w) {
				all = false
				break
			}
		}
		if all {
			matched = slices.DeleteFunc(matched, func(c string) bool { return c == s.drop })
		}
	}
	if len(matched) == 0 {
		return nil
	}
	slices.Sort(matched)
	return matched
}

// InferZones runs Infer over every zone at the given sampling window and
// returns the non-nil results keyed by zone.
func InferZones(ops []symmetry.Op, maxIndex int) map[hkl.Zone][]string {
	out := make(map[hkl.Zone][]string)
	for _, zone := range hkl.Zones {
		if conds := Infer(zone, hkl.Sample(zone, maxIndex), ops); conds != nil {
			out[zone] = conds
		}
	}
	return out
}
