package conditions

import "github.com/xtaldev/sgdb/internal/hkl"

// rule is one congruence test: the condition it records and the predicate
// that must hold for every present reflection.
type rule struct {
	cond  string
	holds func(refs []hkl.Triple) bool
}

// suppression drops a condition made redundant by tighter ones: when every
// condition in `when` was recorded, `drop` is removed.
type suppression struct {
	when []string
	drop string
}

// ruleSet is the precedence table for one zone. In firstMatch mode the
// rules form an if/else-if chain recording at most one condition; otherwise
// every matching rule is recorded and the suppressions applied afterwards.
type ruleSet struct {
	firstMatch   bool
	rules        []rule
	suppressions []suppression
}

// divides builds a predicate testing a*h + b*k + c*l ≡ 0 (mod m) for every
// present reflection.
func divides(a, b, c, m int) func(refs []hkl.Triple) bool {
	return func(refs []hkl.Triple) bool {
		for _, r := range refs {
			if (a*r.H+b*r.K+c*r.L)%m != 0 {
				return false
			}
		}
		return true
	}
}

// allPairSumsEven tests h+k, k+l and h+l all even, the compound condition
// of an F lattice in the general zone.
func allPairSumsEven(refs []hkl.Triple) bool {
	for _, r := range refs {
		if (r.H+r.K)%2 != 0 || (r.K+r.L)%2 != 0 || (r.H+r.L)%2 != 0 {
			return false
		}
	}
	return true
}

// zoneRules holds the per-zone precedence tables. Rule order is load
// bearing: in firstMatch zones the earlier rule is the tighter one, and in
// collect zones the modulus-4 rules precede the modulus-2 rules they
// suppress.
var zoneRules = map[hkl.Zone]ruleSet{
	hkl.ZoneHKL: {
		firstMatch: true,
		rules: []rule{
			{"h+k, k+l, h+l=2n", allPairSumsEven},
			{"h+k+l=2n", divides(1, 1, 1, 2)},
			{"k+l=2n", divides(0, 1, 1, 2)},
			{"h+l=2n", divides(1, 0, 1, 2)},
			{"h+k=2n", divides(1, 1, 0, 2)},
			{"-h+k+l=3n", divides(-1, 1, 1, 3)},
			{"h-k+l=3n", divides(1, -1, 1, 3)},
		},
	},
	hkl.ZoneH00: {
		firstMatch: true,
		rules: []rule{
			{"h=4n", divides(1, 0, 0, 4)},
			{"h=2n", divides(1, 0, 0, 2)},
		},
	},
	hkl.Zone0K0: {
		firstMatch: true,
		rules: []rule{
			{"k=4n", divides(0, 1, 0, 4)},
			{"k=2n", divides(0, 1, 0, 2)},
		},
	},
	hkl.Zone00L: {
		firstMatch: true,
		rules: []rule{
			{"l=6n", divides(0, 0, 1, 6)},
			{"l=4n", divides(0, 0, 1, 4)},
			{"l=3n", divides(0, 0, 1, 3)},
			{"l=2n", divides(0, 0, 1, 2)},
		},
	},
	hkl.ZoneHK0: {
		rules: []rule{
			{"h=2n", divides(1, 0, 0, 2)},
			{"k=2n", divides(0, 1, 0, 2)},
			{"h+k=4n", divides(1, 1, 0, 4)},
			{"h+k=2n", divides(1, 1, 0, 2)},
		},
		suppressions: []suppression{
			{when: []string{"h=2n", "k=2n"}, drop: "h+k=2n"},
			{when: []string{"h+k=4n"}, drop: "h+k=2n"},
		},
	},
	hkl.ZoneH0L: {
		rules: []rule{
			{"h=2n", divides(1, 0, 0, 2)},
			{"l=2n", divides(0, 0, 1, 2)},
			{"h+l=4n", divides(1, 0, 1, 4)},
			{"h+l=2n", divides(1, 0, 1, 2)},
		},
		suppressions: []suppression{
			{when: []string{"h=2n", "l=2n"}, drop: "h+l=2n"},
			{when: []string{"h+l=4n"}, drop: "h+l=2n"},
		},
	},
	hkl.Zone0KL: {
		rules: []rule{
			{"k=2n", divides(0, 1, 0, 2)},
			{"l=2n", divides(0, 0, 1, 2)},
			{"k+l=4n", divides(0, 1, 1, 4)},
			{"k+l=2n", divides(0, 1, 1, 2)},
		},
		suppressions: []suppression{
			{when: []string{"k=2n", "l=2n"}, drop: "k+l=2n"},
			{when: []string{"k+l=4n"}, drop: "k+l=2n"},
		},
	},
	hkl.ZoneHHL: {
		rules: []rule{
			{"2h+l=4n", divides(2, 0, 1, 4)},
			{"h+l=2n", divides(1, 0, 1, 2)},
			{"l=2n", divides(0, 0, 1, 2)},
		},
		suppressions: []suppression{
			{when: []string{"2h+l=4n"}, drop: "l=2n"},
		},
	},
	hkl.ZoneHKK: {
		rules: []rule{
			{"h+2k=4n", divides(1, 2, 0, 4)},
			{"h+k=2n", divides(1, 1, 0, 2)},
			{"h=2n", divides(1, 0, 0, 2)},
		},
		suppressions: []suppression{
			{when: []string{"h+2k=4n"}, drop: "h=2n"},
		},
	},
	hkl.ZoneHLL: {
		rules: []rule{
			{"h+2l=4n", divides(1, 0, 2, 4)},
			{"h+l=2n", divides(1, 0, 1, 2)},
			{"h=2n", divides(1, 0, 0, 2)},
		},
		suppressions: []suppression{
			{when: []string{"h+2l=4n"}, drop: "h=2n"},
		},
	},
}
