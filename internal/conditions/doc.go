// Package conditions derives systematic reflection-absence conditions.
//
// The absence predicate tests a single reflection against a group's
// operation list; the inferencer samples a bounded zone, partitions the
// sample into present and absent reflections, and matches the present set
// against a per-zone precedence table of congruence rules.
//
// Two deliberate quirks of the reference behavior are preserved:
//
//   - A zone where every sampled reflection is absent yields nil, exactly
//     like a zone with no absences. For a group whose true minimal period
//     exceeds the sampling window this conflates "entire zone absent" with
//     "no condition"; callers wanting to distinguish the two must widen the
//     window.
//   - The general hkl zone records at most one condition (first matching
//     rule wins) while plane and diagonal zones may record several.
package conditions
