package symmetry

import (
	"fmt"
	"strings"
)

// ParseTriplet parses a coordinate triplet such as "-y,x+1/2,z+1/4" into an
// operation. Each component is a signed sum of the letters x, y, z (unit
// coefficients) and fractions n/d; whitespace is ignored. Fractions must be
// expressible over DEN.
func ParseTriplet(s string) (Op, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Op{}, fmt.Errorf("triplet %q: want 3 components, got %d", s, len(parts))
	}
	var op Op
	for i, part := range parts {
		row, tran, err := parseComponent(part)
		if err != nil {
			return Op{}, fmt.Errorf("triplet %q: %w", s, err)
		}
		op.Rot[i] = row
		op.Tran[i] = modDen(tran)
	}
	return op, nil
}

// MustTriplet is ParseTriplet for table literals; it panics on malformed input.
func MustTriplet(s string) Op {
	op, err := ParseTriplet(s)
	if err != nil {
		panic(err)
	}
	return op
}

func parseComponent(s string) ([3]int, int, error) {
	var row [3]int
	tran := 0
	i := 0
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return row, 0, fmt.Errorf("empty component")
	}
	for i < len(s) {
		sign := 1
		switch s[i] {
		case '+':
			i++
		case '-':
			sign = -1
			i++
		}
		if i >= len(s) {
			return row, 0, fmt.Errorf("component %q: dangling sign", s)
		}
		switch c := s[i]; {
		case c == 'x' || c == 'y' || c == 'z':
			row[int(c-'x')] += sign * DEN
			i++
		case c >= '0' && c <= '9':
			num := 0
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				num = num*10 + int(s[i]-'0')
				i++
			}
			den := 1
			if i < len(s) && s[i] == '/' {
				i++
				den = 0
				for i < len(s) && s[i] >= '0' && s[i] <= '9' {
					den = den*10 + int(s[i]-'0')
					i++
				}
				if den == 0 {
					return row, 0, fmt.Errorf("component %q: bad denominator", s)
				}
			}
			if (num*DEN)%den != 0 {
				return row, 0, fmt.Errorf("component %q: %d/%d not representable over %d", s, num, den, DEN)
			}
			tran += sign * num * DEN / den
		default:
			return row, 0, fmt.Errorf("component %q: unexpected %q", s, string(c))
		}
	}
	return row, tran, nil
}
