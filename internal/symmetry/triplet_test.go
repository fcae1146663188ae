package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTriplet(t *testing.T) {
	op, err := ParseTriplet("-y,x+1/2,z+1/4")
	require.NoError(t, err)
	assert.Equal(t, [3][3]int{{0, -DEN, 0}, {DEN, 0, 0}, {0, 0, DEN}}, op.Rot)
	assert.Equal(t, [3]int{0, DEN / 2, DEN / 4}, op.Tran)
}

func TestParseTripletForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // canonical rendering
	}{
		{"identity", "x,y,z", "x,y,z"},
		{"leading fraction", "1/2+x,y,z", "x+1/2,y,z"},
		{"two letters", "-y,x-y,z", "-y,x-y,z"},
		{"whitespace", " x , -y , z+1/2 ", "x,-y,z+1/2"},
		{"thirds", "2/3+x,1/3+y,1/3+z", "x+2/3,y+1/3,z+1/3"},
		{"negative normalized", "x,y,z-1/4", "x,y,z+3/4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := ParseTriplet(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, op.String())
		})
	}
}

func TestParseTripletErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"two components", "x,y"},
		{"four components", "x,y,z,x"},
		{"bad letter", "x,y,w"},
		{"dangling sign", "x,y,-"},
		{"unrepresentable fraction", "x,y,z+1/7"},
		{"zero denominator", "x,y,z+1/0"},
		{"empty component", "x,,z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTriplet(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestOpMul(t *testing.T) {
	fourFold := MustTriplet("-y,x,z+1/4")

	sq := fourFold.Mul(fourFold)
	assert.Equal(t, MustTriplet("-x,-y,z+1/2"), sq)

	cube := sq.Mul(fourFold)
	assert.Equal(t, MustTriplet("y,-x,z+3/4"), cube)

	// Fourth power closes to identity; translations wrap mod 1.
	assert.Equal(t, Identity(), cube.Mul(fourFold))
}

func TestOpIsInversion(t *testing.T) {
	assert.True(t, Inversion().IsInversion())
	assert.True(t, MustTriplet("-x+1/2,-y+1/2,-z").IsInversion())
	assert.False(t, Identity().IsInversion())
	assert.False(t, MustTriplet("-x,y,-z").IsInversion())
}
