package hkl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRanges(t *testing.T) {
	// maxIndex=8 gives 12 values per free axis: -4..7.
	refs := Sample(ZoneH00, 8)
	require.Len(t, refs, 11) // 12 minus the excluded h=0
	assert.Equal(t, Triple{-4, 0, 0}, refs[0])
	assert.Equal(t, Triple{7, 0, 0}, refs[len(refs)-1])
	for _, r := range refs {
		assert.NotEqual(t, 0, r.H)
		assert.Zero(t, r.K)
		assert.Zero(t, r.L)
	}
}

func TestSampleCounts(t *testing.T) {
	tests := []struct {
		zone Zone
		want int
	}{
		{ZoneHKL, 12*12*12 - 1},
		{ZoneH00, 11},
		{Zone0K0, 11},
		{Zone00L, 11},
		{ZoneHK0, 12*12 - 1},
		{ZoneH0L, 12*12 - 1},
		{Zone0KL, 12*12 - 1},
		{ZoneHHL, 12*12 - 1},
		{ZoneHKK, 12*12 - 1},
		{ZoneHLL, 12*12 - 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.zone), func(t *testing.T) {
			assert.Len(t, Sample(tt.zone, 8), tt.want)
		})
	}
}

func TestSampleTiedComponents(t *testing.T) {
	for _, r := range Sample(ZoneHHL, 8) {
		assert.Equal(t, r.H, r.K)
		assert.False(t, r.H == 0 && r.L == 0)
	}
	for _, r := range Sample(ZoneHKK, 8) {
		assert.Equal(t, r.K, r.L)
		assert.False(t, r.H == 0 && r.K == 0)
	}
	for _, r := range Sample(ZoneHLL, 8) {
		assert.Equal(t, r.K, r.L)
		assert.False(t, r.H == 0 && r.L == 0)
	}
}

func TestSampleExcludesOrigin(t *testing.T) {
	for _, zone := range Zones {
		for _, r := range Sample(zone, 6) {
			assert.NotEqual(t, Triple{}, r, "zone %s generated the origin", zone)
		}
	}
}

func TestSampleEmptyWindow(t *testing.T) {
	for _, zone := range Zones {
		assert.Empty(t, Sample(zone, 0))
		assert.Empty(t, Sample(zone, -3))
	}
}

func TestSamplePlaneTies(t *testing.T) {
	for _, r := range Sample(ZoneHK0, 8) {
		assert.Zero(t, r.L)
	}
	for _, r := range Sample(ZoneH0L, 8) {
		assert.Zero(t, r.K)
	}
	for _, r := range Sample(Zone0KL, 8) {
		assert.Zero(t, r.H)
	}
}
