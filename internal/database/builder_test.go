package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderGroupsSettingsByNumber(t *testing.T) {
	b := NewBuilder()
	assert.False(t, b.Has(14))

	meta := Metadata{Number: 14, StandardSymbol: "P21/c", CrystalSystem: "monoclinic", PointGroup: "2/m", Centrosymmetric: true}
	require.NoError(t, b.RecordSetting(meta, SettingRecord{Symbol: "P21/c"}))
	assert.True(t, b.Has(14))
	assert.Equal(t, 1, b.Len())

	// Later settings for a seen number append; their metadata is ignored.
	require.NoError(t, b.RecordSetting(Metadata{Number: 14}, SettingRecord{Symbol: "P21/a", Description: "a"}))
	require.NoError(t, b.RecordSetting(Metadata{Number: 14}, SettingRecord{Symbol: "P21/n", Description: "n"}))
	assert.Equal(t, 1, b.Len())

	db := b.Finalize()
	require.Len(t, db.Entries, 1)
	e := db.Entries[0]
	assert.Equal(t, "P21/c", e.StandardSymbol)
	assert.Equal(t, "monoclinic", e.CrystalSystem)
	assert.True(t, e.Centrosymmetric)
	require.Len(t, e.Settings, 3)
	assert.Equal(t, "P21/c", e.Settings[0].Symbol)
	assert.Equal(t, "P21/a", e.Settings[1].Symbol)
	assert.Equal(t, "P21/n", e.Settings[2].Symbol)
}

func TestBuilderFinalizeSortsByNumber(t *testing.T) {
	b := NewBuilder()
	for _, n := range []int{62, 1, 225, 14} {
		require.NoError(t, b.RecordSetting(Metadata{Number: n}, SettingRecord{}))
	}
	db := b.Finalize()
	require.Len(t, db.Entries, 4)
	var got []int
	for _, e := range db.Entries {
		got = append(got, e.Number)
	}
	assert.Equal(t, []int{1, 14, 62, 225}, got)

	assert.Equal(t, 62, db.Entry(62).Number)
	assert.Nil(t, db.Entry(63))
}

func TestBuilderRejectsInvalidNumber(t *testing.T) {
	b := NewBuilder()
	assert.Error(t, b.RecordSetting(Metadata{Number: 0}, SettingRecord{}))
	assert.Error(t, b.RecordSetting(Metadata{Number: -3}, SettingRecord{}))
	assert.Equal(t, 0, b.Len())
}
