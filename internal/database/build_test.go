package database

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtaldev/sgdb/internal/hkl"
	"github.com/xtaldev/sgdb/internal/symmetry"
)

// fakeSource serves canned groups keyed by symbol and by number.
type fakeSource struct {
	bySymbol map[string]*symmetry.Group
	byNumber map[int]*symmetry.Group
}

func (f *fakeSource) Resolve(symbol string) (*symmetry.Group, error) {
	g, ok := f.bySymbol[symbol]
	if !ok {
		return nil, symmetry.ErrUnknownSymbol
	}
	return g, nil
}

func (f *fakeSource) ByNumber(number int) (*symmetry.Group, error) {
	g, ok := f.byNumber[number]
	if !ok {
		return nil, symmetry.ErrUnknownNumber
	}
	return g, nil
}

func testSource(t *testing.T) *fakeSource {
	t.Helper()
	p1 := &symmetry.Group{Number: 1, Symbol: "P1", PointGroup: "1", Ops: []symmetry.Op{symmetry.Identity()}}
	p21c, err := symmetry.Closure([]string{"-x,y+1/2,-z+1/2", "-x,-y,-z"}, "P")
	require.NoError(t, err)
	p21a, err := symmetry.Closure([]string{"-x+1/2,y+1/2,-z", "-x,-y,-z"}, "P")
	require.NoError(t, err)
	g14 := &symmetry.Group{Number: 14, Symbol: "P21/c", PointGroup: "2/m", Ops: p21c}
	g14a := &symmetry.Group{Number: 14, Symbol: "P21/a", Qualifier: "a", PointGroup: "2/m", Ops: p21a}
	return &fakeSource{
		bySymbol: map[string]*symmetry.Group{"P1": p1, "P21/c": g14, "P21/a": g14a},
		byNumber: map[int]*symmetry.Group{1: p1, 14: g14},
	}
}

func testBuildOptions(t *testing.T) (BuildOptions, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skipped.log")
	log, err := OpenSkipLog(path, "test-run")
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return BuildOptions{
		MaxIndex: 8,
		Log:      log,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, path
}

func TestBuildGroupsAndOrders(t *testing.T) {
	src := testSource(t)
	opts, _ := testBuildOptions(t)

	settings := []Setting{
		{Number: 14, Symbol: "P21/c"},
		{Number: 14, Symbol: "P21/a", Qualifier: "a"},
		{Number: 1, Symbol: "P1"},
	}
	db, stats, err := Build(settings, src, opts)
	require.NoError(t, err)
	assert.Equal(t, BuildStats{Groups: 2, Settings: 3, Skipped: 0}, stats)

	require.Len(t, db.Entries, 2)
	assert.Equal(t, 1, db.Entries[0].Number)
	assert.Equal(t, 14, db.Entries[1].Number)

	e := db.Entry(14)
	require.NotNil(t, e)
	assert.Equal(t, "P21/c", e.StandardSymbol)
	assert.Equal(t, "monoclinic", e.CrystalSystem)
	assert.Equal(t, "2/m", e.PointGroup)
	assert.True(t, e.Centrosymmetric)

	require.Len(t, e.Settings, 2)
	assert.Equal(t, "P21/c", e.Settings[0].Symbol)
	assert.Equal(t, "", e.Settings[0].Description)
	assert.Equal(t, []ZoneConditions{
		{Zone: hkl.ZoneH0L, Conditions: []string{"l=2n"}},
		{Zone: hkl.Zone0K0, Conditions: []string{"k=2n"}},
		{Zone: hkl.Zone00L, Conditions: []string{"l=2n"}},
	}, e.Settings[0].Conditions)
	assert.Equal(t, "a", e.Settings[1].Description)

	p1 := db.Entry(1)
	require.NotNil(t, p1)
	assert.False(t, p1.Centrosymmetric)
	assert.Empty(t, p1.Settings[0].Conditions)
}

func TestBuildSkipsUnresolvedSymbol(t *testing.T) {
	src := testSource(t)
	opts, path := testBuildOptions(t)

	settings := []Setting{
		{Number: 1, Symbol: "P1"},
		{Number: 7, Symbol: "Pq", Qualifier: "bogus"},
	}
	db, stats, err := Build(settings, src, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Settings)
	assert.Nil(t, db.Entry(7))

	require.NoError(t, opts.Log.Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Run: test-run\n")
	assert.Contains(t, string(data), "Number: 7, Symbol: 'Pq', Qualifier: 'bogus'\n")
	assert.Equal(t, 1, strings.Count(string(data), "Symbol: 'Pq'"))
}

func TestBuildSkipsNumberMismatch(t *testing.T) {
	src := testSource(t)
	opts, path := testBuildOptions(t)

	settings := []Setting{{Number: 15, Symbol: "P21/c"}}
	db, stats, err := Build(settings, src, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Empty(t, db.Entries)

	require.NoError(t, opts.Log.Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Number Mismatch: 15, Symbol: 'P21/c', Parsed as: 14\n")
}

func TestBuildSkipsStandardLookupFailure(t *testing.T) {
	src := testSource(t)
	delete(src.byNumber, 14)
	opts, path := testBuildOptions(t)

	db, stats, err := Build([]Setting{{Number: 14, Symbol: "P21/c"}}, src, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Empty(t, db.Entries)

	require.NoError(t, opts.Log.Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CRITICAL ERROR: 14, Symbol: 'P21/c'")
}

func TestBuildResolveErrorOtherThanUnknown(t *testing.T) {
	src := testSource(t)
	opts, path := testBuildOptions(t)

	boom := errors.New("table corrupt")
	srcErr := &failingSource{inner: src, err: boom}
	db, stats, err := Build([]Setting{{Number: 1, Symbol: "P1"}}, srcErr, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Empty(t, db.Entries)

	require.NoError(t, opts.Log.Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CRITICAL ERROR: 1, Symbol: 'P1', Error: table corrupt\n")
}

type failingSource struct {
	inner Source
	err   error
}

func (f *failingSource) Resolve(string) (*symmetry.Group, error) { return nil, f.err }
func (f *failingSource) ByNumber(n int) (*symmetry.Group, error) { return f.inner.ByNumber(n) }

func TestOrderedConditionsCanonicalOrder(t *testing.T) {
	byZone := map[hkl.Zone][]string{
		hkl.Zone00L: {"l=2n"},
		hkl.Zone0K0: {"k=2n"},
		hkl.ZoneHKL: {"h+k+l=2n"},
	}
	got := OrderedConditions(byZone)
	assert.Equal(t, []ZoneConditions{
		{Zone: hkl.ZoneHKL, Conditions: []string{"h+k+l=2n"}},
		{Zone: hkl.Zone0K0, Conditions: []string{"k=2n"}},
		{Zone: hkl.Zone00L, Conditions: []string{"l=2n"}},
	}, got)
	assert.Nil(t, OrderedConditions(nil))
}
