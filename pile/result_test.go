package pile

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense_UnstabilizedPile_Is1x1RawSeed(t *testing.T) {
	// GIVEN a fresh pile that has never toppled (radius still 0)
	s, err := New(5, "+")
	require.NoError(t, err)

	// THEN the dense export is 1x1 holding the raw, unstable seed
	dense := s.Dense()
	require.Len(t, dense, 1)
	require.Len(t, dense[0], 1)
	assert.Equal(t, int64(32), dense[0][0])
}

func TestRender_CarriesRunStatistics(t *testing.T) {
	s := mustStable(t, 2, "+")

	r := s.Render()

	assert.Equal(t, int64(1), r.Iterations)
	assert.Equal(t, int64(1), r.Topples)
	assert.Equal(t, 3, r.GridSize)
	assert.Len(t, r.Grid, 3)
}

func TestResultPath_MatchesCacheScheme(t *testing.T) {
	got := ResultPath("json", "o+", 12)
	want := filepath.Join("json", "o+", "2_12_o+.json")
	assert.Equal(t, want, got)
}

func TestResult_SaveLoad_RoundTrip(t *testing.T) {
	// GIVEN a computed result
	s := mustStable(t, 6, "o+")
	r := s.Render()
	path := ResultPath(t.TempDir(), "o+", 6)

	// WHEN it is saved and loaded back
	require.NoError(t, r.Save(path))
	loaded, err := LoadResult(path)
	require.NoError(t, err)

	// THEN the record round-trips exactly
	assert.Equal(t, r.Iterations, loaded.Iterations)
	assert.Equal(t, r.Topples, loaded.Topples)
	assert.Equal(t, r.GridSize, loaded.GridSize)
	if !reflect.DeepEqual(r.Grid, loaded.Grid) {
		t.Error("grid changed across save/load")
	}
}

func TestLoadResult_SizeMismatch_Rejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	r := &RenderedGrid{GridSize: 5, Grid: [][]int64{{1}}}
	require.NoError(t, r.Save(path))

	_, err := LoadResult(path)
	assert.ErrorContains(t, err, "grid_size")
}

func TestLoadResult_RaggedRows_Rejected(t *testing.T) {
	// GIVEN an external record whose row count matches grid_size but whose
	// rows are not all grid_size wide
	path := filepath.Join(t.TempDir(), "ragged.json")
	r := &RenderedGrid{GridSize: 2, Grid: [][]int64{{1, 2}, {3}}}
	require.NoError(t, r.Save(path))

	// THEN loading rejects it before any renderer can index out of range
	_, err := LoadResult(path)
	assert.ErrorContains(t, err, "columns")
}

func TestLoadResult_MissingFile(t *testing.T) {
	_, err := LoadResult(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
