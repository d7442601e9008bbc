package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandpile-sim/sandpile-sim/pile"
)

func TestRunCommand_WritesCachedResult(t *testing.T) {
	// GIVEN a tiny run directed at a temp cache directory
	dir := t.TempDir()
	rootCmd.SetArgs([]string{"run", "--power", "2", "--pattern", "+", "--out", dir, "--log", "error"})

	// WHEN the command executes
	require.NoError(t, rootCmd.Execute())

	// THEN the cached record exists and matches the known 3x3 fixed point
	result, err := pile.LoadResult(pile.ResultPath(dir, "+", 2))
	require.NoError(t, err)
	assert.Equal(t, 3, result.GridSize)
	assert.Equal(t, [][]int64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}, result.Grid)
}

func TestRunCommand_OperationsDoNotPoisonCache(t *testing.T) {
	// GIVEN a run that doubles the pile after stabilizing
	dir := t.TempDir()
	rootCmd.SetArgs([]string{"run", "--power", "4", "--pattern", "+", "--out", dir,
		"--double", "1", "--log", "error"})
	require.NoError(t, rootCmd.Execute())

	// THEN nothing is written to the base-power cache key
	basePath := pile.ResultPath(dir, "+", 4)
	_, err := os.Stat(basePath)
	require.True(t, os.IsNotExist(err), "doubled grid landed on the base run's cache key")

	// AND a later plain run of the same power serves the undoubled fixed point
	rootCmd.SetArgs([]string{"run", "--power", "4", "--pattern", "+", "--out", dir,
		"--double", "0", "--log", "error"})
	require.NoError(t, rootCmd.Execute())

	cached, err := pile.LoadResult(basePath)
	require.NoError(t, err)

	fresh, err := pile.New(4, "+")
	require.NoError(t, err)
	require.NoError(t, fresh.Stabilize())
	assert.Equal(t, fresh.Dense(), cached.Grid)
}

func TestRenderCommand_FromCachedResult(t *testing.T) {
	// GIVEN a cached record written directly, as an external generator would
	dir := t.TempDir()
	record := &pile.RenderedGrid{
		Iterations: 1,
		Topples:    1,
		GridSize:   3,
		Grid:       [][]int64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}},
	}
	path := filepath.Join(dir, "external.json")
	require.NoError(t, record.Save(path))

	// WHEN render is pointed at it
	png := filepath.Join(dir, "external.png")
	rootCmd.SetArgs([]string{"render", "--result", path, "--png", png, "--log", "error"})
	require.NoError(t, rootCmd.Execute())

	// THEN a heatmap is produced without any recomputation
	_, err := os.Stat(png)
	assert.NoError(t, err)
}
