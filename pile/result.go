// Dense materialization of a stable pile and the JSON result record shared
// with external precomputation: downstream rendering treats a freshly
// computed record and a cached one identically.

package pile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RenderedGrid is the flattened form of a stabilized pile together with run
// statistics. The field layout matches the cached records produced by the
// standalone generator, so either source can feed a renderer.
type RenderedGrid struct {
	Iterations int64     `json:"iterations"`
	Topples    int64     `json:"topples"`
	GridSize   int       `json:"grid_size"`
	Grid       [][]int64 `json:"grid"`
}

// Dense flattens the sparse grid into a (2*radius+1)^2 matrix with the
// origin at the center. Valid only after stabilization: on a fresh pile the
// radius is still 0 and the export is a 1x1 matrix holding the raw seed.
func (s *Sandpile) Dense() [][]int64 {
	radius := s.grid.Radius()
	size := 2*radius + 1
	dense := make([][]int64, size)
	for i := range dense {
		dense[i] = make([]int64, size)
	}
	s.grid.Each(func(c Cell, sand int64) {
		dense[c.Row+radius][c.Col+radius] = sand
	})
	return dense
}

// Render packages the dense export with the pile's cumulative statistics.
func (s *Sandpile) Render() *RenderedGrid {
	dense := s.Dense()
	return &RenderedGrid{
		Iterations: s.passes,
		Topples:    s.topples,
		GridSize:   len(dense),
		Grid:       dense,
	}
}

// ResultPath returns the cache location for a run: <dir>/<pattern>/2_<power>_<pattern>.json.
func ResultPath(dir, pattern string, seedPower int) string {
	return filepath.Join(dir, pattern, fmt.Sprintf("2_%d_%s.json", seedPower, pattern))
}

// Save writes the record as JSON to path, creating parent directories.
func (r *RenderedGrid) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating result dir: %w", err)
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

// LoadResult reads a cached result record from path.
func LoadResult(path string) (*RenderedGrid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result: %w", err)
	}
	var r RenderedGrid
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing result %s: %w", path, err)
	}
	if r.GridSize != len(r.Grid) {
		return nil, fmt.Errorf("result %s: grid_size %d does not match %d rows", path, r.GridSize, len(r.Grid))
	}
	for i, row := range r.Grid {
		if len(row) != r.GridSize {
			return nil, fmt.Errorf("result %s: row %d has %d columns, want %d", path, i, len(row), r.GridSize)
		}
	}
	return &r, nil
}
