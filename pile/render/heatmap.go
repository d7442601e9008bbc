// Package render turns stabilized sandpile records into heatmaps. It reads
// only the dense result record, so freshly computed and cached results render
// through the same path.
package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sandpile-sim/sandpile-sim/pile"
)

// denseGrid adapts a result record's row-major matrix to plotter.GridXYZ.
// Row 0 is drawn at the bottom; sandpile fractals are symmetric about the
// origin so orientation does not matter for inspection.
type denseGrid struct {
	grid [][]int64
}

func (d denseGrid) Dims() (c, r int) {
	if len(d.grid) == 0 {
		return 0, 0
	}
	return len(d.grid[0]), len(d.grid)
}

func (d denseGrid) Z(c, r int) float64 { return float64(d.grid[r][c]) }
func (d denseGrid) X(c int) float64    { return float64(c) }
func (d denseGrid) Y(r int) float64    { return float64(r) }

// HeatmapPNG renders the record as a square heatmap image. The output format
// follows the file extension (.png, .svg, .pdf); size is the edge length in
// inches.
func HeatmapPNG(r *pile.RenderedGrid, path string, size float64) error {
	if len(r.Grid) == 0 {
		return fmt.Errorf("rendering %s: empty grid", path)
	}

	p := plot.New()
	p.HideAxes()
	p.Add(plotter.NewHeatMap(denseGrid{grid: r.Grid}, palette.Heat(16, 1)))

	edge := vg.Length(size) * vg.Inch
	if err := p.Save(edge, edge, path); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}
