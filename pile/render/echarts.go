package render

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sandpile-sim/sandpile-sim/pile"
)

// viridis is the colour ramp for the browser heatmap, low to high.
var viridis = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// HeatmapHTML writes the record as a self-contained echarts heatmap page,
// handy for zooming into large fractals without an image viewer.
func HeatmapHTML(r *pile.RenderedGrid, path, title string) error {
	if len(r.Grid) == 0 {
		return fmt.Errorf("rendering %s: empty grid", path)
	}

	size := len(r.Grid)
	axis := make([]int, size)
	for i := range axis {
		axis[i] = i
	}

	var maxSand int64
	data := make([]opts.HeatMapData, 0, size*size)
	for row, cells := range r.Grid {
		for col, sand := range cells {
			if sand > maxSand {
				maxSand = sand
			}
			if sand == 0 {
				continue
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{col, row, sand}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("grid=%dx%d topples=%d", size, size, r.Topples)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Show: opts.Bool(false)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Show: opts.Bool(false), Data: axis}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxSand),
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	hm.SetXAxis(axis).AddSeries("sand", data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	defer f.Close()
	if err := hm.Render(f); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}
